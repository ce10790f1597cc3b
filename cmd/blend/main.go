// Blend - compare colour gradients across colour models
//
// Blend interpolates between two colours in every supported colour model and
// pairs each swatch with a legible text colour.
package main

import "github.com/jmylchreest/blend/internal/cli"

func main() {
	cli.Execute()
}
