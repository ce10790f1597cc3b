package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blend/internal/colour"
	"github.com/jmylchreest/blend/internal/input"
	"github.com/jmylchreest/blend/internal/render"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in start and end colour pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			preview := isTerminal(out)

			table := render.NewTable([]string{"NAME", "START", "END", "DESCRIPTION"})
			for _, p := range input.Presets {
				table.AddRow([]string{p.Name, swatchCell(p.Start, preview), swatchCell(p.End, preview), p.Label})
			}

			_, err := fmt.Fprint(out, table.Render())
			return err
		},
	}
}

// swatchCell returns the hex of c, drawn as a swatch when preview is set.
func swatchCell(c colour.RGB, preview bool) string {
	if !preview {
		return c.Hex()
	}
	text := colour.Quantise(colour.PickTextColour(c.Float()))
	return render.Swatch(c, text, c.Hex(), 0)
}
