package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jmylchreest/blend/internal/gradient"
)

// writeText writes one table per model. With Preview set, each row carries a
// swatch drawn in the picked text colour.
func writeText(w io.Writer, results []gradient.Result, opts Options) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", r.Model, r.Reference); err != nil {
			return err
		}

		headers := []string{"#", "hex", "rgb", "text"}
		if opts.Preview {
			headers = append([]string{"swatch"}, headers...)
		}
		table := NewTable(headers)

		for idx, s := range r.Swatches {
			row := []string{strconv.Itoa(idx + 1), s.Background.Hex(), s.Background.String(), s.Text.Hex()}
			if opts.Preview {
				row = append([]string{Swatch(s.Background, s.Text, s.Background.Hex(), opts.SwatchWidth)}, row...)
			}
			table.AddRow(row)
		}

		if _, err := io.WriteString(w, table.Render()); err != nil {
			return err
		}
	}
	return nil
}

// writeHex writes one hex colour per line with a blank line between models.
func writeHex(w io.Writer, results []gradient.Result) error {
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		for _, s := range r.Swatches {
			if _, err := fmt.Fprintln(w, s.Background.Hex()); err != nil {
				return err
			}
		}
	}
	return nil
}
