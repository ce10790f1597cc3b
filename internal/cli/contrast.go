package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blend/internal/colour"
	"github.com/jmylchreest/blend/internal/input"
	"github.com/jmylchreest/blend/internal/render"
)

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <colour>",
		Short: "Show which text colour reads best on a background",
		Long: `Show the WCAG 2.1 contrast ratio of each text colour candidate against a
background colour and the candidate blend would pick, along with the
background's CAM16 lightness, chroma, hue angle and hue quadrature.

Example:
  blend contrast '#003366'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := input.ParseColour(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return writeContrast(out, bg, isTerminal(out))
		},
	}
}

func writeContrast(w io.Writer, bg colour.RGB, preview bool) error {
	picked := colour.PickTextColour(bg.Float())

	table := render.NewTable([]string{"TEXT", "RATIO", "PICKED"})
	for _, c := range colour.TextColours {
		text := colour.Quantise(c)
		cell := text.Hex()
		if preview {
			cell = render.Swatch(bg, text, text.Hex(), 0)
		}
		mark := ""
		if c == picked {
			mark = "*"
		}
		table.AddRow([]string{cell, fmt.Sprintf("%.2f", colour.ContrastRatio(c, bg.Float())), mark})
	}

	app := colour.CAM16FromXYZ(bg.Reference(), colour.DefaultViewingConditions().Bake())
	if _, err := fmt.Fprintf(w, "background  %s\ncam16       J %.2f  C %.2f  h %.2f  H %.2f\n\n",
		bg.Hex(), app.Lightness, app.Chroma, app.Hue, app.HueQuadrature); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, table.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\npicked  %s\n", colour.Quantise(picked).Hex())
	return err
}
