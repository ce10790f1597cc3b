package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blend/internal/colour"
	"github.com/jmylchreest/blend/internal/render"
)

func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the supported colour models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vp := colour.DefaultViewingConditions().Bake()
			return writeModels(cmd.OutOrStdout(), colour.Models(vp))
		},
	}
}

func writeModels(w io.Writer, models []colour.Model) error {
	table := render.NewTable([]string{"ID", "NAME", "HUE", "REFERENCE"})
	for _, m := range models {
		hue := "-"
		if m.HueChannel() != colour.NoHue {
			hue = strconv.Itoa(m.HueChannel())
		}
		table.AddRow([]string{m.ID(), m.Name(), hue, m.Reference()})
	}

	_, err := fmt.Fprint(w, table.Render())
	return err
}
