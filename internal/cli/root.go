// Package cli provides the command-line interface for blend.
package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/blend/internal/version"
)

// app holds state shared by the commands of one root command.
type app struct {
	logger hclog.Logger
}

// NewRootCmd builds the blend command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "blend",
		Short: "Compare colour gradients across colour models",
		Long: `Blend interpolates between two colours in 23 colour models and shows the
results side by side, each swatch paired with the more legible of a near-white
and a near-black text colour.

Models range from plain sRGB through the hue/saturation families, CIE Lab,
Luv and LCh, Oklab and its Okhsl/Okhsv/Okhwb pickers, XYZ and xyY, to six
CAM16 correlate sets.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			quiet, _ := cmd.Flags().GetBool("quiet")
			a.logger = newLogger(cmd.ErrOrStderr(), verbose, quiet)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newGradientCmd(a),
		newModelsCmd(),
		newContrastCmd(),
		newPresetsCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns the logger for one invocation. Quiet wins over verbose.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case quiet:
		level = hclog.Error
	case verbose:
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "blend",
		Output: w,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
