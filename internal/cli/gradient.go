package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/blend/internal/colour"
	"github.com/jmylchreest/blend/internal/config"
	"github.com/jmylchreest/blend/internal/gradient"
	"github.com/jmylchreest/blend/internal/input"
	"github.com/jmylchreest/blend/internal/render"
)

// errBinaryToTerminal is returned when a binary format would be printed to a terminal.
var errBinaryToTerminal = errors.New("refusing to write binary output to a terminal, use --output")

type gradientOptions struct {
	start   colour.RGB
	end     colour.RGB
	steps   int
	preset  string
	invert  bool
	models  []string
	format  string
	output  string
	preview bool
	width   int
}

func newGradientCmd(a *app) *cobra.Command {
	var opts gradientOptions
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Compute a gradient in every colour model",
		Long: `Compute a gradient between two colours in each colour model.

Colours are hex (#RRGGBB, RRGGBB, #RGB) or SVG colour names. Defaults come from
BLEND_START, BLEND_END, BLEND_STEPS, BLEND_MODELS and BLEND_FORMAT when set;
flags take precedence over the environment.

Examples:
  # Default gradient in every model
  blend gradient

  # A preset, reversed, in a few models
  blend gradient --preset red-green --invert --model oklch,okhsl,cam16-jch

  # Explicit endpoints as JSON
  blend gradient -s '#102030' -e gold -n 8 -f json

  # Render a comparison image
  blend gradient --preset black-white -f png -o gradient.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGradient(cmd, a, opts)
		},
	}

	flags := cmd.Flags()
	input.ColourVarP(flags, &opts.start, "start", "s", defaults.Start, "start colour")
	input.ColourVarP(flags, &opts.end, "end", "e", defaults.End, "end colour")
	flags.IntVarP(&opts.steps, "steps", "n", defaults.Steps, fmt.Sprintf("number of colours (%d-%d)", input.MinSteps, input.MaxSteps))
	flags.StringVarP(&opts.preset, "preset", "p", "", "start and end from a preset (see 'blend presets')")
	flags.BoolVarP(&opts.invert, "invert", "i", false, "swap start and end")
	flags.StringSliceVarP(&opts.models, "model", "m", nil, "models to compute, comma-separated (default all, see 'blend models')")
	flags.StringVarP(&opts.format, "format", "f", string(defaults.Format), "output format (text, hex, json, html, png)")
	flags.StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	flags.BoolVar(&opts.preview, "preview", false, "colour swatches in text output (default on for terminals)")
	flags.IntVar(&opts.width, "swatch-width", 0, "width of preview swatches in characters (0 for the default)")

	_ = cmd.RegisterFlagCompletionFunc("start", completeFrom(input.ColourNames))
	_ = cmd.RegisterFlagCompletionFunc("end", completeFrom(input.ColourNames))
	_ = cmd.RegisterFlagCompletionFunc("model", completeFrom(colour.ModelIDs))
	_ = cmd.RegisterFlagCompletionFunc("preset", completeFrom(input.PresetNames))
	_ = cmd.RegisterFlagCompletionFunc("format", completeFrom(formatNames))

	return cmd
}

// completeFrom completes a flag value from the candidates returned by list.
func completeFrom(list func() []string) cobra.CompletionFunc {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var matches []string
		for _, s := range list() {
			if strings.HasPrefix(s, strings.ToLower(toComplete)) {
				matches = append(matches, s)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}

func formatNames() []string {
	names := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		names[i] = string(f)
	}
	return names
}

// resolveConfig applies the environment, then preset, then explicit flags.
func resolveConfig(cmd *cobra.Command, opts gradientOptions) (config.Config, error) {
	cfg, err := config.NewBuilder().WithEnvConfig().Build()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if opts.preset != "" {
		p, err := input.LookupPreset(opts.preset)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Start, cfg.End = p.Start, p.End
	}
	if flags.Changed("start") {
		cfg.Start = opts.start
	}
	if flags.Changed("end") {
		cfg.End = opts.end
	}
	if opts.invert {
		pair := input.Preset{Start: cfg.Start, End: cfg.End}.Inverted()
		cfg.Start, cfg.End = pair.Start, pair.End
	}
	if flags.Changed("steps") {
		cfg.Steps = opts.steps
	}
	if flags.Changed("model") {
		cfg.Models = opts.models
	}
	if flags.Changed("format") {
		format, err := render.ParseFormat(opts.format)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runGradient(cmd *cobra.Command, a *app, opts gradientOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	if opts.width < 0 {
		return fmt.Errorf("invalid swatch width %d", opts.width)
	}

	stdout := cmd.OutOrStdout()
	if opts.output == "" && cfg.Format.IsBinary() && isTerminal(stdout) {
		return errBinaryToTerminal
	}

	preview := opts.preview
	if !cmd.Flags().Changed("preview") {
		preview = opts.output == "" && isTerminal(stdout)
	}

	engine := gradient.New(
		gradient.WithLogger(a.logger.Named("gradient")),
		gradient.WithModels(cfg.Models),
	)

	req := gradient.Request{Start: cfg.Start, End: cfg.End, Steps: cfg.Steps}
	results, err := engine.Compute(req)
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		err := render.Write(w, cfg.Format, results, render.Options{
			Start:       cfg.Start,
			End:         cfg.End,
			Steps:       cfg.Steps,
			Preview:     preview,
			SwatchWidth: opts.width,
		})
		if err != nil {
			return fmt.Errorf("failed to write %s output: %w", cfg.Format, err)
		}
		return nil
	}

	if opts.output == "" {
		return write(stdout)
	}
	if err := writeFile(opts.output, write); err != nil {
		return err
	}
	a.logger.Info("wrote gradient", "path", opts.output, "format", cfg.Format, "models", len(results))
	return nil
}

// writeFile creates path and fills it through write. The file is removed if
// writing or closing fails.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return write(f)
}
