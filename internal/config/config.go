// Package config resolves gradient defaults from built-in values and the
// environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/blend/internal/colour"
	"github.com/jmylchreest/blend/internal/input"
	"github.com/jmylchreest/blend/internal/render"
)

// Environment variables read by WithEnvConfig.
const (
	EnvStart  = "BLEND_START"
	EnvEnd    = "BLEND_END"
	EnvSteps  = "BLEND_STEPS"
	EnvModels = "BLEND_MODELS"
	EnvFormat = "BLEND_FORMAT"
)

// DefaultSteps is the step count used when none is configured.
const DefaultSteps = 12

// Config holds the gradient settings that flags start from.
type Config struct {
	Start colour.RGB
	End   colour.RGB
	Steps int

	// Models selects models by ID or name. Empty means every model.
	Models []string

	Format render.Format
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Start:  colour.RGB{R: 0x00, G: 0x33, B: 0x66},
		End:    colour.RGB{R: 0x99, G: 0xcc, B: 0x00},
		Steps:  DefaultSteps,
		Format: render.FormatText,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := input.ValidateSteps(c.Steps); err != nil {
		return err
	}
	for _, m := range c.Models {
		if _, err := colour.Lookup(m, nil); err != nil {
			return err
		}
	}
	if _, err := render.ParseFormat(string(c.Format)); err != nil {
		return err
	}
	return nil
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config Config
	useEnv bool
	getenv func(string) string
}

// NewBuilder creates a new builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		getenv: os.Getenv,
	}
}

// WithEnvConfig applies overrides from the BLEND_* environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithGetenv sets the function used to read the environment.
func (b *Builder) WithGetenv(getenv func(string) string) *Builder {
	b.getenv = getenv
	return b
}

// Build constructs and validates the Config.
func (b *Builder) Build() (Config, error) {
	config := b.config
	config.Models = append([]string(nil), config.Models...)

	if b.useEnv {
		if err := b.applyEnv(&config); err != nil {
			return Config{}, err
		}
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func (b *Builder) applyEnv(config *Config) error {
	if v := b.getenv(EnvStart); v != "" {
		rgb, err := input.ParseColour(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStart, err)
		}
		config.Start = rgb
	}
	if v := b.getenv(EnvEnd); v != "" {
		rgb, err := input.ParseColour(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvEnd, err)
		}
		config.End = rgb
	}
	if v := b.getenv(EnvSteps); v != "" {
		steps, err := input.ParseSteps(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSteps, err)
		}
		config.Steps = steps
	}
	if v := b.getenv(EnvModels); v != "" {
		config.Models = ParseList(v)
	}
	if v := b.getenv(EnvFormat); v != "" {
		format, err := render.ParseFormat(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
		config.Format = format
	}
	return nil
}

// ParseList splits a comma-separated list, dropping empty entries.
func ParseList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
