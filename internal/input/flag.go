package input

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/blend/internal/colour"
)

// ColourValue is a pflag.Value holding a parsed colour.
type ColourValue struct {
	rgb *colour.RGB
}

var _ pflag.Value = (*ColourValue)(nil)

// NewColourValue returns a flag value writing into p, initialised to def.
func NewColourValue(def colour.RGB, p *colour.RGB) *ColourValue {
	*p = def
	return &ColourValue{rgb: p}
}

// String returns the colour as hex.
func (v *ColourValue) String() string {
	if v == nil || v.rgb == nil {
		return ""
	}
	return v.rgb.Hex()
}

// Set parses s with ParseColour.
func (v *ColourValue) Set(s string) error {
	rgb, err := ParseColour(s)
	if err != nil {
		return err
	}
	*v.rgb = rgb
	return nil
}

// Type names the value in help output.
func (v *ColourValue) Type() string {
	return "colour"
}

// ColourVarP defines a colour flag on fs.
func ColourVarP(fs *pflag.FlagSet, p *colour.RGB, name, shorthand string, def colour.RGB, usage string) {
	fs.VarP(NewColourValue(def, p), name, shorthand, usage)
}
