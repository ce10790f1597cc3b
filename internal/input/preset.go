package input

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/blend/internal/colour"
)

// Preset is a named pair of gradient endpoints.
type Preset struct {
	Name  string
	Label string
	Start colour.RGB
	End   colour.RGB
}

// Presets are the built-in endpoint pairs in display order.
var Presets = []Preset{
	{Name: "red-green", Label: "red → green", Start: colour.RGB{R: 0xf0, G: 0x30, B: 0x10}, End: colour.RGB{R: 0x00, G: 0xc0, B: 0x20}},
	{Name: "green-blue", Label: "green → blue", Start: colour.RGB{R: 0x00, G: 0xc0, B: 0x20}, End: colour.RGB{R: 0x20, G: 0x10, B: 0x80}},
	{Name: "blue-yellow", Label: "blue → yellow", Start: colour.RGB{R: 0x20, G: 0x10, B: 0x80}, End: colour.RGB{R: 0xe8, G: 0xf8, B: 0x60}},
	{Name: "yellow-red", Label: "yellow → red", Start: colour.RGB{R: 0xe8, G: 0xf8, B: 0x60}, End: colour.RGB{R: 0xf0, G: 0x30, B: 0x10}},
	{Name: "black-white", Label: "reddish black → blueish white", Start: colour.RGB{R: 0x10, G: 0x04, B: 0x08}, End: colour.RGB{R: 0xf3, G: 0xf7, B: 0xff}},
}

// LookupPreset returns the preset with the given name, ignoring case.
func LookupPreset(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets {
		if p.Name == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
}

// PresetNames returns the preset names in display order.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// Inverted returns the preset with its endpoints swapped.
func (p Preset) Inverted() Preset {
	p.Start, p.End = p.End, p.Start
	return p
}
