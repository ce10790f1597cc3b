// Package input validates user supplied colours and step counts before they
// reach the gradient engine.
package input

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/jmylchreest/blend/internal/colour"
)

// Step count bounds.
const (
	MinSteps = 1
	MaxSteps = 255
)

var (
	// ErrInvalidColour is returned when a colour is neither hex nor a known name.
	ErrInvalidColour = errors.New("invalid colour")
	// ErrInvalidSteps is returned when a step count is not an integer in range.
	ErrInvalidSteps = errors.New("invalid step count")
)

// ParseColour parses a hex colour (#RRGGBB, RRGGBB, #RGB, RGB) or an SVG colour
// name such as "darkslateblue".
func ParseColour(s string) (colour.RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return colour.RGB{}, fmt.Errorf("%w: empty value", ErrInvalidColour)
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return colour.FromColor(c), nil
	}

	rgb, err := parseHex(s)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("%w %q: %w", ErrInvalidColour, s, err)
	}
	return rgb, nil
}

// parseHex parses a hex colour string into an RGB struct.
func parseHex(hex string) (colour.RGB, error) {
	hex = strings.TrimPrefix(hex, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return colour.RGB{}, fmt.Errorf("expected 3 or 6 hex digits, got %d characters", len(hex))
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("invalid red component: %w", err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("invalid green component: %w", err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("invalid blue component: %w", err)
	}

	return colour.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ParseSteps parses a step count in [MinSteps, MaxSteps].
func ParseSteps(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w %q: not an integer", ErrInvalidSteps, s)
	}
	if err := ValidateSteps(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateSteps checks that n is within [MinSteps, MaxSteps].
func ValidateSteps(n int) error {
	if n < MinSteps || n > MaxSteps {
		return fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidSteps, n, MinSteps, MaxSteps)
	}
	return nil
}

// ColourNames returns every accepted colour name, sorted.
func ColourNames() []string {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
