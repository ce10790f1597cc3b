// Package render writes computed gradients in the supported output formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/blend/internal/colour"
	"github.com/jmylchreest/blend/internal/gradient"
)

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatText Format = "text"
	FormatHex  Format = "hex"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatHex, FormatJSON, FormatHTML, FormatPNG}

// ErrUnknownFormat is returned for a format that is not in Formats.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// IsBinary reports whether the format should not be written to a terminal.
func (f Format) IsBinary() bool {
	return f == FormatPNG
}

// Options carries the request the results were computed from and presentation
// settings.
type Options struct {
	Start colour.RGB
	End   colour.RGB
	Steps int

	// Preview enables ANSI colour in text output.
	Preview bool
	// SwatchWidth is the width of text swatches in characters.
	SwatchWidth int
}

// Write renders results to w in the given format.
func Write(w io.Writer, format Format, results []gradient.Result, opts Options) error {
	switch format {
	case FormatText:
		return writeText(w, results, opts)
	case FormatHex:
		return writeHex(w, results)
	case FormatJSON:
		return writeJSON(w, results, opts)
	case FormatHTML:
		return writeHTML(w, results, opts)
	case FormatPNG:
		return writePNG(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
