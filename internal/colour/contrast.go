package colour

import "github.com/lucasb-eyer/go-colorful"

// Text colours are a near-white and a near-black rather than pure white and black.
var (
	TextLight = colorful.Color{R: 0.96, G: 0.96, B: 0.96}
	TextDark  = colorful.Color{R: 0.04, G: 0.04, B: 0.04}
)

// TextColours are the text colour candidates in preference order.
var TextColours = []colorful.Color{TextLight, TextDark}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.1.
// Returns a value between 0 (darkest) and 1 (lightest) for in-gamut colours.
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance.
func RelativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.1.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio.
func ContrastRatio(c1, c2 colorful.Color) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// PickTextColour returns the text colour with the highest contrast against bg.
// A later candidate only wins with a strictly larger ratio, so ties and NaN
// ratios resolve to the first candidate.
func PickTextColour(bg colorful.Color) colorful.Color {
	best := TextColours[0]
	bestRatio := ContrastRatio(best, bg)
	for _, c := range TextColours[1:] {
		ratio := ContrastRatio(c, bg)
		if ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	return best
}
