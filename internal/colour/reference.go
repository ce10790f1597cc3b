package colour

import "github.com/lucasb-eyer/go-colorful"

// XYZ is a colour in the reference space: CIE 1931 XYZ relative to D65, scaled so
// the white point has Y = 1.
type XYZ struct {
	X, Y, Z float64
}

// D65 is the reference white: sRGB white taken through the same matrix as every
// other conversion.
var D65 = fromLinearRGB(1, 1, 1)

// FromSRGB converts a gamma-corrected sRGB colour to the reference space.
func FromSRGB(c colorful.Color) XYZ {
	x, y, z := c.Xyz()
	return XYZ{X: x, Y: y, Z: z}
}

// SRGB converts the colour to gamma-corrected sRGB. The result is not clamped.
func (c XYZ) SRGB() colorful.Color {
	return colorful.Xyz(c.X, c.Y, c.Z)
}

// LinearRGB returns the linear sRGB components of the colour.
func (c XYZ) LinearRGB() (r, g, b float64) {
	return colorful.XyzToLinearRgb(c.X, c.Y, c.Z)
}

// fromLinearRGB converts linear sRGB components to the reference space.
func fromLinearRGB(r, g, b float64) XYZ {
	x, y, z := colorful.LinearRgbToXyz(r, g, b)
	return XYZ{X: x, Y: y, Z: z}
}
