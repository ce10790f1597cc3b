package colour

import "math"

// Oklab on linear sRGB, as published by Björn Ottosson:
// https://bottosson.github.io/posts/oklab/
// The oklab and oklch models use go-colorful. These helpers serve the Okhsl and
// Okhsv gamut estimates, whose cusp fits are defined against these matrices.

func linearToOklab(r, g, b float64) (L, A, B float64) {
	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	L = 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	A = 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	B = 0.0259040371*l + 0.7827717662*m - 0.8086757660*s
	return L, A, B
}

func oklabToLinear(L, A, B float64) (r, g, b float64) {
	l := L + 0.3963377774*A + 0.2158037573*B
	m := L - 0.1055613458*A - 0.0638541728*B
	s := L - 0.0894841775*A - 1.2914855480*B

	l, m, s = l*l*l, m*m*m, s*s*s

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, b
}

func xyzToOklab(c XYZ) (L, A, B float64) {
	return linearToOklab(c.LinearRGB())
}

func oklabToXYZ(L, A, B float64) XYZ {
	return fromLinearRGB(oklabToLinear(L, A, B))
}

// labToPolar converts rectangular a/b to chroma and hue in degrees.
func labToPolar(a, b float64) (c, h float64) {
	return math.Hypot(a, b), NormaliseHue(degrees(math.Atan2(b, a)))
}
