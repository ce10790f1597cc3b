package colour

import "math"

// NoHue is returned by Model.HueChannel for models without an angular channel.
const NoHue = -1

// NormaliseHue wraps an angle in degrees into [0, 360).
func NormaliseHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-14 + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDistance calculates the signed shortest difference from h1 to h2 in degrees.
// The result lies in (-180, 180].
func HueDistance(h1, h2 float64) float64 {
	d := math.Mod(h2-h1, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// MixHue interpolates between two hues along the shorter arc.
func MixHue(h1, h2, t float64) float64 {
	return NormaliseHue(h1 + t*HueDistance(h1, h2))
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func radians(deg float64) float64 { return deg * math.Pi / 180 }
