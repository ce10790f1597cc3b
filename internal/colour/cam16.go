package colour

import "math"

// Surround describes the luminance of the area surrounding the viewed stimulus.
type Surround int

const (
	// SurroundAverage is the usual surround for surface colours.
	SurroundAverage Surround = iota
	// SurroundDim is typical for television viewing.
	SurroundDim
	// SurroundDark is typical for projection in a dark room.
	SurroundDark
)

// String returns the surround name.
func (s Surround) String() string {
	switch s {
	case SurroundDim:
		return "dim"
	case SurroundDark:
		return "dark"
	default:
		return "average"
	}
}

// factors returns F, c and N_c for the surround.
func (s Surround) factors() (f, c, nc float64) {
	switch s {
	case SurroundDim:
		return 0.9, 0.59, 0.9
	case SurroundDark:
		return 0.8, 0.525, 0.8
	default:
		return 1.0, 0.69, 1.0
	}
}

// ViewingConditions are the inputs to the CAM16 appearance model.
type ViewingConditions struct {
	// WhitePoint is the adopted white in the reference space.
	WhitePoint XYZ

	// AdaptingLuminance is L_A in cd/m².
	AdaptingLuminance float64

	// BackgroundLuminance is Y_b relative to the white point, in [0, 1].
	BackgroundLuminance float64

	Surround Surround
}

// DefaultAdaptingLuminance is the adapting luminance used for gradients.
const DefaultAdaptingLuminance = 40.0

// DefaultViewingConditions returns D65 white, 40 cd/m² adapting luminance, a 20%
// grey background and an average surround.
func DefaultViewingConditions() ViewingConditions {
	return ViewingConditions{
		WhitePoint:          D65,
		AdaptingLuminance:   DefaultAdaptingLuminance,
		BackgroundLuminance: 0.2,
		Surround:            SurroundAverage,
	}
}

// ViewingParameters holds the constants derived from ViewingConditions.
// Bake them once and share the result across every conversion of a computation.
type ViewingParameters struct {
	conditions ViewingConditions

	n, z, nbb, ncb float64
	c, nc          float64
	fl, flRoot     float64
	dRGB           [3]float64
	aw             float64
}

// Conditions returns the conditions the parameters were baked from.
func (vp *ViewingParameters) Conditions() ViewingConditions {
	return vp.conditions
}

// LuminanceAdaptation returns F_L.
func (vp *ViewingParameters) LuminanceAdaptation() float64 { return vp.fl }

// AchromaticWhite returns A_w.
func (vp *ViewingParameters) AchromaticWhite() float64 { return vp.aw }

// CAT16 matrix and its inverse.
var (
	m16 = [3][3]float64{
		{0.401288, 0.650173, -0.051461},
		{-0.250268, 1.204414, 0.045854},
		{-0.002079, 0.048952, 0.953127},
	}
	m16Inv = invert3(m16)
)

func invert3(m [3][3]float64) [3][3]float64 {
	det := m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
	return [3][3]float64{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) / det,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) / det,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) / det,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det,
		},
	}
}

func mulVec(m [3][3]float64, x, y, z float64) (a, b, c float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// Bake derives the viewing parameters.
func (vc ViewingConditions) Bake() *ViewingParameters {
	f, c, nc := vc.Surround.factors()
	la := vc.AdaptingLuminance

	xw, yw, zw := vc.WhitePoint.X*100, vc.WhitePoint.Y*100, vc.WhitePoint.Z*100
	rw, gw, bw := mulVec(m16, xw, yw, zw)

	d := f * (1 - (1/3.6)*math.Exp((-la-42)/92))
	d = math.Max(0, math.Min(1, d))

	k := 1 / (5*la + 1)
	k4 := k * k * k * k
	fl := k4*la + 0.1*(1-k4)*(1-k4)*math.Cbrt(5*la)

	n := vc.BackgroundLuminance * 100 / yw
	z := 1.48 + math.Sqrt(n)
	nbb := 0.725 / math.Pow(n, 0.2)

	dRGB := [3]float64{
		d*yw/rw + 1 - d,
		d*yw/gw + 1 - d,
		d*yw/bw + 1 - d,
	}

	ra := adapt(fl, dRGB[0]*rw)
	ga := adapt(fl, dRGB[1]*gw)
	ba := adapt(fl, dRGB[2]*bw)
	aw := (2*ra + ga + 0.05*ba) * nbb

	return &ViewingParameters{
		conditions: vc,
		n:          n,
		z:          z,
		nbb:        nbb,
		ncb:        nbb,
		c:          c,
		nc:         nc,
		fl:         fl,
		flRoot:     math.Pow(fl, 0.25),
		dRGB:       dRGB,
		aw:         aw,
	}
}

// adapt applies the post-adaptation non-linear response compression.
func adapt(fl, x float64) float64 {
	p := math.Pow(fl*math.Abs(x)/100, 0.42)
	return math.Copysign(400*p/(p+27.13), x)
}

func unadapt(fl, x float64) float64 {
	ax := math.Abs(x)
	base := math.Max(0, 27.13*ax/(400-ax))
	return math.Copysign(100/fl*math.Pow(base, 1/0.42), x)
}

// Appearance holds the CAM16 correlates of a colour.
type Appearance struct {
	// Lightness is J.
	Lightness float64
	// Brightness is Q.
	Brightness float64
	// Chroma is C.
	Chroma float64
	// Colorfulness is M.
	Colorfulness float64
	// Saturation is s.
	Saturation float64
	// Hue is the hue angle h in degrees.
	Hue float64
	// HueQuadrature is H, 0-400 through the unique hues red, yellow, green, blue.
	HueQuadrature float64
}

// CAM16FromXYZ computes the appearance correlates of a colour.
func CAM16FromXYZ(ref XYZ, vp *ViewingParameters) Appearance {
	r, g, b := mulVec(m16, ref.X*100, ref.Y*100, ref.Z*100)

	ra := adapt(vp.fl, vp.dRGB[0]*r)
	ga := adapt(vp.fl, vp.dRGB[1]*g)
	ba := adapt(vp.fl, vp.dRGB[2]*b)

	a := (11*ra - 12*ga + ba) / 11
	bb := (ra + ga - 2*ba) / 9
	u := (20*ra + 20*ga + 21*ba) / 20

	h := NormaliseHue(degrees(math.Atan2(bb, a)))
	et := 0.25 * (math.Cos(radians(h)+2) + 3.8)

	A := (2*ra + ga + 0.05*ba) * vp.nbb
	J := 0.0
	if A > 0 {
		J = 100 * math.Pow(A/vp.aw, vp.c*vp.z)
	}
	Q := vp.brightnessFromLightness(J)

	t := 50000.0 / 13 * vp.nc * vp.ncb * et * math.Hypot(a, bb) / (u + 0.305)
	C := math.Pow(t, 0.9) * math.Sqrt(J/100) * math.Pow(1.64-math.Pow(0.29, vp.n), 0.73)
	M := C * vp.flRoot

	s := 0.0
	if Q > 0 {
		s = 100 * math.Sqrt(M/Q)
	}

	return Appearance{
		Lightness:     J,
		Brightness:    Q,
		Chroma:        C,
		Colorfulness:  M,
		Saturation:    s,
		Hue:           h,
		HueQuadrature: hueQuadrature(h),
	}
}

var uniqueHues = [5]struct{ h, e, H float64 }{
	{20.14, 0.8, 0},
	{90.00, 0.7, 100},
	{164.25, 1.0, 200},
	{237.53, 1.2, 300},
	{380.14, 0.8, 400},
}

func hueQuadrature(h float64) float64 {
	if h < uniqueHues[0].h {
		h += 360
	}
	i := 0
	for i < 3 && h >= uniqueHues[i+1].h {
		i++
	}
	lo, hi := uniqueHues[i], uniqueHues[i+1]
	p := (h - lo.h) / lo.e
	return lo.H + 100*p/(p+(hi.h-h)/hi.e)
}

// lightnessFromBrightness inverts Q = 4/c * sqrt(J/100) * (A_w + 4) * F_L^0.25.
func (vp *ViewingParameters) lightnessFromBrightness(q float64) float64 {
	x := vp.c * q / ((vp.aw + 4) * vp.flRoot)
	return 6.25 * x * x
}

func (vp *ViewingParameters) brightnessFromLightness(j float64) float64 {
	return 4 / vp.c * math.Sqrt(j/100) * (vp.aw + 4) * vp.flRoot
}

// CAM16ToXYZ converts lightness J, chroma C and hue h back to the reference space.
func CAM16ToXYZ(j, c, h float64, vp *ViewingParameters) XYZ {
	alpha := 0.0
	if j > 0 && c != 0 {
		alpha = c / math.Sqrt(j/100)
	}
	t := math.Pow(alpha/math.Pow(1.64-math.Pow(0.29, vp.n), 0.73), 1/0.9)

	sin, cos := math.Sincos(radians(h))
	et := 0.25 * (math.Cos(radians(h)+2) + 3.8)

	ac := vp.aw * math.Pow(math.Max(j, 0)/100, 1/(vp.c*vp.z))
	p1 := et * 50000.0 / 13 * vp.nc * vp.ncb
	p2 := ac / vp.nbb

	gamma := 23 * (p2 + 0.305) * t / (23*p1 + 11*t*cos + 108*t*sin)
	a := gamma * cos
	b := gamma * sin

	ra := (460*p2 + 451*a + 288*b) / 1403
	ga := (460*p2 - 891*a - 261*b) / 1403
	ba := (460*p2 - 220*a - 6300*b) / 1403

	r := unadapt(vp.fl, ra) / vp.dRGB[0]
	g := unadapt(vp.fl, ga) / vp.dRGB[1]
	bl := unadapt(vp.fl, ba) / vp.dRGB[2]

	x, y, z := mulVec(m16Inv, r, g, bl)
	return XYZ{X: x / 100, Y: y / 100, Z: z / 100}
}
