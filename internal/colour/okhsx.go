package colour

import "math"

// Okhsl and Okhsv, following https://bottosson.github.io/posts/colorpicker/.
// Hue is reported in degrees like every other hue-bearing model here.

// achromatic is the chroma below which hue is undefined.
const achromatic = 1e-6

const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1 + toeK1) / (1 + toeK2)
)

// toe maps Oklab lightness to a lightness estimate closer to CIE L*.
func toe(x float64) float64 {
	return 0.5 * (toeK3*x - toeK1 + math.Sqrt((toeK3*x-toeK1)*(toeK3*x-toeK1)+4*toeK2*toeK3*x))
}

func toeInv(x float64) float64 {
	return (x*x + toeK1*x) / (toeK3 * (x + toeK2))
}

// maxSaturation finds the saturation S = C/L where one of the linear sRGB
// channels reaches zero, for the normalised hue direction (a, b).
func maxSaturation(a, b float64) float64 {
	var k0, k1, k2, k3, k4, wl, wm, ws float64
	switch {
	case -1.88170328*a-0.80936493*b > 1:
		// red clips first
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		wl, wm, ws = 4.0767416621, -3.3077115913, 0.2309699292
	case 1.81444104*a-1.19445276*b > 1:
		// green
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		wl, wm, ws = -1.2684380046, 2.6097574011, -0.3413193965
	default:
		// blue
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		wl, wm, ws = -0.0041960863, -0.7034186147, 1.7076147010
	}

	s := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	// One Halley step.
	l_ := 1 + s*kl
	m_ := 1 + s*km
	s_ := 1 + s*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	sc := s_ * s_ * s_

	ldS := 3 * kl * l_ * l_
	mdS := 3 * km * m_ * m_
	sdS := 3 * ks * s_ * s_

	ldS2 := 6 * kl * kl * l_
	mdS2 := 6 * km * km * m_
	sdS2 := 6 * ks * ks * s_

	f := wl*l + wm*m + ws*sc
	f1 := wl*ldS + wm*mdS + ws*sdS
	f2 := wl*ldS2 + wm*mdS2 + ws*sdS2

	return s - f*f1/(f1*f1-0.5*f*f2)
}

type cusp struct{ L, C float64 }

// findCusp returns the lightness and chroma of the most saturated in-gamut colour
// along the hue direction (a, b).
func findCusp(a, b float64) cusp {
	sCusp := maxSaturation(a, b)
	r, g, bl := oklabToLinear(1, sCusp*a, sCusp*b)
	lCusp := math.Cbrt(1 / math.Max(math.Max(r, g), bl))
	return cusp{L: lCusp, C: lCusp * sCusp}
}

// gamutIntersection finds t such that the line from (L0, 0) towards (L1, C1)
// meets the sRGB gamut boundary at L0*(1-t) + t*L1, t*C1.
func gamutIntersection(a, b, L1, C1, L0 float64, cu cusp) float64 {
	if (L1-L0)*cu.C-(cu.L-L0)*C1 <= 0 {
		// lower half
		return cu.C * L0 / (C1*cu.L + cu.C*(L0-L1))
	}

	// upper half: intersect the triangle, then refine with one Halley step
	t := cu.C * (L0 - 1) / (C1*(cu.L-1) + cu.C*(L0-L1))

	dL := L1 - L0
	dC := C1

	kl := 0.3963377774*a + 0.2158037573*b
	km := -0.1055613458*a - 0.0638541728*b
	ks := -0.0894841775*a - 1.2914855480*b

	ldt := dL + dC*kl
	mdt := dL + dC*km
	sdt := dL + dC*ks

	L := L0*(1-t) + t*L1
	C := t * C1

	l_ := L + C*kl
	m_ := L + C*km
	s_ := L + C*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	l1 := 3 * ldt * l_ * l_
	m1 := 3 * mdt * m_ * m_
	s1 := 3 * sdt * s_ * s_

	l2 := 6 * ldt * ldt * l_
	m2 := 6 * mdt * mdt * m_
	s2 := 6 * sdt * sdt * s_

	step := func(wl, wm, ws float64) float64 {
		f := wl*l + wm*m + ws*s - 1
		f1 := wl*l1 + wm*m1 + ws*s1
		f2 := wl*l2 + wm*m2 + ws*s2
		u := f1 / (f1*f1 - 0.5*f*f2)
		if u < 0 {
			return math.MaxFloat64
		}
		return -f * u
	}

	tr := step(4.0767416621, -3.3077115913, 0.2309699292)
	tg := step(-1.2684380046, 2.6097574011, -0.3413193965)
	tb := step(-0.0041960863, -0.7034186147, 1.7076147010)

	return t + math.Min(tr, math.Min(tg, tb))
}

// toST converts a cusp to the slopes of the gamut triangle.
func toST(cu cusp) (s, t float64) {
	return cu.C / cu.L, cu.C / (1 - cu.L)
}

// midST is a polynomial fit of the gamut slopes used for the smooth mid chroma.
func midST(a, b float64) (s, t float64) {
	s = 0.11516993 + 1/(7.44778970+4.15901240*b+
		a*(-2.19557347+1.75198401*b+
			a*(-2.13704948-10.02301043*b+
				a*(-4.24894561+5.38770819*b+4.69891013*a))))

	t = 0.11239642 + 1/(1.61320320-0.68124379*b+
		a*(0.40370612+0.90148123*b+
			a*(-0.27087943+0.61223990*b+
				a*(0.00299215-0.45399568*b-0.14661872*a))))
	return s, t
}

// chromaStops returns the chroma at saturation 0.8 estimates and the gamut limit
// for Okhsl at lightness L along (a, b).
func chromaStops(L, a, b float64) (c0, cMid, cMax float64) {
	cu := findCusp(a, b)

	cMax = gamutIntersection(a, b, L, 1, L, cu)
	sMax, tMax := toST(cu)

	k := cMax / math.Min(L*sMax, (1-L)*tMax)

	sMid, tMid := midST(a, b)
	ca := L * sMid
	cb := (1 - L) * tMid
	cMid = 0.9 * k * math.Sqrt(math.Sqrt(1/(1/(ca*ca*ca*ca)+1/(cb*cb*cb*cb))))

	ca = L * 0.4
	cb = (1 - L) * 0.8
	c0 = math.Sqrt(1 / (1/(ca*ca) + 1/(cb*cb)))

	return c0, cMid, cMax
}

// hueDirection returns the unit (a, b) direction for Oklab a/b. Achromatic
// colours get zero chroma and hue 0.
func hueDirection(a, b float64) (da, db, c, h float64) {
	c, h = labToPolar(a, b)
	if c < achromatic {
		return 1, 0, 0, 0
	}
	return a / c, b / c, c, h
}

const (
	okMid    = 0.8
	okMidInv = 1.25
)

func xyzToOkhsl(ref XYZ) Value {
	L, a, b := xyzToOklab(ref)
	if L <= 0 {
		return Value{0, 0, 0}
	}
	if L >= 1 {
		return Value{0, 0, 1}
	}

	da, db, C, h := hueDirection(a, b)
	c0, cMid, cMax := chromaStops(L, da, db)

	var s float64
	if C < cMid {
		k1 := okMid * c0
		k2 := 1 - k1/cMid
		t := C / (k1 + k2*C)
		s = t * okMid
	} else {
		k0 := cMid
		k1 := (1 - okMid) * cMid * cMid * okMidInv * okMidInv / c0
		k2 := 1 - k1/(cMax-cMid)
		t := (C - k0) / (k1 + k2*(C-k0))
		s = okMid + (1-okMid)*t
	}

	return Value{h, s, toe(L)}
}

func okhslToXYZ(v Value) XYZ {
	h, s, l := v[0], v[1], v[2]
	if l >= 1 {
		return fromLinearRGB(1, 1, 1)
	}
	if l <= 0 {
		return XYZ{}
	}

	sin, cos := math.Sincos(radians(h))
	L := toeInv(l)
	c0, cMid, cMax := chromaStops(L, cos, sin)

	var C float64
	if s < okMid {
		t := okMidInv * s
		k1 := okMid * c0
		k2 := 1 - k1/cMid
		C = t * k1 / (1 - k2*t)
	} else {
		t := (s - okMid) / (1 - okMid)
		k0 := cMid
		k1 := (1 - okMid) * cMid * cMid * okMidInv * okMidInv / c0
		k2 := 1 - k1/(cMax-cMid)
		C = k0 + t*k1/(1-k2*t)
	}

	return oklabToXYZ(L, C*cos, C*sin)
}

const okS0 = 0.5

func xyzToOkhsv(ref XYZ) Value {
	L, a, b := xyzToOklab(ref)
	if L <= 0 {
		return Value{0, 0, 0}
	}

	da, db, C, h := hueDirection(a, b)

	sMax, tMax := toST(findCusp(da, db))
	k := 1 - okS0/sMax

	t := tMax / (C + L*tMax)
	Lv := t * L
	Cv := t * C

	Lvt := toeInv(Lv)
	Cvt := Cv * Lvt / Lv

	r, g, bl := oklabToLinear(Lvt, da*Cvt, db*Cvt)
	scale := math.Cbrt(1 / math.Max(math.Max(r, g), math.Max(bl, 0)))

	L /= scale
	C /= scale

	C = C * toe(L) / L
	L = toe(L)

	val := L / Lv
	sat := (okS0 + tMax) * Cv / (tMax*okS0 + tMax*k*Cv)

	return Value{h, sat, val}
}

func okhsvToXYZ(v Value) XYZ {
	h, s, val := v[0], v[1], v[2]
	if val <= 0 {
		return XYZ{}
	}

	sin, cos := math.Sincos(radians(h))

	sMax, tMax := toST(findCusp(cos, sin))
	k := 1 - okS0/sMax

	Lv := 1 - s*okS0/(okS0+tMax-tMax*k*s)
	Cv := s * tMax * okS0 / (okS0 + tMax - tMax*k*s)

	L := val * Lv
	C := val * Cv

	Lvt := toeInv(Lv)
	Cvt := Cv * Lvt / Lv

	Lnew := toeInv(L)
	C = C * Lnew / L
	L = Lnew

	r, g, b := oklabToLinear(Lvt, cos*Cvt, sin*Cvt)
	scale := math.Cbrt(1 / math.Max(math.Max(r, g), math.Max(b, 0)))

	L *= scale
	C *= scale

	return oklabToXYZ(L, C*cos, C*sin)
}

// hsvToHWB converts hue/saturation/value to hue/whiteness/blackness.
func hsvToHWB(v Value) Value {
	return Value{v[0], (1 - v[1]) * v[2], 1 - v[2]}
}

func hwbToHSV(v Value) Value {
	val := 1 - v[2]
	s := 0.0
	if val != 0 {
		s = 1 - v[1]/val
	}
	return Value{v[0], s, val}
}
