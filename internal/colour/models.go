package colour

import "github.com/lucasb-eyer/go-colorful"

// model is an ordinary colour model: a pair of pure conversions with no
// viewing-condition dependency.
type model struct {
	id   string
	name string
	ref  string
	hue  int
	from func(XYZ) Value
	to   func(Value) XYZ
}

func (m *model) ID() string                { return m.id }
func (m *model) Name() string              { return m.name }
func (m *model) Reference() string         { return m.ref }
func (m *model) HueChannel() int           { return m.hue }
func (m *model) FromReference(c XYZ) Value { return m.from(c) }
func (m *model) ToReference(v Value) XYZ   { return m.to(v) }
func (m *model) String() string            { return m.name }

// srgbModel is an ordinary model defined directly on sRGB. Its sRGB conversions
// bypass the reference space.
type srgbModel struct {
	model
	fromRGB func(colorful.Color) Value
	toRGB   func(Value) colorful.Color
}

func (m *srgbModel) FromSRGB(c colorful.Color) Value { return m.fromRGB(c) }
func (m *srgbModel) ToSRGB(v Value) colorful.Color   { return m.toRGB(v) }

func newSRGBModel(id, name, ref string, from func(colorful.Color) Value, to func(Value) colorful.Color) *srgbModel {
	return &srgbModel{
		model: model{
			id: id, name: name, ref: ref, hue: NoHue,
			from: func(c XYZ) Value { return from(c.SRGB()) },
			to:   func(v Value) XYZ { return FromSRGB(to(v)) },
		},
		fromRGB: from,
		toRGB:   to,
	}
}

// Scales follow go-colorful: RGB channels, saturation, lightness and value in
// [0, 1]; Lab/Luv lightness in [0, 1] with a/b and u/v scaled by the same
// factor; hue in degrees.
var ordinaryModels = []Model{
	newSRGBModel("rgb", "rgb", "https://en.wikipedia.org/wiki/SRGB",
		func(c colorful.Color) Value { return Value{c.R, c.G, c.B} },
		func(v Value) colorful.Color { return colorful.Color{R: v[0], G: v[1], B: v[2]} },
	),
	newSRGBModel("lin-srgb", "lin. srgb", "https://en.wikipedia.org/wiki/SRGB#Transfer_function_(%22gamma%22)",
		func(c colorful.Color) Value { r, g, b := c.LinearRgb(); return Value{r, g, b} },
		func(v Value) colorful.Color { return colorful.LinearRgb(v[0], v[1], v[2]) },
	),
	&model{
		id: "hsl", name: "hsl", hue: 0,
		ref: "https://en.wikipedia.org/wiki/HSL_and_HSV",
		from: func(c XYZ) Value {
			h, s, l := c.SRGB().Hsl()
			return Value{NormaliseHue(h), s, l}
		},
		to: func(v Value) XYZ { return FromSRGB(colorful.Hsl(NormaliseHue(v[0]), v[1], v[2])) },
	},
	&model{
		id: "okhsl", name: "okhsl", hue: 0,
		ref:  "https://bottosson.github.io/posts/colorpicker/#hsl-2",
		from: xyzToOkhsl,
		to:   okhslToXYZ,
	},
	&model{
		id: "hsluv", name: "hsluv", hue: 0,
		ref: "https://www.hsluv.org/",
		from: func(c XYZ) Value {
			h, s, l := c.SRGB().HSLuv()
			return Value{NormaliseHue(h), s, l}
		},
		to: func(v Value) XYZ { return FromSRGB(colorful.HSLuv(NormaliseHue(v[0]), v[1], v[2])) },
	},
	&model{
		id: "hsv", name: "hsv", hue: 0,
		ref:  "https://en.wikipedia.org/wiki/HSL_and_HSV",
		from: xyzToHSV,
		to:   hsvToXYZ,
	},
	&model{
		id: "okhsv", name: "okhsv", hue: 0,
		ref:  "https://bottosson.github.io/posts/colorpicker/#hsv-2",
		from: xyzToOkhsv,
		to:   okhsvToXYZ,
	},
	&model{
		id: "hwb", name: "hwb", hue: 0,
		ref:  "https://www.w3.org/TR/css-color-4/#the-hwb-notation",
		from: func(c XYZ) Value { return hsvToHWB(xyzToHSV(c)) },
		to:   func(v Value) XYZ { return hsvToXYZ(hwbToHSV(v)) },
	},
	&model{
		id: "okhwb", name: "okhwb", hue: 0,
		ref:  "https://bottosson.github.io/posts/colorpicker/",
		from: func(c XYZ) Value { return hsvToHWB(xyzToOkhsv(c)) },
		to:   func(v Value) XYZ { return okhsvToXYZ(hwbToHSV(v)) },
	},
	&model{
		id: "lab", name: "lab", hue: NoHue,
		ref: "https://en.wikipedia.org/wiki/CIELAB_color_space",
		from: func(c XYZ) Value {
			l, a, b := colorful.XyzToLab(c.X, c.Y, c.Z)
			return Value{l, a, b}
		},
		to: labToXYZ,
	},
	&model{
		id: "oklab", name: "oklab", hue: NoHue,
		ref: "https://bottosson.github.io/posts/oklab/",
		from: func(c XYZ) Value {
			l, a, b := colorful.XyzToOkLab(c.X, c.Y, c.Z)
			return Value{l, a, b}
		},
		to: func(v Value) XYZ {
			x, y, z := colorful.OkLabToXyz(v[0], v[1], v[2])
			return XYZ{X: x, Y: y, Z: z}
		},
	},
	&model{
		id: "lch", name: "lch", hue: 2,
		ref: "https://en.wikipedia.org/wiki/CIELAB_color_space#Cylindrical_model",
		from: func(c XYZ) Value {
			h, ch, l := colorful.LabToHcl(colorful.XyzToLab(c.X, c.Y, c.Z))
			return Value{l, ch, NormaliseHue(h)}
		},
		to: func(v Value) XYZ {
			l, a, b := colorful.HclToLab(v[2], v[1], v[0])
			return labToXYZ(Value{l, a, b})
		},
	},
	&model{
		id: "oklch", name: "oklch", hue: 2,
		ref: "https://bottosson.github.io/posts/oklab/#the-oklab-color-space",
		from: func(c XYZ) Value {
			l, ch, h := colorful.OkLabToOkLch(colorful.XyzToOkLab(c.X, c.Y, c.Z))
			return Value{l, ch, NormaliseHue(h)}
		},
		to: func(v Value) XYZ {
			x, y, z := colorful.OkLabToXyz(colorful.OkLchToOkLab(v[0], v[1], NormaliseHue(v[2])))
			return XYZ{X: x, Y: y, Z: z}
		},
	},
	&model{
		id: "lchuv", name: "lchuv", hue: 2,
		ref: "https://en.wikipedia.org/wiki/CIELUV#Cylindrical_representation_(CIELCh)",
		from: func(c XYZ) Value {
			l, ch, h := colorful.LuvToLuvLCh(colorful.XyzToLuv(c.X, c.Y, c.Z))
			return Value{l, ch, NormaliseHue(h)}
		},
		to: func(v Value) XYZ {
			l, u, w := colorful.LuvLChToLuv(v[0], v[1], v[2])
			return luvToXYZ(Value{l, u, w})
		},
	},
	&model{
		id: "luv", name: "luv", hue: NoHue,
		ref: "https://en.wikipedia.org/wiki/CIELUV",
		from: func(c XYZ) Value {
			l, u, v := colorful.XyzToLuv(c.X, c.Y, c.Z)
			return Value{l, u, v}
		},
		to: luvToXYZ,
	},
	&model{
		id: "xyz", name: "xyz", hue: NoHue,
		ref:  "https://en.wikipedia.org/wiki/CIE_1931_color_space",
		from: func(c XYZ) Value { return Value{c.X, c.Y, c.Z} },
		to:   func(v Value) XYZ { return XYZ{X: v[0], Y: v[1], Z: v[2]} },
	},
	&model{
		id: "yxy", name: "yxy", hue: NoHue,
		ref: "https://en.wikipedia.org/wiki/CIE_1931_color_space#CIE_xy_chromaticity_diagram_and_the_CIE_xyY_color_space",
		from: func(c XYZ) Value {
			x, y, Y := colorful.XyzToXyy(c.X, c.Y, c.Z)
			return Value{x, y, Y}
		},
		to: func(v Value) XYZ {
			X, Y, Z := colorful.XyyToXyz(v[0], v[1], v[2])
			return XYZ{X: X, Y: Y, Z: Z}
		},
	},
}

func xyzToHSV(c XYZ) Value {
	h, s, v := c.SRGB().Hsv()
	return Value{NormaliseHue(h), s, v}
}

func hsvToXYZ(v Value) XYZ {
	return FromSRGB(colorful.Hsv(NormaliseHue(v[0]), v[1], v[2]))
}

func labToXYZ(v Value) XYZ {
	x, y, z := colorful.LabToXyz(v[0], v[1], v[2])
	return XYZ{X: x, Y: y, Z: z}
}

func luvToXYZ(v Value) XYZ {
	x, y, z := colorful.LuvToXyz(v[0], v[1], v[2])
	return XYZ{X: x, Y: y, Z: z}
}
