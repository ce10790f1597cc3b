package colour

import (
	"fmt"
	"strings"
)

// Correlates selects which CAM16 correlates an appearance model exposes:
// lightness J or brightness Q, then chroma C, colourfulness M or saturation s,
// always with hue angle h.
type Correlates int

const (
	CorrelatesJCh Correlates = iota
	CorrelatesJMh
	CorrelatesJsh
	CorrelatesQCh
	CorrelatesQMh
	CorrelatesQsh
)

var allCorrelates = []Correlates{
	CorrelatesJCh,
	CorrelatesJMh,
	CorrelatesJsh,
	CorrelatesQCh,
	CorrelatesQMh,
	CorrelatesQsh,
}

var correlateNames = map[Correlates]string{
	CorrelatesJCh: "Cam16Jch",
	CorrelatesJMh: "Cam16Jmh",
	CorrelatesJsh: "Cam16Jsh",
	CorrelatesQCh: "Cam16Qch",
	CorrelatesQMh: "Cam16Qmh",
	CorrelatesQsh: "Cam16Qsh",
}

func (c Correlates) name() string {
	if n, ok := correlateNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Cam16(%d)", int(c))
}

func (c Correlates) id() string {
	return "cam16-" + strings.ToLower(strings.TrimPrefix(c.name(), "Cam16"))
}

// String returns the display name, e.g. "Cam16Jch".
func (c Correlates) String() string { return c.name() }

func (c Correlates) usesBrightness() bool {
	return c == CorrelatesQCh || c == CorrelatesQMh || c == CorrelatesQsh
}

// AppearanceModel is a CAM16 correlate set bound to explicit viewing parameters.
type AppearanceModel struct {
	correlates Correlates
	params     *ViewingParameters
}

// NewAppearanceModel binds a correlate set to vp. vp is used as given and never
// re-derived.
func NewAppearanceModel(c Correlates, vp *ViewingParameters) *AppearanceModel {
	return &AppearanceModel{correlates: c, params: vp}
}

// Parameters returns the viewing parameters the model converts with.
func (m *AppearanceModel) Parameters() *ViewingParameters { return m.params }

func (m *AppearanceModel) ID() string      { return m.correlates.id() }
func (m *AppearanceModel) Name() string    { return m.correlates.name() }
func (m *AppearanceModel) HueChannel() int { return 2 }

func (m *AppearanceModel) Reference() string {
	return "https://en.wikipedia.org/wiki/Color_appearance_model#CAM16"
}

// FromReference returns {J|Q, C|M|s, h}.
func (m *AppearanceModel) FromReference(c XYZ) Value {
	app := CAM16FromXYZ(c, m.params)

	v := Value{app.Lightness, app.Chroma, app.Hue}
	if m.correlates.usesBrightness() {
		v[0] = app.Brightness
	}
	switch m.correlates {
	case CorrelatesJMh, CorrelatesQMh:
		v[1] = app.Colorfulness
	case CorrelatesJsh, CorrelatesQsh:
		v[1] = app.Saturation
	}
	return v
}

// ToReference resolves J and C from the stored correlates and inverts CAM16.
func (m *AppearanceModel) ToReference(v Value) XYZ {
	vp := m.params

	var j, q float64
	if m.correlates.usesBrightness() {
		q = v[0]
		j = vp.lightnessFromBrightness(q)
	} else {
		j = v[0]
		q = vp.brightnessFromLightness(j)
	}

	c := v[1]
	switch m.correlates {
	case CorrelatesJMh, CorrelatesQMh:
		c = v[1] / vp.flRoot
	case CorrelatesJsh, CorrelatesQsh:
		s := v[1] / 100
		c = s * s * q / vp.flRoot
	}

	return CAM16ToXYZ(j, c, NormaliseHue(v[2]), vp)
}
