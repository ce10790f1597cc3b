package colour

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// sampleColours are in-gamut, chromatic colours used for round-trip checks.
var sampleColours = []RGB{
	{R: 0x00, G: 0x33, B: 0x66},
	{R: 0x99, G: 0xcc, B: 0x00},
	{R: 0xf0, G: 0x30, B: 0x10},
	{R: 0x00, G: 0xc0, B: 0x20},
	{R: 0x20, G: 0x10, B: 0x80},
	{R: 0xe8, G: 0xf8, B: 0x60},
	{R: 0x10, G: 0x04, B: 0x08},
	{R: 0xf3, G: 0xf7, B: 0xff},
	{R: 0x80, G: 0x40, B: 0xa0},
	{R: 0x3c, G: 0x9d, B: 0xb5},
}

func closeXYZ(a, b XYZ, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestModelsRoundTrip(t *testing.T) {
	vp := DefaultViewingConditions().Bake()

	for _, m := range Models(vp) {
		t.Run(m.ID(), func(t *testing.T) {
			for _, rgb := range sampleColours {
				ref := rgb.Reference()
				v := m.FromReference(ref)
				back := m.ToReference(v)
				if !closeXYZ(ref, back, 1e-4) {
					t.Errorf("%s: reference %+v round-tripped to %+v via %v", rgb.Hex(), ref, back, v)
				}

				again := m.FromReference(back)
				for i := range v {
					diff := again[i] - v[i]
					if i == m.HueChannel() {
						diff = HueDistance(v[i], again[i])
					}
					if math.Abs(diff) > 1e-4 {
						t.Errorf("%s: component %d = %v, want %v", rgb.Hex(), i, again[i], v[i])
					}
				}
			}
		})
	}
}

func TestModelsHueRange(t *testing.T) {
	vp := DefaultViewingConditions().Bake()

	for _, m := range Models(vp) {
		if m.HueChannel() == NoHue {
			continue
		}
		t.Run(m.ID(), func(t *testing.T) {
			for _, rgb := range sampleColours {
				h := m.FromReference(rgb.Reference())[m.HueChannel()]
				if h < 0 || h >= 360 {
					t.Errorf("%s: hue %v outside [0, 360)", rgb.Hex(), h)
				}
			}
		})
	}
}

func TestModelsOrderAndIDs(t *testing.T) {
	vp := DefaultViewingConditions().Bake()
	models := Models(vp)

	if len(models) != 23 {
		t.Fatalf("Models() returned %d models, want 23", len(models))
	}

	want := []string{
		"rgb", "lin. srgb", "hsl", "okhsl", "hsluv", "hsv", "okhsv", "hwb", "okhwb",
		"lab", "oklab", "lch", "oklch", "lchuv", "luv", "xyz", "yxy",
		"Cam16Jch", "Cam16Jmh", "Cam16Jsh", "Cam16Qch", "Cam16Qmh", "Cam16Qsh",
	}
	ids := ModelIDs()
	seen := make(map[string]bool)
	for i, m := range models {
		if m.Name() != want[i] {
			t.Errorf("model %d name = %q, want %q", i, m.Name(), want[i])
		}
		if m.ID() != ids[i] {
			t.Errorf("model %d id = %q, ModelIDs() has %q", i, m.ID(), ids[i])
		}
		if seen[m.ID()] {
			t.Errorf("duplicate model id %q", m.ID())
		}
		seen[m.ID()] = true
		if m.Reference() == "" {
			t.Errorf("model %q has no reference", m.ID())
		}
	}
}

func TestLookup(t *testing.T) {
	vp := DefaultViewingConditions().Bake()

	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{name: "by id", input: "oklch", wantID: "oklch"},
		{name: "by display name", input: "lin. srgb", wantID: "lin-srgb"},
		{name: "case insensitive", input: "Cam16Qmh", wantID: "cam16-qmh"},
		{name: "whitespace", input: "  hsv ", wantID: "hsv"},
		{name: "unknown", input: "cmyk", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Lookup(tt.input, vp)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownModel) {
					t.Fatalf("Lookup(%q) error = %v, want ErrUnknownModel", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.input, err)
			}
			if m.ID() != tt.wantID {
				t.Errorf("Lookup(%q) = %q, want %q", tt.input, m.ID(), tt.wantID)
			}
		})
	}
}

func TestLookupWithoutParameters(t *testing.T) {
	m, err := Lookup("cam16-jch", nil)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	am, ok := m.(*AppearanceModel)
	if !ok {
		t.Fatalf("Lookup() = %T, want *AppearanceModel", m)
	}
	if am.Parameters() == nil {
		t.Fatal("Parameters() = nil, want the default conditions baked")
	}
	if got := am.Parameters().Conditions(); got != DefaultViewingConditions() {
		t.Errorf("Conditions() = %+v, want defaults", got)
	}

	white := m.FromReference(RGB{R: 255, G: 255, B: 255}.Reference())
	if math.Abs(white[0]-100) > 1e-6 {
		t.Errorf("white J = %v, want 100", white[0])
	}
}

func TestSRGBModelsAreExact(t *testing.T) {
	for _, id := range []string{"rgb", "lin-srgb"} {
		t.Run(id, func(t *testing.T) {
			m, err := Lookup(id, nil)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if _, ok := m.(SRGBModel); !ok {
				t.Fatalf("%s is not an SRGBModel", id)
			}
			for _, rgb := range sampleColours {
				if got := Quantise(Decode(m, Encode(m, rgb.Float()))); got != rgb {
					t.Errorf("%s round-tripped to %s", rgb.Hex(), got.Hex())
				}
			}
		})
	}

	rgb, _ := Lookup("rgb", nil)
	c := colorful.Color{R: 0.3, G: 0.5, B: 0.2}
	if got := Encode(rgb, c); got != (Value{0.3, 0.5, 0.2}) {
		t.Errorf("Encode(rgb) = %v, want the channels unchanged", got)
	}
	if got := Decode(rgb, Value{0.3, 0.5, 0.2}); got != c {
		t.Errorf("Decode(rgb) = %v, want %v", got, c)
	}
}

func TestEncodeFallsBackToReference(t *testing.T) {
	lab, _ := Lookup("lab", nil)
	c := RGB{R: 0x80, G: 0x40, B: 0xa0}.Float()

	if got, want := Encode(lab, c), lab.FromReference(FromSRGB(c)); got != want {
		t.Errorf("Encode(lab) = %v, want %v", got, want)
	}
}

func TestOklabMatchesColorful(t *testing.T) {
	oklab, _ := Lookup("oklab", nil)
	oklch, _ := Lookup("oklch", nil)

	for _, rgb := range sampleColours {
		c := rgb.Float()

		l, a, b := c.OkLab()
		if got := oklab.FromReference(rgb.Reference()); math.Abs(got[0]-l) > 1e-9 ||
			math.Abs(got[1]-a) > 1e-9 || math.Abs(got[2]-b) > 1e-9 {
			t.Errorf("%s: oklab = %v, want {%v %v %v}", rgb.Hex(), got, l, a, b)
		}

		l, ch, h := c.OkLch()
		got := oklch.FromReference(rgb.Reference())
		if math.Abs(got[0]-l) > 1e-9 || math.Abs(got[1]-ch) > 1e-9 || math.Abs(HueDistance(got[2], h)) > 1e-9 {
			t.Errorf("%s: oklch = %v, want {%v %v %v}", rgb.Hex(), got, l, ch, h)
		}
	}
}

func TestMix(t *testing.T) {
	vp := DefaultViewingConditions().Bake()
	hsl, _ := Lookup("hsl", vp)
	lab, _ := Lookup("lab", vp)
	lch, _ := Lookup("lch", vp)

	tests := []struct {
		name  string
		model Model
		a, b  Value
		t     float64
		want  Value
	}{
		{
			name:  "hue wraps through zero",
			model: hsl,
			a:     Value{350, 0.5, 0.5},
			b:     Value{10, 0.7, 0.3},
			t:     0.5,
			want:  Value{0, 0.6, 0.4},
		},
		{
			name:  "hue in third channel",
			model: lch,
			a:     Value{0.5, 0.2, 10},
			b:     Value{0.7, 0.4, 350},
			t:     0.25,
			want:  Value{0.55, 0.25, 5},
		},
		{
			name:  "linear channels",
			model: lab,
			a:     Value{0.2, -0.1, 0.4},
			b:     Value{0.6, 0.3, -0.4},
			t:     0.5,
			want:  Value{0.4, 0.1, 0},
		},
		{
			name:  "start",
			model: hsl,
			a:     Value{120, 0.1, 0.2},
			b:     Value{300, 0.9, 0.8},
			t:     0,
			want:  Value{120, 0.1, 0.2},
		},
		{
			name:  "end",
			model: hsl,
			a:     Value{120, 0.1, 0.2},
			b:     Value{300, 0.9, 0.8},
			t:     1,
			want:  Value{300, 0.9, 0.8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mix(tt.model, tt.a, tt.b, tt.t)
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("Mix() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}
