package gradient

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/blend/internal/colour"
)

var presetPairs = [][2]colour.RGB{
	{{R: 0x00, G: 0x33, B: 0x66}, {R: 0x99, G: 0xcc, B: 0x00}},
	{{R: 0xf0, G: 0x30, B: 0x10}, {R: 0x00, G: 0xc0, B: 0x20}},
	{{R: 0x00, G: 0xc0, B: 0x20}, {R: 0x20, G: 0x10, B: 0x80}},
	{{R: 0x20, G: 0x10, B: 0x80}, {R: 0xe8, G: 0xf8, B: 0x60}},
	{{R: 0xe8, G: 0xf8, B: 0x60}, {R: 0xf0, G: 0x30, B: 0x10}},
	{{R: 0x10, G: 0x04, B: 0x08}, {R: 0xf3, G: 0xf7, B: 0xff}},
}

func TestGradientScenario(t *testing.T) {
	m, err := colour.Lookup("rgb", nil)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	start := colour.RGB{R: 0x00, G: 0x33, B: 0x66}
	end := colour.RGB{R: 0x99, G: 0xcc, B: 0x00}

	got := Gradient(m, start, end, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if q := colour.Quantise(got[0]); q != start {
		t.Errorf("first = %s, want %s", q.Hex(), start.Hex())
	}
	if q := colour.Quantise(got[2]); q != end {
		t.Errorf("last = %s, want %s", q.Hex(), end.Hex())
	}

	if got := colour.Quantise(got[1]).Hex(); got != "#4d8033" {
		t.Errorf("midpoint = %s, want #4d8033", got)
	}
}

func TestGradientLinearSRGBMidpoint(t *testing.T) {
	m, err := colour.Lookup("lin-srgb", nil)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	// Black to white through linear light: the midpoint has half the
	// luminance, which sRGB encodes as 188.
	got := Gradient(m, colour.RGB{}, colour.RGB{R: 255, G: 255, B: 255}, 3)
	if q := colour.Quantise(got[1]); q != (colour.RGB{R: 188, G: 188, B: 188}) {
		t.Errorf("midpoint = %s, want #bcbcbc", q.Hex())
	}
}

func TestGradientLength(t *testing.T) {
	vp := colour.DefaultViewingConditions().Bake()
	start, end := presetPairs[0][0], presetPairs[0][1]

	for _, m := range colour.Models(vp) {
		for _, steps := range []int{1, 2, 3, 12, 50, 255} {
			if got := len(Gradient(m, start, end, steps)); got != steps {
				t.Errorf("%s: len(Gradient(steps=%d)) = %d", m.ID(), steps, got)
			}
		}
	}
}

func TestGradientNoSteps(t *testing.T) {
	m, _ := colour.Lookup("oklab", nil)
	for _, steps := range []int{0, -1} {
		got := Gradient(m, colour.RGB{}, colour.RGB{R: 255}, steps)
		if got == nil || len(got) != 0 {
			t.Errorf("Gradient(steps=%d) = %v, want empty slice", steps, got)
		}
	}
}

func TestGradientSingleStep(t *testing.T) {
	vp := colour.DefaultViewingConditions().Bake()
	start := colour.RGB{R: 0x3c, G: 0x9d, B: 0xb5}

	for _, m := range colour.Models(vp) {
		got := Gradient(m, start, colour.RGB{R: 255, G: 255, B: 255}, 1)
		if len(got) != 1 {
			t.Fatalf("%s: len = %d, want 1", m.ID(), len(got))
		}
		if q := colour.Quantise(got[0]); q != start {
			t.Errorf("%s: single step = %s, want %s", m.ID(), q.Hex(), start.Hex())
		}
	}
}

func TestGradientEndpoints(t *testing.T) {
	vp := colour.DefaultViewingConditions().Bake()

	for _, m := range colour.Models(vp) {
		t.Run(m.ID(), func(t *testing.T) {
			for _, pair := range presetPairs {
				for _, steps := range []int{2, 7, 12} {
					got := Gradient(m, pair[0], pair[1], steps)
					if q := colour.Quantise(got[0]); q != pair[0] {
						t.Errorf("%s→%s steps=%d: first = %s", pair[0].Hex(), pair[1].Hex(), steps, q.Hex())
					}
					if q := colour.Quantise(got[steps-1]); q != pair[1] {
						t.Errorf("%s→%s steps=%d: last = %s", pair[0].Hex(), pair[1].Hex(), steps, q.Hex())
					}
				}
			}
		})
	}
}

func TestGradientHueShorterArc(t *testing.T) {
	m, _ := colour.Lookup("hsl", nil)

	// hsl(350, 1, 0.5) to hsl(10, 1, 0.5) passes through red, not cyan.
	start := colour.RGB{R: 255, G: 0, B: 0x2b}
	end := colour.RGB{R: 255, G: 0x2b, B: 0}

	got := colour.Quantise(Gradient(m, start, end, 3)[1])
	if got.R != 255 || got.G > 1 || got.B > 1 {
		t.Errorf("midpoint = %s, want red", got.Hex())
	}
}

// spyModel records the viewing parameters seen on every conversion.
type spyModel struct {
	*colour.AppearanceModel
	seen []*colour.ViewingParameters
}

func (s *spyModel) FromReference(ref colour.XYZ) colour.Value {
	s.seen = append(s.seen, s.Parameters())
	return s.AppearanceModel.FromReference(ref)
}

func (s *spyModel) ToReference(v colour.Value) colour.XYZ {
	s.seen = append(s.seen, s.Parameters())
	return s.AppearanceModel.ToReference(v)
}

func TestViewingParametersReuse(t *testing.T) {
	e := New()
	vp := e.conditions.Bake()

	models, err := e.Models(vp)
	if err != nil {
		t.Fatalf("Models() error = %v", err)
	}

	for _, m := range models {
		am, ok := m.(*colour.AppearanceModel)
		if !ok {
			continue
		}
		spy := &spyModel{AppearanceModel: am}
		Gradient(spy, presetPairs[1][0], presetPairs[1][1], 12)

		if len(spy.seen) != 12+2 {
			t.Errorf("%s: %d conversions, want 14", am.ID(), len(spy.seen))
		}
		for i, p := range spy.seen {
			if p != vp || *p != *vp {
				t.Fatalf("%s: conversion %d used different viewing parameters", am.ID(), i)
			}
		}
	}
}

func TestNew(t *testing.T) {
	e := New()
	if e.logger == nil {
		t.Error("New() logger is nil, want null logger")
	}
	if e.conditions != colour.DefaultViewingConditions() {
		t.Errorf("New() conditions = %+v, want defaults", e.conditions)
	}

	names := []string{"oklch"}
	e = New(WithModels(names), WithLogger(nil))
	names[0] = "hsl"
	if e.models[0] != "oklch" {
		t.Error("WithModels() kept a reference to the caller's slice")
	}
	if e.logger == nil {
		t.Error("WithLogger(nil) replaced the logger with nil")
	}
}

func TestCompute(t *testing.T) {
	req := Request{
		Start: colour.RGB{R: 0x00, G: 0x33, B: 0x66},
		End:   colour.RGB{R: 0x99, G: 0xcc, B: 0x00},
		Steps: 12,
	}

	results, err := New().Compute(req)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if len(results) != len(colour.ModelIDs()) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(colour.ModelIDs()))
	}

	for i, r := range results {
		if r.ID != colour.ModelIDs()[i] {
			t.Errorf("result %d ID = %q, want %q", i, r.ID, colour.ModelIDs()[i])
		}
		if r.Model == "" || r.Reference == "" {
			t.Errorf("%s: missing name or reference", r.ID)
		}
		if len(r.Swatches) != req.Steps {
			t.Errorf("%s: %d swatches, want %d", r.ID, len(r.Swatches), req.Steps)
		}
		for _, s := range r.Swatches {
			want := colour.Quantise(colour.PickTextColour(s.Colour))
			if s.Text != want {
				t.Errorf("%s: text = %s, want %s", r.ID, s.Text.Hex(), want.Hex())
			}
			if s.Background != colour.Quantise(s.Colour) {
				t.Errorf("%s: background %s does not match colour", r.ID, s.Background.Hex())
			}
		}
		if r.Swatches[0].Background != req.Start || r.Swatches[req.Steps-1].Background != req.End {
			t.Errorf("%s: endpoints = %s, %s", r.ID, r.Swatches[0].Background.Hex(), r.Swatches[req.Steps-1].Background.Hex())
		}
	}
}

func TestComputeSelection(t *testing.T) {
	e := New(WithModels([]string{"OKLCH", "Cam16Jmh", "lin. srgb"}))
	results, err := e.Compute(Request{Start: colour.RGB{}, End: colour.RGB{R: 255, G: 255, B: 255}, Steps: 3})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	want := []string{"oklch", "cam16-jmh", "lin-srgb"}
	if len(results) != len(want) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(want))
	}
	for i, id := range want {
		if results[i].ID != id {
			t.Errorf("result %d = %q, want %q", i, results[i].ID, id)
		}
	}
}

func TestComputeUnknownModel(t *testing.T) {
	e := New(WithModels([]string{"oklch", "cmyk"}))
	results, err := e.Compute(Request{Steps: 3})
	if !errors.Is(err, colour.ErrUnknownModel) {
		t.Fatalf("Compute() error = %v, want ErrUnknownModel", err)
	}
	if results != nil {
		t.Errorf("Compute() results = %v, want nil", results)
	}
}

func TestComputeLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Output: &buf,
		Level:  hclog.Debug,
	})

	if _, err := New(WithLogger(logger), WithModels([]string{"hsl"})).Compute(Request{Steps: 2}); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for _, want := range []string{"computing gradients", "luminance_adaptation=", "achromatic_white="} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output = %q, want %q", buf.String(), want)
		}
	}
}
