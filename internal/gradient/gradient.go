// Package gradient computes colour gradients between two endpoints in every
// supported colour model.
package gradient

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/blend/internal/colour"
)

// Gradient returns steps colours from start to end, interpolated in m.
// The first and last elements are the endpoints. Intermediate colours are not
// clamped to the sRGB gamut.
func Gradient(m colour.Model, start, end colour.RGB, steps int) []colorful.Color {
	if steps < 1 {
		return []colorful.Color{}
	}

	a := colour.Encode(m, start.Float())
	b := colour.Encode(m, end.Float())

	factor := 1 / float64(max(steps-1, 1))
	out := make([]colorful.Color, steps)
	for idx := range out {
		t := factor * float64(idx)
		out[idx] = colour.Decode(m, colour.Mix(m, a, b, t))
	}
	return out
}

// Request describes one gradient computation.
type Request struct {
	Start colour.RGB
	End   colour.RGB
	Steps int
}

// Swatch is a gradient colour paired with the text colour that reads best on it.
type Swatch struct {
	// Colour is the unclamped sRGB colour.
	Colour     colorful.Color `json:"-"`
	Background colour.RGB     `json:"background"`
	Text       colour.RGB     `json:"text"`
}

// Result holds the swatches computed in one model.
type Result struct {
	Model     string   `json:"model"`
	ID        string   `json:"id"`
	Reference string   `json:"reference"`
	Swatches  []Swatch `json:"swatches"`
}

// Engine computes gradients across a selection of models. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	logger     hclog.Logger
	conditions colour.ViewingConditions
	models     []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithViewingConditions sets the conditions the appearance models are evaluated under.
func WithViewingConditions(vc colour.ViewingConditions) Option {
	return func(e *Engine) {
		e.conditions = vc
	}
}

// WithModels restricts computation to the named models. An empty selection
// means every model.
func WithModels(names []string) Option {
	return func(e *Engine) {
		e.models = append([]string(nil), names...)
	}
}

// New creates an Engine. By default it computes every model under the default
// viewing conditions and discards log output.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:     hclog.NewNullLogger(),
		conditions: colour.DefaultViewingConditions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Models resolves the model selection against vp.
func (e *Engine) Models(vp *colour.ViewingParameters) ([]colour.Model, error) {
	if len(e.models) == 0 {
		return colour.Models(vp), nil
	}

	models := make([]colour.Model, 0, len(e.models))
	for _, name := range e.models {
		m, err := colour.Lookup(name, vp)
		if err != nil {
			return nil, fmt.Errorf("failed to select model: %w", err)
		}
		models = append(models, m)
	}
	return models, nil
}

// Compute runs the gradient for every selected model. Viewing parameters are
// derived once per call and shared by all appearance models.
func (e *Engine) Compute(req Request) ([]Result, error) {
	vp := e.conditions.Bake()

	models, err := e.Models(vp)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("computing gradients",
		"start", req.Start.Hex(),
		"end", req.End.Hex(),
		"steps", req.Steps,
		"models", len(models),
		"adapting_luminance", vp.Conditions().AdaptingLuminance,
		"surround", vp.Conditions().Surround.String(),
		"luminance_adaptation", vp.LuminanceAdaptation(),
		"achromatic_white", vp.AchromaticWhite(),
	)

	results := make([]Result, 0, len(models))
	for _, m := range models {
		colours := Gradient(m, req.Start, req.End, req.Steps)
		swatches := make([]Swatch, len(colours))
		for i, c := range colours {
			swatches[i] = Swatch{
				Colour:     c,
				Background: colour.Quantise(c),
				Text:       colour.Quantise(colour.PickTextColour(c)),
			}
		}

		e.logger.Trace("model computed", "model", m.ID(), "swatches", len(swatches))

		results = append(results, Result{
			Model:     m.Name(),
			ID:        m.ID(),
			Reference: m.Reference(),
			Swatches:  swatches,
		})
	}

	return results, nil
}
