package colour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownModel is returned when a model name does not match any supported model.
var ErrUnknownModel = errors.New("unknown colour model")

// Value is a colour expressed in a particular model. The meaning and scale of each
// component depends on the model.
type Value [3]float64

// Model is a colour representation that converts to and from the reference space.
type Model interface {
	// ID is the stable identifier used to select the model.
	ID() string
	// Name is the display name.
	Name() string
	// Reference is a URL documenting the model.
	Reference() string
	// HueChannel is the index of the angular component, or NoHue.
	HueChannel() int
	// FromReference converts a reference colour into the model.
	FromReference(XYZ) Value
	// ToReference converts a value of the model into the reference space.
	ToReference(Value) XYZ
}

// SRGBModel is a Model defined directly on sRGB. Converting through it avoids
// the round trip via the reference space, so values are exact.
type SRGBModel interface {
	Model
	FromSRGB(colorful.Color) Value
	ToSRGB(Value) colorful.Color
}

// Encode converts an sRGB colour into m, directly when m is an SRGBModel.
func Encode(m Model, c colorful.Color) Value {
	if sm, ok := m.(SRGBModel); ok {
		return sm.FromSRGB(c)
	}
	return m.FromReference(FromSRGB(c))
}

// Decode converts a value of m to unclamped sRGB, directly when m is an SRGBModel.
func Decode(m Model, v Value) colorful.Color {
	if sm, ok := m.(SRGBModel); ok {
		return sm.ToSRGB(v)
	}
	return m.ToReference(v).SRGB()
}

// Mix linearly interpolates between a and b at position t. The angular
// component, if any, follows the shorter arc.
func Mix(m Model, a, b Value, t float64) Value {
	hue := m.HueChannel()
	var out Value
	for i := range out {
		if i == hue {
			out[i] = MixHue(a[i], b[i], t)
			continue
		}
		out[i] = a[i] + t*(b[i]-a[i])
	}
	return out
}

// Models returns every supported model in display order. The appearance models
// share vp.
func Models(vp *ViewingParameters) []Model {
	models := make([]Model, 0, len(ordinaryModels)+len(allCorrelates))
	models = append(models, ordinaryModels...)
	for _, c := range allCorrelates {
		models = append(models, NewAppearanceModel(c, vp))
	}
	return models
}

// ModelIDs returns the identifiers of every supported model in display order.
func ModelIDs() []string {
	ids := make([]string, 0, len(ordinaryModels)+len(allCorrelates))
	for _, m := range ordinaryModels {
		ids = append(ids, m.ID())
	}
	for _, c := range allCorrelates {
		ids = append(ids, c.id())
	}
	return ids
}

// Lookup returns the model with the given identifier or display name.
// Matching is case-insensitive. Appearance models share vp; a nil vp bakes the
// default viewing conditions.
func Lookup(name string, vp *ViewingParameters) (Model, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, m := range ordinaryModels {
		if key == m.ID() || key == strings.ToLower(m.Name()) {
			return m, nil
		}
	}
	for _, c := range allCorrelates {
		if key == c.id() || key == strings.ToLower(c.name()) {
			if vp == nil {
				vp = DefaultViewingConditions().Bake()
			}
			return NewAppearanceModel(c, vp), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}
