package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmylchreest/blend/internal/colour"
	"github.com/jmylchreest/blend/internal/gradient"
)

type jsonDocument struct {
	Start  string      `json:"start"`
	End    string      `json:"end"`
	Steps  int         `json:"steps"`
	Models []jsonModel `json:"models"`
}

type jsonModel struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Reference string       `json:"reference"`
	Swatches  []jsonSwatch `json:"swatches"`
}

type jsonSwatch struct {
	Hex  string     `json:"hex"`
	RGB  colour.RGB `json:"rgb"`
	Text string     `json:"text"`
}

func writeJSON(w io.Writer, results []gradient.Result, opts Options) error {
	doc := jsonDocument{
		Start:  opts.Start.Hex(),
		End:    opts.End.Hex(),
		Steps:  opts.Steps,
		Models: make([]jsonModel, len(results)),
	}

	for i, r := range results {
		swatches := make([]jsonSwatch, len(r.Swatches))
		for j, s := range r.Swatches {
			swatches[j] = jsonSwatch{Hex: s.Background.Hex(), RGB: s.Background, Text: s.Text.Hex()}
		}
		doc.Models[i] = jsonModel{ID: r.ID, Name: r.Model, Reference: r.Reference, Swatches: swatches}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
