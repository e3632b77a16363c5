package sink

import (
	"encoding/json"

	"github.com/matzehuels/wikicloud/pkg/cloud"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	seed    uint64
	seeded  bool
	profile string
	keyword string
}

// WithJSONSeed records the random seed, enabling reproducible re-rendering
// of the same title list.
func WithJSONSeed(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.seed = seed; r.seeded = true }
}

// WithJSONProfile records the layout profile name (e.g., "narrow", "wide").
func WithJSONProfile(name string) JSONOption { return func(r *jsonRenderer) { r.profile = name } }

// WithJSONKeyword records the search keyword the titles came from.
func WithJSONKeyword(kw string) JSONOption { return func(r *jsonRenderer) { r.keyword = kw } }

// Output is the JSON document produced by [RenderJSON].
type Output struct {
	ID         string            `json:"id"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Seed       *uint64           `json:"seed,omitempty"`
	Profile    string            `json:"profile,omitempty"`
	Keyword    string            `json:"keyword,omitempty"`
	Bands      []BandOutput      `json:"bands"`
	Placements []cloud.Placement `json:"placements"`
	Skipped    []string          `json:"skipped"`
}

// BandOutput describes one band without repeating its placements.
type BandOutput struct {
	Index  int      `json:"index"`
	Top    float64  `json:"top"`
	Height float64  `json:"height"`
	Gap    float64  `json:"gap"`
	Titles []string `json:"titles"`
}

// BuildOutput assembles the JSON document for gen.
func BuildOutput(gen *cloud.Generation, opts ...JSONOption) Output {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := Output{
		ID:         gen.ID.String(),
		Width:      gen.Width,
		Height:     gen.Height,
		Profile:    r.profile,
		Keyword:    r.keyword,
		Bands:      make([]BandOutput, 0, len(gen.Bands)),
		Placements: gen.Placements(),
		Skipped:    gen.Skipped(),
	}
	if r.seeded {
		seed := r.seed
		out.Seed = &seed
	}
	if out.Placements == nil {
		out.Placements = []cloud.Placement{}
	}
	if out.Skipped == nil {
		out.Skipped = []string{}
	}
	for _, b := range gen.Bands {
		out.Bands = append(out.Bands, BandOutput{
			Index:  b.Index,
			Top:    b.Top,
			Height: b.Height,
			Gap:    b.Gap,
			Titles: b.Titles,
		})
	}
	return out
}

// RenderJSON encodes gen as indented JSON.
func RenderJSON(gen *cloud.Generation, opts ...JSONOption) ([]byte, error) {
	return json.MarshalIndent(BuildOutput(gen, opts...), "", "  ")
}
