package cloud_test

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/geom"
)

func ExampleSession_Generate() {
	params := cloud.Params{
		BandHeight: geom.Range{Min: 400, Max: 400},
		BandGap:    geom.Range{Min: 60, Max: 60},
		PerBand:    geom.IntRange{Min: 3, Max: 3},
		MaxTries:   cloud.DefaultMaxTries,
		Baseline:   240,
	}
	// Every label is 8px per byte wide and 20px tall.
	metrics := geom.MetricsFunc(func(text string) (geom.Size, error) {
		return geom.Size{W: float64(8 * len(text)), H: 20}, nil
	})

	s, err := cloud.NewSession(params, metrics, rand.New(rand.NewPCG(1, 2)), 4000)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	gen, err := s.Generate(context.Background(), []string{"Alpha", "Beta", "Gamma"})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("bands:", len(gen.Bands))
	for _, p := range gen.Placements() {
		fmt.Println(p.Title, p.Box.W)
	}
	fmt.Println("cursor:", s.Cursor().Y())
	// Output:
	// bands: 1
	// Alpha 40
	// Beta 32
	// Gamma 40
	// cursor: 700
}
