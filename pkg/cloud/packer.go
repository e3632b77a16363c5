package cloud

import (
	"fmt"

	"github.com/matzehuels/wikicloud/pkg/geom"
)

// Placement is a title committed to the surface.
type Placement struct {
	Title string   `json:"title"`
	Box   geom.Box `json:"box"`
	Band  int      `json:"band"`
}

// Band is the outcome of packing one group of titles.
type Band struct {
	Index   int         `json:"index"`
	Top     float64     `json:"top"`
	Height  float64     `json:"height"`
	Gap     float64     `json:"gap"`
	Titles  []string    `json:"titles"`
	Placed  []Placement `json:"placed"`
	Skipped []string    `json:"skipped,omitempty"`
}

// Packer places one group of titles into a band.
type Packer struct {
	Metrics    geom.Metrics
	Rand       geom.Rand
	Width      float64 // surface width
	BandHeight geom.Range
	BandGap    geom.Range
	MaxTries   int
}

// Pack places titles into a new band starting at cursor.Y and advances the
// cursor by the band height plus gap. Each committed placement is passed to
// render, in order, as soon as it is accepted.
//
// Titles that exhaust MaxTries, or whose box cannot fit the band at all, are
// returned in Band.Skipped. Pack only fails if measuring a title fails; the
// cursor is left untouched in that case.
func (p *Packer) Pack(index int, cursor *Cursor, titles []string, render func(Placement)) (Band, error) {
	band := Band{
		Index:  index,
		Top:    cursor.Y(),
		Height: geom.SampleRange(p.Rand, p.BandHeight),
		Gap:    geom.SampleRange(p.Rand, p.BandGap),
		Titles: titles,
	}

	boxes := make([]geom.Box, 0, len(titles))
	for _, title := range titles {
		size, err := p.Metrics.Measure(title)
		if err != nil {
			return Band{}, fmt.Errorf("measure %q: %w", title, err)
		}

		box, ok := p.place(size, band.Top, band.Height, boxes)
		if !ok {
			band.Skipped = append(band.Skipped, title)
			continue
		}
		boxes = append(boxes, box)

		pl := Placement{Title: title, Box: box, Band: index}
		band.Placed = append(band.Placed, pl)
		if render != nil {
			render(pl)
		}
	}

	cursor.Advance(band.Height + band.Gap)
	return band, nil
}

// place samples candidate positions until one clears every box in placed.
func (p *Packer) place(size geom.Size, top, height float64, placed []geom.Box) (geom.Box, bool) {
	xSpan := p.Width - size.W
	ySpan := height - size.H
	if xSpan < 0 || ySpan < 0 {
		return geom.Box{}, false
	}
	for range p.MaxTries {
		candidate := geom.Box{
			X: p.Rand.Float64() * xSpan,
			Y: top + p.Rand.Float64()*ySpan,
			W: size.W,
			H: size.H,
		}
		if !geom.IntersectsAny(candidate, placed) {
			return candidate, true
		}
	}
	return geom.Box{}, false
}
