package textmetrics

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/wikicloud/pkg/geom"
)

// Cells measures labels in terminal cells. Every label is one row tall.
type Cells struct {
	PadX, PadY int
}

// Measure returns the display width of text plus padding, in cells.
func (c Cells) Measure(text string) (geom.Size, error) {
	return geom.Size{
		W: float64(ansi.StringWidth(text) + 2*c.PadX),
		H: float64(1 + 2*c.PadY),
	}, nil
}

var _ geom.Metrics = Cells{}
