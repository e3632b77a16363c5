package cloud

import (
	"fmt"

	"github.com/matzehuels/wikicloud/pkg/geom"
)

// DefaultMaxTries is the number of random positions tried per title.
const DefaultMaxTries = 30

// Params are the layout constants of one profile.
type Params struct {
	BandHeight geom.Range    // height of each band
	BandGap    geom.Range    // empty space after each band
	PerBand    geom.IntRange // titles per band, inclusive
	MaxTries   int           // positions tried per title
	Baseline   float64       // cursor position of an empty surface
}

// Validate reports the first inconsistency in p.
func (p Params) Validate() error {
	switch {
	case p.BandHeight.Empty() || p.BandHeight.Min <= 0:
		return fmt.Errorf("band height range [%v, %v) is invalid", p.BandHeight.Min, p.BandHeight.Max)
	case p.BandGap.Empty() || p.BandGap.Min < 0:
		return fmt.Errorf("band gap range [%v, %v) is invalid", p.BandGap.Min, p.BandGap.Max)
	case p.PerBand.Min < 1 || p.PerBand.Max < p.PerBand.Min:
		return fmt.Errorf("per-band range [%d, %d] is invalid", p.PerBand.Min, p.PerBand.Max)
	case p.MaxTries < 0:
		return fmt.Errorf("max tries must not be negative, got %d", p.MaxTries)
	}
	return nil
}
