package cloud

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/wikicloud/pkg/geom"
	"github.com/matzehuels/wikicloud/pkg/observability"
	"github.com/matzehuels/wikicloud/pkg/viewport"
)

// Surface receives committed placements.
type Surface interface {
	// Clear removes every placement of the previous generation.
	Clear()
	// Render draws one placement.
	Render(p Placement)
}

// Generation is one complete layout of a title list.
type Generation struct {
	ID     uuid.UUID `json:"id"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"` // cursor position after the last band
	Bands  []Band    `json:"bands"`
}

// Placements returns every placed title in render order.
func (g *Generation) Placements() []Placement {
	var out []Placement
	for _, b := range g.Bands {
		out = append(out, b.Placed...)
	}
	return out
}

// Skipped returns every title that found no position, in input order.
func (g *Generation) Skipped() []string {
	var out []string
	for _, b := range g.Bands {
		out = append(out, b.Skipped...)
	}
	return out
}

// Session holds the layout state shared by successive generations.
// A Session is not safe for concurrent use.
type Session struct {
	params   Params
	metrics  geom.Metrics
	rng      geom.Rand
	width    float64
	cursor   *Cursor
	surface  Surface
	viewport *viewport.Controller
	current  *Generation
}

// SessionOption configures a [Session].
type SessionOption func(*Session)

// WithSurface renders placements onto s as they are committed.
func WithSurface(s Surface) SessionOption { return func(ss *Session) { ss.surface = s } }

// WithViewport resets v whenever a new generation starts.
func WithViewport(v *viewport.Controller) SessionOption {
	return func(ss *Session) { ss.viewport = v }
}

// NewSession returns a session laying out titles on a surface width wide.
func NewSession(params Params, metrics geom.Metrics, rng geom.Rand, width float64, opts ...SessionOption) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, fmt.Errorf("surface width must be positive, got %v", width)
	}
	s := &Session{
		params:  params,
		metrics: metrics,
		rng:     rng,
		width:   width,
		cursor:  NewCursor(params.Baseline),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Cursor returns the session's layout cursor.
func (s *Session) Cursor() *Cursor { return s.cursor }

// Width returns the surface width.
func (s *Session) Width() float64 { return s.width }

// Current returns the most recent generation, or nil before the first one.
func (s *Session) Current() *Generation { return s.current }

// Clear discards the current generation: the surface is emptied, the cursor
// returns to the baseline and the scroll offset to zero.
func (s *Session) Clear() {
	if s.surface != nil {
		s.surface.Clear()
	}
	s.cursor.Reset()
	if s.viewport != nil {
		s.viewport.Reset()
	}
	s.current = nil
}

// Generate clears the session and lays out titles as a new generation.
// A group size is drawn from PerBand before every band, independently of
// earlier draws, and the group is sliced off the front of the remaining
// titles. The last group may be shorter than its drawn size. If measuring
// fails the session is left cleared.
func (s *Session) Generate(ctx context.Context, titles []string) (*Generation, error) {
	start := time.Now()
	observability.Layout().OnLayoutStart(ctx, len(titles))

	gen, err := s.generate(titles)

	placed, skipped := 0, 0
	if gen != nil {
		placed, skipped = len(gen.Placements()), len(gen.Skipped())
	}
	observability.Layout().OnLayoutComplete(ctx, placed, skipped, time.Since(start), err)
	return gen, err
}

func (s *Session) generate(titles []string) (*Generation, error) {
	s.Clear()

	packer := &Packer{
		Metrics:    s.metrics,
		Rand:       s.rng,
		Width:      s.width,
		BandHeight: s.params.BandHeight,
		BandGap:    s.params.BandGap,
		MaxTries:   s.params.MaxTries,
	}
	render := func(Placement) {}
	if s.surface != nil {
		render = s.surface.Render
	}

	gen := &Generation{ID: uuid.New(), Width: s.width}
	rest := titles
	for i := 0; len(rest) > 0; i++ {
		n := min(geom.SampleInt(s.rng, s.params.PerBand), len(rest))
		band, err := packer.Pack(i, s.cursor, rest[:n], render)
		if err != nil {
			s.Clear()
			return nil, err
		}
		gen.Bands = append(gen.Bands, band)
		rest = rest[n:]
	}
	gen.Height = s.cursor.Y()
	s.current = gen
	return gen, nil
}
