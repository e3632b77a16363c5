package cloud

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikicloud/pkg/errors"
)

// TitleProvider supplies article titles.
type TitleProvider interface {
	// RandomTitles returns up to n random titles in provider order.
	RandomTitles(ctx context.Context, n int) ([]string, error)
	// SearchTitles returns up to n titles matching keyword in provider order.
	SearchTitles(ctx context.Context, keyword string, n int) ([]string, error)
}

// Runner fetches title lists and lays them out.
//
// The Runner is stateless apart from its provider and logger; layout state
// lives in the [Session] passed to [Runner.Load].
type Runner struct {
	Titles    TitleProvider
	NodeCount int
	Logger    *log.Logger
}

// NewRunner creates a runner requesting nodeCount titles per generation.
// If logger is nil, log.Default() is used.
func NewRunner(titles TitleProvider, nodeCount int, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Titles: titles, NodeCount: nodeCount, Logger: logger}
}

// FetchTitles returns random titles when keyword is blank, otherwise titles
// matching the trimmed keyword.
func (r *Runner) FetchTitles(ctx context.Context, keyword string) ([]string, error) {
	keyword = strings.TrimSpace(keyword)
	start := time.Now()

	var (
		titles []string
		err    error
	)
	if keyword == "" {
		titles, err = r.Titles.RandomTitles(ctx, r.NodeCount)
	} else {
		if verr := errors.ValidateKeyword(keyword); verr != nil {
			return nil, verr
		}
		titles, err = r.Titles.SearchTitles(ctx, keyword, r.NodeCount)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch titles: %w", err)
	}

	r.Logger.Debug("fetched titles",
		"keyword", keyword,
		"count", len(titles),
		"duration", time.Since(start).Round(time.Millisecond))
	return titles, nil
}

// Load fetches titles for keyword and generates a new layout in s.
// If fetching fails, s is left untouched and keeps the previous generation.
func (r *Runner) Load(ctx context.Context, s *Session, keyword string) (*Generation, error) {
	titles, err := r.FetchTitles(ctx, keyword)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	gen, err := s.Generate(ctx, titles)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	r.Logger.Info("generated layout",
		"bands", len(gen.Bands),
		"placed", len(gen.Placements()),
		"skipped", len(gen.Skipped()),
		"duration", time.Since(start).Round(time.Millisecond))
	return gen, nil
}
