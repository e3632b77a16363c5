package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/config"
	"github.com/matzehuels/wikicloud/pkg/geom"
	"github.com/matzehuels/wikicloud/pkg/panel"
	"github.com/matzehuels/wikicloud/pkg/textmetrics"
)

// seedMix derives the second PCG word from the seed.
const seedMix = 0x9e3779b97f4a7c15

// Provider supplies title lists and article summaries.
type Provider interface {
	cloud.TitleProvider
	panel.Fetcher
}

// Runner encapsulates pipeline execution.
// Both CLI and server use this to avoid duplicating profile selection,
// measurement and rendering.
//
// The Runner is stateless except for its configuration, provider and logger.
// Every run builds a fresh [cloud.Session], so multiple goroutines can safely
// use the same Runner with different options.
type Runner struct {
	Config   config.Config
	Provider Provider
	Logger   *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(cfg config.Config, provider Provider, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Config: cfg, Provider: provider, Logger: logger}
}

// Execute runs the complete fetch → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, err
	}
	if !opts.NeedsRender() {
		return result, nil
	}

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// Layout fetches titles and packs them for opts.Width.
func (r *Runner) Layout(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	profile := r.Config.Select(opts.Width)
	seed := opts.Seed
	if seed == 0 {
		seed = NewSeed()
	}
	result := &Result{
		Profile:   profile,
		Seed:      seed,
		Keyword:   strings.TrimSpace(opts.Keyword),
		Artifacts: make(map[string][]byte),
	}

	session, err := r.NewSession(profile, opts.Width, seed)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	// Stage 1: Fetch
	fetchStart := time.Now()
	fetcher := cloud.NewRunner(r.Provider, profile.NodeCount, r.Logger)
	titles, err := r.fetchTitles(ctx, fetcher, result.Keyword)
	if err != nil {
		return nil, err
	}
	result.Stats.Titles = len(titles)
	result.Stats.FetchTime = time.Since(fetchStart)

	// Stage 2: Layout
	layoutStart := time.Now()
	gen, err := session.Generate(ctx, titles)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Generation = gen
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Bands = len(gen.Bands)
	result.Stats.Placed = len(gen.Placements())
	result.Stats.Skipped = len(gen.Skipped())

	r.Logger.Info("computed layout",
		"profile", profile.Name,
		"titles", result.Stats.Titles,
		"placed", result.Stats.Placed,
		"skipped", result.Stats.Skipped,
		"duration", result.Stats.LayoutTime)
	return result, nil
}

func (r *Runner) fetchTitles(ctx context.Context, fetcher *cloud.Runner, keyword string) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return fetcher.FetchTitles(ctx, keyword)
}

// Summary resolves the detail panel content for title. Errors are folded
// into a Failed state and logged.
func (r *Runner) Summary(ctx context.Context, title string) panel.State {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	sum, err := r.Provider.Summary(ctx, title)
	if err != nil {
		r.Logger.Warn("summary fetch failed", "title", title, "error", err)
	}
	return panel.Resolve(title, sum, err)
}

// NewSession returns a session for profile on a surface width wide, drawing
// from a generator seeded with seed.
func (r *Runner) NewSession(profile config.Profile, width float64, seed uint64, opts ...cloud.SessionOption) (*cloud.Session, error) {
	metrics, err := PixelMetrics(r.Config.FontSize, profile)
	if err != nil {
		return nil, err
	}
	return cloud.NewSession(profile.Params(), metrics, NewRand(seed), width, opts...)
}

func (r *Runner) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d := r.Config.API.Timeout.Duration; d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// PixelMetrics measures labels in Go Regular at size pixels, padded by the
// profile's padding.
func PixelMetrics(size float64, profile config.Profile) (geom.Metrics, error) {
	font, err := textmetrics.NewFont(size, 0)
	if err != nil {
		return nil, err
	}
	return geom.Padded(font, profile.PaddingX, profile.PaddingY), nil
}

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedMix))
}

// NewSeed draws a fresh non-zero seed.
func NewSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}
