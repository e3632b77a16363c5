// Package pipeline provides the fetch → layout → render pipeline for wikicloud.
//
// The CLI, the terminal browser and the HTTP server all produce clouds the
// same way: pick a profile for the surface width, fetch a title list, pack
// it into bands and optionally serialize the result. Centralizing that here
// keeps every entry point consistent.
//
// # Usage
//
//	runner := pipeline.NewRunner(cfg, provider, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Width:   1280,
//	    Keyword: "volcano",
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Layout only
//	result, err := runner.Layout(ctx, opts)
//
//	// Render an existing layout
//	artifacts, err := runner.Render(ctx, result, opts)
package pipeline

import (
	"fmt"
	"math"
	"time"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/config"
	"github.com/matzehuels/wikicloud/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultWidth is the surface width used when none is given.
	DefaultWidth = 1280.0

	// DefaultScale is the PNG rasterization scale.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Fetch options
	Keyword string `json:"keyword,omitempty"` // blank means random titles

	// Layout options
	Width float64 `json:"width,omitempty"`
	Seed  uint64  `json:"seed,omitempty"` // zero draws a fresh seed

	// Render options
	Formats []string `json:"formats,omitempty"`
	Links   bool     `json:"links,omitempty"`
	Boxes   bool     `json:"boxes,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Generation is the packed layout.
	Generation *cloud.Generation

	// Profile is the layout profile selected for the width.
	Profile config.Profile

	// Seed reproduces the layout for the same title list.
	Seed uint64

	// Keyword is the trimmed search keyword, empty for random titles.
	Keyword string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Titles     int
	Placed     int
	Skipped    int
	Bands      int
	FetchTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateWidth checks that a surface width is usable.
func ValidateWidth(width float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return errors.New(errors.ErrCodeInvalidWidth, "width must be a positive finite number, got %v", width)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if err := ValidateWidth(o.Width); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", o.Scale)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// NeedsRender reports whether any output format was requested.
func (o *Options) NeedsRender() bool {
	return len(o.Formats) > 0
}

// String summarizes the options for log lines.
func (o Options) String() string {
	if o.Keyword == "" {
		return fmt.Sprintf("random width=%v", o.Width)
	}
	return fmt.Sprintf("search %q width=%v", o.Keyword, o.Width)
}
