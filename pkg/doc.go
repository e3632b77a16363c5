// Package pkg provides the core libraries for wikicloud.
//
// # Overview
//
// wikicloud scatters Wikipedia article titles over a tall, scrollable surface.
// Titles are grouped into horizontal bands of random height; inside a band each
// title is dropped at random positions until it overlaps nothing already
// placed, or is skipped. Clicking a title opens a detail panel with the
// article summary. The pkg directory is organized into four main areas:
//
//  1. Layout - geometry, text measurement and the band packer
//  2. Interaction - scroll offset and detail panel state
//  3. Integrations - the Wikipedia API client and its response cache
//  4. Output - the fetch → layout → render pipeline and its sinks
//
// # Architecture
//
// The typical data flow:
//
//	Wikipedia (random or search titles)
//	         ↓
//	    [integrations/wikipedia] (fetch, cached by [cache])
//	         ↓
//	    [cloud] (bands + random placement, measured by [textmetrics])
//	         ↓
//	    [render/sink] (SVG, JSON) → [render] (PNG, PDF)
//
// # Quick Start
//
// Lay out one generation and write it as SVG:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/wikicloud/pkg/cache"
//	    "github.com/matzehuels/wikicloud/pkg/config"
//	    "github.com/matzehuels/wikicloud/pkg/integrations/wikipedia"
//	    "github.com/matzehuels/wikicloud/pkg/pipeline"
//	)
//
//	cfg := config.Default()
//	client := wikipedia.NewClient(cache.NewNullCache(), cfg.Cache.TTL.Duration)
//	runner := pipeline.NewRunner(cfg, client, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Width:   1280,
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
//
// # Main Packages
//
// ## Layout
//
// [geom] - Boxes, sizes, uniform ranges and the random source interface.
//
// [textmetrics] - Label measurement: the embedded Go font for pixel surfaces,
// display cells for terminals.
//
// [cloud] - The band packer, the session that owns a surface between
// generations, and the runner that fetches titles for it.
//
// ## Interaction
//
// [viewport] - Vertical scroll translation driven by wheel deltas.
//
// [panel] - Detail panel states (hidden, loading, loaded, failed) and the
// controller that applies finished summary fetches.
//
// ## Integrations
//
// [integrations] - Shared HTTP client with caching, retries and hooks.
//
// [integrations/wikipedia] - Random titles, keyword search and page summaries.
//
// [cache] - Response cache backends: file, Redis and null.
//
// ## Output and Support
//
// [pipeline] - Profile selection, seeding and the fetch → layout → render
// run shared by the CLI and the server.
//
// [render/sink] - SVG and JSON encoders for a generation.
//
// [render] - SVG to PNG and PDF conversion.
//
// [config] - TOML configuration with layout profiles.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Layout, cache and HTTP hooks with no-op defaults.
//
// [buildinfo] - Version information set at link time.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/geom
// [textmetrics]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/textmetrics
// [cloud]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/cloud
// [viewport]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/viewport
// [panel]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/panel
// [integrations]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/integrations
// [integrations/wikipedia]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/integrations/wikipedia
// [cache]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/pipeline
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/render/sink
// [render]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/render
// [config]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wikicloud/pkg/buildinfo
package pkg
