package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/wikicloud/pkg/render/sink"
	"github.com/matzehuels/wikicloud/pkg/textmetrics"
)

// Render serializes result in every format of opts.Formats.
func (r *Runner) Render(ctx context.Context, result *Result, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if result == nil || result.Generation == nil {
		return nil, fmt.Errorf("no layout to render")
	}

	svgOpts := r.svgOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(result.Generation, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(result.Generation, r.jsonOptions(result)...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, result.Generation, opts.Scale, svgOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, result.Generation, svgOpts...)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func (r *Runner) svgOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{
		sink.WithFontSize(r.Config.FontSize),
		sink.WithEmbeddedFont(textmetrics.FontFamily, textmetrics.FontTTF()),
	}
	if opts.Links {
		svgOpts = append(svgOpts, sink.WithLinks())
	}
	if opts.Boxes {
		svgOpts = append(svgOpts, sink.WithBoxes())
	}
	return svgOpts
}

func (r *Runner) jsonOptions(result *Result) []sink.JSONOption {
	return []sink.JSONOption{
		sink.WithJSONSeed(result.Seed),
		sink.WithJSONProfile(result.Profile.Name),
		sink.WithJSONKeyword(result.Keyword),
	}
}
