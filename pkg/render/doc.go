// Package render converts rendered word clouds into other formats.
//
// The [sink] subpackage turns a cloud.Generation into SVG or JSON. This
// package holds the format conversion shared by those sinks:
//
//	svg := sink.RenderSVG(gen, opts...)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// Conversion shells out to rsvg-convert (from librsvg).
//
// [sink]: github.com/matzehuels/wikicloud/pkg/render/sink
package render
