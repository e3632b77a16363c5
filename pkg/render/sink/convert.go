package sink

import (
	"context"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/render"
)

// RenderPDF renders gen as PDF via SVG conversion.
func RenderPDF(ctx context.Context, gen *cloud.Generation, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(gen, opts...))
}

// RenderPNG renders gen as PNG via SVG conversion at the given scale.
func RenderPNG(ctx context.Context, gen *cloud.Generation, scale float64, opts ...SVGOption) ([]byte, error) {
	return render.ToPNG(ctx, RenderSVG(gen, opts...), scale)
}
