package sink

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/matzehuels/wikicloud/pkg/cloud"
	"github.com/matzehuels/wikicloud/pkg/panel"
)

const cloudCSS = `
    text { fill: %s; font-family: %q, sans-serif; font-size: %.1fpx; }
    a text:hover { text-decoration: underline; }
    .box { fill: none; stroke: #c8c8c8; stroke-width: 0.5; }`

const fontFaceCSS = `
    @font-face { font-family: %q; src: url(data:font/ttf;base64,%s) format("truetype"); }`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily string
	fontTTF    []byte
	fontSize   float64
	foreground string
	background string
	links      bool
	boxes      bool
}

// WithFontSize sets the label size in pixels. It must match the size the
// layout was measured with.
func WithFontSize(px float64) SVGOption { return func(r *svgRenderer) { r.fontSize = px } }

// WithFontFamily names the font without embedding it.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// WithEmbeddedFont embeds ttf under family as a data URL.
func WithEmbeddedFont(family string, ttf []byte) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family; r.fontTTF = ttf }
}

// WithColors sets the text and background colors.
func WithColors(foreground, background string) SVGOption {
	return func(r *svgRenderer) { r.foreground = foreground; r.background = background }
}

// WithLinks wraps every label in a link to its search page.
func WithLinks() SVGOption { return func(r *svgRenderer) { r.links = true } }

// WithBoxes outlines every placement box.
func WithBoxes() SVGOption { return func(r *svgRenderer) { r.boxes = true } }

// RenderSVG draws gen as a standalone SVG document.
func RenderSVG(gen *cloud.Generation, opts ...SVGOption) []byte {
	r := svgRenderer{
		fontFamily: "sans-serif",
		fontSize:   16,
		foreground: "#111",
		background: "#fff",
	}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		gen.Width, gen.Height, gen.Width, gen.Height)

	r.renderStyle(&buf)
	fmt.Fprintf(&buf, "  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", panel.Escape(r.background))

	buf.WriteString("  <g class=\"cloud\">\n")
	for _, p := range gen.Placements() {
		r.renderPlacement(&buf, p)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderStyle(buf *bytes.Buffer) {
	buf.WriteString("  <style>")
	if len(r.fontTTF) > 0 {
		fmt.Fprintf(buf, fontFaceCSS, r.fontFamily, base64.StdEncoding.EncodeToString(r.fontTTF))
	}
	fmt.Fprintf(buf, cloudCSS, r.foreground, r.fontFamily, r.fontSize)
	buf.WriteString("\n  </style>\n")
}

func (r *svgRenderer) renderPlacement(buf *bytes.Buffer, p cloud.Placement) {
	b := p.Box
	if r.boxes {
		fmt.Fprintf(buf, "    <rect class=\"box\" x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"/>\n", b.X, b.Y, b.W, b.H)
	}

	text := fmt.Sprintf(`<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central">%s</text>`,
		b.X+b.W/2, b.Y+b.H/2, panel.Escape(p.Title))
	if r.links {
		fmt.Fprintf(buf, "    <a href=\"%s\" target=\"_blank\">%s</a>\n", panel.Escape(panel.SearchLink(p.Title)), text)
		return
	}
	fmt.Fprintf(buf, "    %s\n", text)
}
