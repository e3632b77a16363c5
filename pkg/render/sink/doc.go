// Package sink provides output formats for generated word clouds.
//
// # Overview
//
// A "sink" transforms a [cloud.Generation] into a final output format:
//
//   - SVG: a standalone image, optionally with links and the embedded font
//   - JSON: the complete layout for external tools and the web page
//   - PDF and PNG: SVG converted with [render.ToPDF] and [render.ToPNG]
//
// # SVG Output
//
// Labels are drawn centered in their boxes. Boxes were measured with a
// specific font; [WithEmbeddedFont] ships that font inside the SVG so
// viewers draw the same glyph widths:
//
//	svg := sink.RenderSVG(gen,
//	    sink.WithEmbeddedFont(textmetrics.FontFamily, textmetrics.FontTTF()),
//	    sink.WithFontSize(16),
//	    sink.WithLinks(),
//	)
//
// Title text is entity-escaped before it is written.
//
// # JSON Output
//
// [RenderJSON] records the generation together with the settings that
// produced it (seed, profile, keyword), so a layout can be inspected or
// re-drawn without repeating the fetch.
//
// [cloud.Generation]: github.com/matzehuels/wikicloud/pkg/cloud.Generation
// [render.ToPDF]: github.com/matzehuels/wikicloud/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/wikicloud/pkg/render.ToPNG
package sink
