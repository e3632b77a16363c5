// Package textmetrics provides [geom.Metrics] implementations.
//
// Two measurers are provided:
//
//   - [Font] measures labels set in Go Regular (embedded via
//     golang.org/x/image/font/gofont) at a fixed size, in pixels. The SVG sink
//     and the served page use the same font, so placed boxes match what the
//     browser draws.
//   - [Cells] measures labels in terminal cells using ANSI-aware display
//     width, for the interactive terminal view.
//
// Both add a symmetric padding around the text extent.
package textmetrics
