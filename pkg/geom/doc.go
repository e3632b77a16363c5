// Package geom provides the geometry primitives used by the cloud layout.
//
// Everything here lives in layout-surface coordinates: the origin is the
// top-left corner of the surface, x grows to the right and y grows down.
// Units are whatever the [Metrics] implementation reports (pixels for the
// font metrics, terminal cells for the cell metrics).
//
// # Boxes
//
// A [Box] is the footprint of one placed title. [Intersects] is a closed
// rectangle test: two boxes that touch along an edge intersect. Callers that
// need spacing between boxes get it from the padding that [Metrics] adds
// around every measured label.
//
// # Sampling
//
// [Sample] draws uniformly from a half-open range using a [Rand]. Any
// *rand.Rand from math/rand/v2 satisfies [Rand]; tests pass deterministic
// stubs.
package geom
