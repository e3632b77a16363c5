// Package cloud lays out article titles as a randomly scattered word cloud.
//
// # Bands
//
// Titles are placed in horizontal bands stacked top to bottom. A [Packer]
// handles one band: it draws a band height and a band gap from their
// configured ranges, then tries up to MaxTries random positions per title,
// accepting the first one that does not intersect a box already placed in
// the same band. Boxes from earlier bands are never consulted, so boxes of
// neighbouring bands may touch or overlap. Titles that find no position are
// reported in [Band.Skipped] and are not rendered.
//
// After a band the [Cursor] advances by height plus gap.
//
// # Generations
//
// A [Session] owns the mutable layout state: the cursor, the render
// [Surface] and an optional scroll controller. [Session.Generate] starts a
// new [Generation]: it clears the surface, resets the cursor to the
// baseline and the scroll offset to zero, then slices the titles into groups
// of random size within PerBand and packs each group.
//
// # Runner
//
// [Runner] joins a [TitleProvider] with a [Session]: it fetches random or
// keyword-matched titles and generates a layout from them.
package cloud
