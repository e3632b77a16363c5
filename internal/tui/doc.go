// Package tui implements the interactive terminal view of the word cloud.
//
// The view is a bubbletea model. Titles are measured in terminal cells,
// packed by a [cloud.Session] and drawn onto a canvas that doubles as the
// session's render surface and the scroll controller's translation target.
//
// # Controls
//
//   - mouse wheel, up/down, pgup/pgdown: scroll
//   - left click on a title: open its detail panel
//   - left click on [x] or "x": close the panel
//   - left click elsewhere: close the panel
//   - "/" or a click on the top bar: open the search input
//   - enter: search for the typed keyword
//   - esc: close the panel and the search input, clearing it
//   - "r": new random cloud
//   - q, ctrl+c: quit
//
// A terminal resize starts a new generation: in-flight fetches are
// cancelled, the panel is closed and late results are discarded.
package tui
