// Package panel implements the detail panel shown for a clicked title.
//
// The panel is a small state machine:
//
//	Hidden  --Open(title)-->        Loading(title)
//	Loading --Complete(ok)-->       Loaded
//	Loading --Complete(err)-->      Failed
//	any     --Close()-->            Hidden
//
// [Controller.Open] shows the title immediately with a loading message and
// an outbound search link, clears any image, and returns a [Ticket] for the
// summary fetch the caller starts right away.
//
// # Concurrent fetches
//
// Fetches are not sequenced. Whichever completion arrives last overwrites
// the panel content, even if a different title was clicked after it was
// started: the displayed title stays the last clicked one while the content
// comes from the last resolver. [State.Source] names the title the content
// belongs to, so the mismatch is observable. A completion arriving while the
// panel is hidden is dropped.
//
// # Markup
//
// [State.Content] is markup ready for insertion into a page. Extract text is
// passed through [Escape] first.
package panel
