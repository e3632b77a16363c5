// Package wikipedia is the title and summary provider.
//
// [Client] talks to two Wikipedia endpoints:
//
//   - the action API (w/api.php) for random main-namespace titles and for
//     keyword search
//   - the REST API (api/rest_v1/page/summary) for the plain-text extract and
//     images of a single title
//
// The client satisfies both cloud.TitleProvider and panel.Fetcher, so one
// value feeds the layout and the detail panel.
//
// Summaries and searches are cached; random lists never are, since a cached
// random list would make every reload identical. Requests larger than the
// API's per-call limit are split into several calls.
//
// Wikimedia asks API clients to identify themselves; every request carries
// a User-Agent (see [github.com/matzehuels/wikicloud/pkg/buildinfo.UserAgent] and [WithUserAgent]).
package wikipedia
