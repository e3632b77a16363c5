// Package integrations provides HTTP clients for the remote APIs wikicloud
// reads from.
//
// # Overview
//
// Each upstream API has its own subpackage:
//
//   - [wikipedia]: random titles, keyword search and page summaries
//
// # Client Pattern
//
// API clients embed [Client] and follow one pattern:
//
//	client := wikipedia.NewClient(backend, 24*time.Hour)
//	sum, err := client.FetchSummary(ctx, "Rome", false) // false = use cache
//
// [Client] handles:
//   - HTTP requests with retry on network failures, 5xx and 429 responses
//   - Response caching through any [cache.Cache] backend
//   - Default headers such as the User-Agent
//   - Request and cache events reported to [observability] hooks
//
// Status mapping: 200 succeeds, 404 is [ErrNotFound], 429 is a retryable
// [errors.RateLimitedError], 5xx is a retryable [ErrNetwork], and anything
// else is a non-retryable [ErrNetwork].
//
// [wikipedia]: github.com/matzehuels/wikicloud/pkg/integrations/wikipedia
// [cache.Cache]: github.com/matzehuels/wikicloud/pkg/cache.Cache
// [observability]: github.com/matzehuels/wikicloud/pkg/observability
// [errors.RateLimitedError]: github.com/matzehuels/wikicloud/pkg/errors.RateLimitedError
package integrations
