package wikipedia

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/wikicloud/pkg/buildinfo"
	"github.com/matzehuels/wikicloud/pkg/cache"
	wcerrors "github.com/matzehuels/wikicloud/pkg/errors"
	"github.com/matzehuels/wikicloud/pkg/integrations"
	"github.com/matzehuels/wikicloud/pkg/panel"
)

const (
	// DefaultLanguage selects en.wikipedia.org.
	DefaultLanguage = "en"

	// maxBatch is the per-request list limit for anonymous API clients.
	maxBatch = 500
)

// Client provides access to the Wikipedia action and REST APIs.
// It handles HTTP requests with caching and optional retries.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL  string
	language string
}

// Option configures a [Client].
type Option func(*options)

type options struct {
	language  string
	baseURL   string
	userAgent string
	retries   int
}

// WithLanguage selects the Wikipedia edition, e.g. "de".
func WithLanguage(lang string) Option {
	return func(o *options) { o.language = lang }
}

// WithBaseURL overrides the site root, e.g. a mirror or a test server.
// The default is https://<language>.wikipedia.org.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = strings.TrimSuffix(u, "/") }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithRetries sets how often retryable failures are retried.
func WithRetries(n int) Option {
	return func(o *options) { o.retries = n }
}

// NewClient creates a Wikipedia client with the given cache backend.
//
// Parameters:
//   - backend: Cache backend for response caching (use cache.NewNullCache() for no caching)
//   - cacheTTL: How long summaries and search results are cached
func NewClient(backend cache.Cache, cacheTTL time.Duration, opts ...Option) *Client {
	o := options{language: DefaultLanguage}
	for _, opt := range opts {
		opt(&o)
	}
	if o.language == "" {
		o.language = DefaultLanguage
	}
	if o.userAgent == "" {
		o.userAgent = buildinfo.UserAgent()
	}
	if o.baseURL == "" {
		o.baseURL = fmt.Sprintf("https://%s.wikipedia.org", o.language)
	}

	headers := map[string]string{
		"User-Agent": o.userAgent,
		"Accept":     "application/json",
	}
	base := integrations.NewClient(backend, "wikipedia", cacheTTL, headers)
	base.SetKeyer(cache.NewScopedKeyer(nil, o.language+":"))
	base.SetRetries(o.retries)

	return &Client{
		Client:   base,
		baseURL:  o.baseURL,
		language: o.language,
	}
}

// Language returns the configured Wikipedia edition.
func (c *Client) Language() string { return c.language }

// RandomTitles returns n random main-namespace titles. Results are never
// cached. Titles may repeat across batches.
func (c *Client) RandomTitles(ctx context.Context, n int) ([]string, error) {
	titles := make([]string, 0, max(n, 0))
	for len(titles) < n {
		batch := min(n-len(titles), maxBatch)

		var data randomResponse
		err := c.Fetch(ctx, func() error {
			return c.Get(ctx, c.actionURL(url.Values{
				"list":        {"random"},
				"rnnamespace": {"0"},
				"rnlimit":     {strconv.Itoa(batch)},
			}), &data)
		})
		if err != nil {
			return nil, fmt.Errorf("random titles: %w", err)
		}
		if data.Error != nil {
			return nil, fmt.Errorf("random titles: %w: %s: %s", integrations.ErrNetwork, data.Error.Code, data.Error.Info)
		}
		if len(data.Query.Random) == 0 {
			break
		}
		for _, r := range data.Query.Random {
			titles = append(titles, r.Title)
		}
	}
	return titles, nil
}

// SearchTitles returns up to n main-namespace titles matching keyword,
// in relevance order. Results are cached per keyword and limit.
func (c *Client) SearchTitles(ctx context.Context, keyword string, n int) ([]string, error) {
	return c.FetchSearch(ctx, keyword, n, false)
}

// FetchSearch is SearchTitles with explicit cache control.
// If refresh is true, the cache is bypassed.
func (c *Client) FetchSearch(ctx context.Context, keyword string, n int, refresh bool) ([]string, error) {
	keyword = strings.TrimSpace(keyword)
	if err := wcerrors.ValidateKeyword(keyword); err != nil {
		return nil, err
	}

	var titles []string
	err := c.Cached(ctx, c.QueryKey("search", keyword, n), refresh, &titles, func() error {
		var err error
		titles, err = c.search(ctx, keyword, n)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", keyword, err)
	}
	return titles, nil
}

func (c *Client) search(ctx context.Context, keyword string, n int) ([]string, error) {
	titles := make([]string, 0, max(n, 0))
	offset := 0
	for len(titles) < n {
		batch := min(n-len(titles), maxBatch)
		q := url.Values{
			"list":        {"search"},
			"srnamespace": {"0"},
			"srlimit":     {strconv.Itoa(batch)},
			"srsearch":    {keyword},
		}
		if offset > 0 {
			q.Set("sroffset", strconv.Itoa(offset))
		}

		var data searchResponse
		if err := c.Get(ctx, c.actionURL(q), &data); err != nil {
			return nil, err
		}
		if data.Error != nil {
			return nil, fmt.Errorf("%w: %s: %s", integrations.ErrNetwork, data.Error.Code, data.Error.Info)
		}
		for _, s := range data.Query.Search {
			titles = append(titles, s.Title)
		}
		if data.Continue == nil || len(data.Query.Search) == 0 {
			break
		}
		offset = data.Continue.SROffset
	}
	if len(titles) > n {
		titles = titles[:n]
	}
	return titles, nil
}

// FetchSummary retrieves the page summary for title.
//
// If refresh is true, the cache is bypassed and a fresh API call is made.
//
// Returns:
//   - the summary on success
//   - an [wcerrors.ErrCodeInvalidTitle] error for titles that cannot exist
//   - [integrations.ErrNotFound] if the page doesn't exist
//   - [integrations.ErrNetwork] for HTTP failures (timeout, 5xx, etc.)
func (c *Client) FetchSummary(ctx context.Context, title string, refresh bool) (*Summary, error) {
	if err := wcerrors.ValidateTitle(title); err != nil {
		return nil, err
	}

	var sum Summary
	err := c.Cached(ctx, c.ResourceKey(title), refresh, &sum, func() error {
		return c.fetchSummary(ctx, title, &sum)
	})
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

func (c *Client) fetchSummary(ctx context.Context, title string, sum *Summary) error {
	u := fmt.Sprintf("%s/api/rest_v1/page/summary/%s", c.baseURL, integrations.PathEncode(title))
	if err := c.Get(ctx, u, sum); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: title %s", err, title)
		}
		return err
	}
	return nil
}

// Summary implements panel.Fetcher.
func (c *Client) Summary(ctx context.Context, title string) (*panel.Summary, error) {
	sum, err := c.FetchSummary(ctx, title, false)
	if err != nil {
		return nil, err
	}
	return sum.Panel(), nil
}

// Panel converts the summary into panel content.
func (s *Summary) Panel() *panel.Summary {
	p := &panel.Summary{Extract: s.Extract}
	if s.Thumbnail != nil {
		p.ThumbnailURL = s.Thumbnail.Source
	}
	if s.OriginalImage != nil {
		p.OriginalImageURL = s.OriginalImage.Source
	}
	return p
}

func (c *Client) actionURL(q url.Values) string {
	q.Set("action", "query")
	q.Set("format", "json")
	return c.baseURL + "/w/api.php?" + q.Encode()
}

var _ panel.Fetcher = (*Client)(nil)
