package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikicloud/pkg/observability"
)

// logHooks reports observability events through the logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.LayoutHooks = logHooks{}
	_ observability.CacheHooks  = logHooks{}
	_ observability.HTTPHooks   = logHooks{}
)

// installLogHooks routes all observability events to logger and returns a
// function restoring the no-op defaults.
func installLogHooks(logger *log.Logger) func() {
	h := logHooks{logger: logger.WithPrefix("hooks")}
	observability.SetLayoutHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
	return observability.Reset
}

func (h logHooks) OnLayoutStart(_ context.Context, titleCount int) {
	h.logger.Debug("layout start", "titles", titleCount)
}

func (h logHooks) OnLayoutComplete(_ context.Context, placed, skipped int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("layout failed", "error", err, "duration", d.Round(time.Microsecond))
		return
	}
	h.logger.Debug("layout done", "placed", placed, "skipped", skipped, "duration", d.Round(time.Microsecond))
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path,
		"status", status, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("http error", "method", method, "host", host, "path", path, "error", err)
}
