// Package server serves the word cloud to a browser.
//
// The server owns layout and summary resolution: the page asks for one
// generation sized to the window and for the panel state of a clicked title,
// and only draws what it gets back.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/wikicloud/pkg/config"
	"github.com/matzehuels/wikicloud/pkg/panel"
	"github.com/matzehuels/wikicloud/pkg/pipeline"
	"github.com/matzehuels/wikicloud/pkg/textmetrics"
)

//go:embed web
var webFS embed.FS

const shutdownTimeout = 5 * time.Second

// Runner computes layouts and resolves summaries. *pipeline.Runner
// satisfies it.
type Runner interface {
	Layout(ctx context.Context, opts pipeline.Options) (*pipeline.Result, error)
	Summary(ctx context.Context, title string) panel.State
}

// Server holds the router and everything the handlers need.
type Server struct {
	cfg      config.Config
	runner   Runner
	logger   *log.Logger
	page     *template.Template
	staticFS http.FileSystem
	router   chi.Router
	lineH    float64
}

// New creates a Server. A nil logger discards.
func New(cfg config.Config, runner Runner, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	s := &Server{
		cfg:    cfg,
		runner: runner,
		logger: logger,
		router: chi.NewRouter(),
	}
	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	f, err := textmetrics.NewFont(cfg.FontSize, 0)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	s.lineH = f.LineHeight()

	s.registerRoutes()
	return s, nil
}

func (s *Server) loadTemplates() error {
	page, err := template.ParseFS(webFS, "web/index.html")
	if err != nil {
		return fmt.Errorf("parsing page: %w", err)
	}
	s.page = page

	staticSub, err := fs.Sub(webFS, "web/static")
	if err != nil {
		return fmt.Errorf("creating static FS: %w", err)
	}
	s.staticFS = http.FS(staticSub)
	return nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("listening", "url", "http://"+ln.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
