package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/wikicloud/pkg/buildinfo"
	"github.com/matzehuels/wikicloud/pkg/errors"
	"github.com/matzehuels/wikicloud/pkg/integrations"
	"github.com/matzehuels/wikicloud/pkg/pipeline"
	"github.com/matzehuels/wikicloud/pkg/render/sink"
	"github.com/matzehuels/wikicloud/pkg/textmetrics"
)

// pageData fills the page template.
type pageData struct {
	FontFamily string
	FontSize   float64
	LineHeight float64
	Keyword    string
	Version    string
}

// layoutResponse is one generation plus the label padding the page needs to
// draw titles inside their boxes.
type layoutResponse struct {
	sink.Output
	PaddingX float64 `json:"padding_x"`
	PaddingY float64 `json:"padding_y"`
}

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.page.Execute(w, pageData{
		FontFamily: textmetrics.FontFamily,
		FontSize:   s.cfg.FontSize,
		LineHeight: s.lineH,
		Keyword:    strings.TrimSpace(r.URL.Query().Get("q")),
		Version:    buildinfo.Version,
	})
	if err != nil {
		s.logger.Error("render page", "error", err)
	}
}

func (s *Server) handleFont(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "font/ttf")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(textmetrics.FontTTF())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

// handleLayout computes one generation for the caller's surface width.
//
//	GET /api/layout?width=1280&q=volcano&seed=42
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := pipeline.Options{Keyword: strings.TrimSpace(q.Get("q"))}

	if v := q.Get("width"); v != "" {
		width, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidWidth, "width must be a number, got %q", v))
			return
		}
		if err := pipeline.ValidateWidth(width); err != nil {
			s.writeError(w, err)
			return
		}
		opts.Width = width
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "seed must be an unsigned integer, got %q", v))
			return
		}
		opts.Seed = seed
	}
	if opts.Keyword != "" {
		if err := errors.ValidateKeyword(opts.Keyword); err != nil {
			s.writeError(w, err)
			return
		}
	}

	result, err := s.runner.Layout(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, layoutResponse{
		Output: sink.BuildOutput(result.Generation,
			sink.WithJSONSeed(result.Seed),
			sink.WithJSONProfile(result.Profile.Name),
			sink.WithJSONKeyword(result.Keyword)),
		PaddingX: result.Profile.PaddingX,
		PaddingY: result.Profile.PaddingY,
	})
}

// handleSummary resolves the panel state for one title. Upstream failures
// are part of the state, so the status is 200 for every valid title.
//
//	GET /api/summary/{title}
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(title)
		if err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidTitle, err, "malformed title"))
			return
		}
		title = unescaped
	}
	if err := errors.ValidateTitle(title); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.runner.Summary(r.Context(), title))
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status, code := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.Warn("request failed", "code", code, "error", err)
	}
	s.writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

// statusOf maps an error to an HTTP status and a code for the body.
func statusOf(err error) (int, errors.Code) {
	var rl *errors.RateLimitedError
	switch {
	case stderrors.As(err, &rl):
		return http.StatusTooManyRequests, rl.Code()
	case stderrors.Is(err, integrations.ErrNotFound):
		return http.StatusNotFound, errors.ErrCodeNotFound
	case stderrors.Is(err, integrations.ErrNetwork):
		return http.StatusBadGateway, errors.ErrCodeNetwork
	}

	code := errors.GetCode(err)
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidTitle, errors.ErrCodeInvalidKeyword,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidWidth:
		return http.StatusBadRequest, code
	case errors.ErrCodeNotFound, errors.ErrCodeTitleNotFound:
		return http.StatusNotFound, code
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests, code
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, code
	case errors.ErrCodeNetwork:
		return http.StatusBadGateway, code
	case "":
		if stderrors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, errors.ErrCodeTimeout
		}
		return http.StatusInternalServerError, errors.ErrCodeInternal
	}
	return http.StatusInternalServerError, code
}

// writeJSON encodes v before committing the status, so an encoding failure
// becomes a 500 instead of an empty success.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("encode response", "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Code: errors.ErrCodeInternal, Message: "failed to encode response"})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		s.logger.Debug("write response", "error", err)
	}
}
