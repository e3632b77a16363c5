package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) registerRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)

	// Static files
	s.router.Get("/static/font.ttf", s.handleFont)
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(s.staticFS)))

	// Pages
	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)

	// API endpoints
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/layout", s.handleLayout)
		r.Get("/summary/{title}", s.handleSummary)
	})
}
