package api

import (
	"log/slog"
	"net/http"

	"introserve/internal/config"
	"introserve/internal/intro"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for introserve.
type Server struct {
	router chi.Router
	source *intro.Source
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(source *intro.Source, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		source: source,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints. The catch-all serves keys that live in
	// subdirectories of a source root.
	r.Get("/health", s.handleHealth)
	r.Get("/api/intros/{key}", s.handleGetIntro)
	r.Get("/api/intros/{key}/outline", s.handleGetOutline)
	r.Get("/api/intros/*", s.handleGetIntro)
	r.Get("/api/stats", s.handleStats)

	// Admin endpoints, bearer-protected when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.AdminAPIKey != "" {
			r.Use(AuthMiddleware(s.cfg.AdminAPIKey, s.log))
		}
		r.Delete("/api/cache", s.handleFlushCache)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
