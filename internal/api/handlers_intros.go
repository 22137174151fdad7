package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"introserve/internal/intro"

	"github.com/go-chi/chi/v5"
)

// handleGetIntro resolves a key and returns the rendered intro.
func (s *Server) handleGetIntro(w http.ResponseWriter, r *http.Request) {
	key := introKey(r)

	art, err := s.source.Get(key)
	if err != nil {
		s.writeIntroError(w, key, err)
		return
	}

	var body bytes.Buffer
	if err := art.Body.Execute(&body, nil); err != nil {
		s.log.Error("render intro", "key", key, "error", err)
		jsonError(w, "failed to render intro", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"key":   key,
		"title": art.Title,
		"toc":   art.TOC,
		"body":  body.String(),
	})
}

// handleGetOutline returns the title and table of contents without
// rendering the body.
func (s *Server) handleGetOutline(w http.ResponseWriter, r *http.Request) {
	key := introKey(r)

	art, err := s.source.Get(key)
	if err != nil {
		s.writeIntroError(w, key, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"key":   key,
		"title": art.Title,
		"toc":   art.TOC,
	})
}

func (s *Server) writeIntroError(w http.ResponseWriter, key string, err error) {
	var notFound *intro.NotFoundError
	var orphan *intro.OrphanSubheadingError
	switch {
	case errors.As(err, &notFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &orphan):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		s.log.Error("resolve intro", "key", key, "error", err)
		jsonError(w, "failed to load intro: "+err.Error(), http.StatusInternalServerError)
	}
}

// introKey extracts the intro key from either the single-segment route
// parameter or the subdirectory catch-all.
func introKey(r *http.Request) string {
	if key := chi.URLParam(r, "key"); key != "" {
		return key
	}
	return chi.URLParam(r, "*")
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
