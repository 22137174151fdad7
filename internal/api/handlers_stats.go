package api

import (
	"encoding/json"
	"net/http"
)

// handleStats reports cache size and recent build latencies.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"cache_entries": s.source.Cache().Len(),
		"builds":        s.source.Stats().Snapshot(),
	})
}

// handleFlushCache evicts every cached artifact.
func (s *Server) handleFlushCache(w http.ResponseWriter, r *http.Request) {
	n := s.source.Cache().Flush()
	s.log.Info("cache flushed", "evicted", n)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"evicted": n})
}
