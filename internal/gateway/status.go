package gateway

import (
	"encoding/json"
	"net/http"
	"time"
)

// StatusResponse is the JSON response for GET /status.
type StatusResponse struct {
	Uptime      time.Duration   `json:"uptime_seconds"`
	Metrics     MetricsSnapshot `json:"metrics"`
	Entries     int             `json:"entries"`
	IndexSource string          `json:"index_source"`
	IndexAge    time.Duration   `json:"index_age_seconds"`
	Subscribers int             `json:"event_subscribers"`
}

// handleStatus returns an http.HandlerFunc for GET /status.
func (g *Gateway) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idx := g.cache.Get(r.Context())

		resp := StatusResponse{
			Uptime:      time.Since(g.startedAt).Truncate(time.Second),
			Metrics:     g.metrics.Snapshot(),
			Entries:     idx.Len(),
			IndexSource: idx.Source,
			IndexAge:    time.Since(idx.LoadedAt).Truncate(time.Second),
			Subscribers: g.events.Subscribers(),
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
