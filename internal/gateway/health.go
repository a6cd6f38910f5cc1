package gateway

import (
	"encoding/json"
	"net/http"
)

// HealthResponse is the JSON response for GET /health.
type HealthResponse struct {
	Status  string `json:"status"` // "ok" or "degraded"
	Entries int    `json:"entries"`
	Source  string `json:"source"`
}

// handleHealth returns an http.HandlerFunc for GET /health.
// Returns 200 when a usable index is available, 503 when the last load
// failed outright.
func (g *Gateway) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idx := g.cache.Get(r.Context())

		resp := HealthResponse{
			Status:  "ok",
			Entries: idx.Len(),
			Source:  idx.Source,
		}
		if !idx.Success {
			resp.Status = "degraded"
		}

		w.Header().Set("Content-Type", "application/json")
		if resp.Status == "degraded" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
