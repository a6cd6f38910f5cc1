package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/mnemo-chat/mnemo/internal/memory"
)

// AppendRequest is the JSON body for POST /api/memory.
type AppendRequest struct {
	Speaker string `json:"speaker"`
	Content string `json:"content"`
	Context string `json:"context,omitempty"`
}

// handleAppendMemory records one utterance: enrich, persist, invalidate
// the index, and fan the new entry out to event subscribers.
func (g *Gateway) handleAppendMemory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AppendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}

		speaker := memory.Speaker(req.Speaker)
		if speaker != memory.SpeakerUser && speaker != memory.SpeakerCompanion {
			http.Error(w, "speaker must be \"user\" or \"companion\"", http.StatusBadRequest)
			return
		}

		entry := memory.NewEntry(speaker, req.Content, req.Context)
		if err := g.store.Append(r.Context(), entry); err != nil {
			g.metrics.RecordError()
			g.logger.Error("memory append failed", "error", err)
			http.Error(w, "append failed", http.StatusUnprocessableEntity)
			return
		}

		g.cache.Invalidate()
		g.metrics.RecordAppend()
		g.events.Publish(Event{Type: EventMemoryAppended, Entry: &entry})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(entry)
	}
}

// SearchResponse is the JSON response for GET /api/memory/search.
type SearchResponse struct {
	Query   string                `json:"query"`
	Results []memory.SearchResult `json:"results"`
	Total   int                   `json:"total"`
	Source  string                `json:"index_source"`
}

// handleSearchMemory serves relevance search over the cached index.
// Query parameters: q (required), limit (optional).
func (g *Gateway) handleSearchMemory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "missing query parameter q", http.StatusBadRequest)
			return
		}

		limit := memory.DefaultSearchLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		start := time.Now()
		idx := g.cache.Get(r.Context())
		results := memory.Search(idx, query, limit)
		g.metrics.RecordSearch(time.Since(start).Seconds())

		resp := SearchResponse{
			Query:   query,
			Results: results,
			Total:   len(results),
			Source:  idx.Source,
		}
		if resp.Results == nil {
			resp.Results = []memory.SearchResult{}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
