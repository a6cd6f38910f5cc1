package gateway

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mnemo-chat/mnemo/internal/persona"
)

// ClassifyRequest is the JSON body for POST /api/classify.
type ClassifyRequest struct {
	Message       string   `json:"message"`
	RecentContext []string `json:"recent_context,omitempty"`
}

// ClassifyResponse carries the classification plus the response-style
// guidance for the chosen mode.
type ClassifyResponse struct {
	persona.Classification
	Style persona.Style `json:"style"`
}

// handleClassify evaluates the personality mode for a message.
func (g *Gateway) handleClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClassifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			http.Error(w, "message must not be empty", http.StatusBadRequest)
			return
		}

		result := persona.Evaluate(req.Message, req.RecentContext)
		g.metrics.RecordClassification()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ClassifyResponse{
			Classification: result,
			Style:          persona.StyleFor(result.Mode),
		})
	}
}
