package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mnemo-chat/mnemo/internal/persona"
)

func TestClassify_ReturnsModeAndStyle(t *testing.T) {
	t.Parallel()

	g := newTestGateway(t, &fakeStore{})

	body := `{"message": "I need a strategy to plan my business launch"}`
	req := httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(body))
	rr := httptest.NewRecorder()
	g.handleClassify().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp ClassifyResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Mode != persona.ModeStrategic {
		t.Errorf("mode = %q, want strategic", resp.Mode)
	}
	if resp.Style.Tone == "" {
		t.Error("style guidance missing from response")
	}
	if snap := g.metrics.Snapshot(); snap.Classifications != 1 {
		t.Errorf("classification counter = %d, want 1", snap.Classifications)
	}
}

func TestClassify_UsesRecentContext(t *testing.T) {
	t.Parallel()

	g := newTestGateway(t, &fakeStore{})

	body := `{"message": "what do you think about that", "recent_context": ["we were planning our product roadmap"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(body))
	rr := httptest.NewRecorder()
	g.handleClassify().ServeHTTP(rr, req)

	var resp ClassifyResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Mode != persona.ModeStrategic {
		t.Errorf("mode = %q, want strategic nudged by context", resp.Mode)
	}
}

func TestClassify_RejectsEmptyMessage(t *testing.T) {
	t.Parallel()

	g := newTestGateway(t, &fakeStore{})

	for _, body := range []string{`{"message": "   "}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(body))
		rr := httptest.NewRecorder()
		g.handleClassify().ServeHTTP(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want %d", body, rr.Code, http.StatusBadRequest)
		}
	}
}
