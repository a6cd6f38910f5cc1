package gateway

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRouter_PublicAndGuardedRoutes(t *testing.T) {
	t.Parallel()

	g := newTestGateway(t, &fakeStore{})
	g.config.defaults()
	g.config.Auth = AuthConfig{BearerToken: "secret"}
	router := g.buildRouter()

	// Public routes need no credentials.
	for _, path := range []string{"/health", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("GET %s without auth: status = %d, want %d", path, rr.Code, http.StatusOK)
		}
	}

	// Guarded routes reject anonymous requests.
	req := httptest.NewRequest(http.MethodGet, "/api/memory/search?q=job", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("anonymous search: status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}

	// And accept authenticated ones.
	req = httptest.NewRequest(http.MethodGet, "/api/memory/search?q=job", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("authenticated search: status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestRouter_MetricsExposesCounters(t *testing.T) {
	t.Parallel()

	g := newTestGateway(t, &fakeStore{})
	g.config.defaults()
	g.metrics.RecordAppend()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	g.buildRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "mnemo_memory_appends_total 1") {
		t.Error("scrape output missing append counter")
	}
}

func TestRouter_NoAuthConfiguredHidesAPI(t *testing.T) {
	t.Parallel()

	g := newTestGateway(t, &fakeStore{})
	g.config.defaults()
	router := g.buildRouter()

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("status without auth config: status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
