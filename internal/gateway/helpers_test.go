package gateway

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mnemo-chat/mnemo/internal/memory"
)

// fakeStore is an in-memory memory.Store for handler tests.
type fakeStore struct {
	entries   []memory.Entry
	appendErr error
	source    string
}

func (s *fakeStore) Append(_ context.Context, e memory.Entry) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	if err := e.Validate(); err != nil {
		return err
	}
	s.entries = append(s.entries, e)
	return nil
}

func (s *fakeStore) Load(context.Context) memory.LoadResult {
	source := s.source
	if source == "" {
		source = "primary"
	}
	return memory.LoadResult{Entries: s.entries, Success: true, Source: source}
}

// brokenStore fails every load outright.
type brokenStore struct{}

func (brokenStore) Append(context.Context, memory.Entry) error { return errors.New("store broken") }

func (brokenStore) Load(context.Context) memory.LoadResult {
	return memory.LoadResult{Success: false, Source: "primary", Err: errors.New("store broken")}
}

// newTestGateway builds a gateway around a store without starting a server.
func newTestGateway(t *testing.T, store memory.Store) *Gateway {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Gateway{
		logger:  logger,
		metrics: NewMetrics(),
		events:  NewEventHub(logger),
		store:   store,
		cache:   memory.NewCache(store, memory.WithCacheLogger(logger)),
	}
}
