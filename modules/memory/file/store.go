package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/mnemo-chat/mnemo/internal/memory"
)

// Store is the file-backed memory.Store. A single mutex serializes all
// appends and loads; the write path never mutates the primary file in
// place, so a crash at any point leaves either the old or the new
// snapshot, never a torn one.
type Store struct {
	cfg    Config
	logger *slog.Logger

	mu sync.Mutex
}

// NewStore creates a store over the configured paths. It does not touch
// the filesystem; the first Load or Append does.
func NewStore(cfg Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{cfg: cfg, logger: logger}
}

// Append implements memory.Store. It reads the current snapshot (through
// the fallback chain, so a corrupt primary still yields the best available
// baseline), appends the entry, and atomically replaces the primary file.
func (s *Store) Append(ctx context.Context, e memory.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.loadLocked(ctx)
	if !cur.Success {
		return fmt.Errorf("file: refusing append, no usable snapshot: %w", cur.Err)
	}

	entries := append(cur.Entries, e)
	if err := s.writeSnapshot(entries); err != nil {
		return err
	}

	s.logger.Debug("memory entry appended", "id", e.ID, "total", len(entries))
	return nil
}

// Load implements memory.Store.
func (s *Store) Load(ctx context.Context) memory.LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

// writeSnapshot marshals the full entry set, writes it to a sibling temp
// file, verifies the written bytes parse back, and renames over the
// primary. The verify step catches a short or garbled write before it can
// replace good data.
func (s *Store) writeSnapshot(entries []memory.Entry) error {
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("file: marshal snapshot: %w", err)
	}

	tmp := s.cfg.Path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("file: write %s: %w", tmp, err)
	}

	written, err := os.ReadFile(tmp)
	if err == nil {
		var check []memory.Entry
		if uerr := json.Unmarshal(written, &check); uerr != nil {
			err = uerr
		} else if len(check) != len(entries) {
			err = fmt.Errorf("snapshot holds %d entries, expected %d", len(check), len(entries))
		}
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("file: verify %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.cfg.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("file: replace %s: %w", s.cfg.Path, err)
	}
	return nil
}
