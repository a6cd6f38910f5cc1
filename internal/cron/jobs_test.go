package cron

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mnemo-chat/mnemo/internal/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBackupPruneJob_RemovesOnlyExpired(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := filepath.Join(dir, "memory.json")

	old := store + ".corrupt.20250101T000000Z"
	fresh := store + ".corrupt.20260801T000000Z"
	unrelated := filepath.Join(dir, "memory.backup.json")
	for _, p := range []string{old, fresh, unrelated} {
		if err := os.WriteFile(p, []byte("x"), 0o600); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	stale := time.Now().Add(-30 * 24 * time.Hour)
	if err := os.Chtimes(old, stale, stale); err != nil {
		t.Fatalf("age file: %v", err)
	}

	job := &BackupPruneJob{
		StorePath: store,
		Retention: 14 * 24 * time.Hour,
		Logger:    discardLogger(),
	}
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("expired quarantine file should be removed")
	}
	for _, p := range []string{fresh, unrelated} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s should survive pruning: %v", p, err)
		}
	}
}

type staticStore struct {
	entries []memory.Entry
}

func (s *staticStore) Append(context.Context, memory.Entry) error { return nil }

func (s *staticStore) Load(context.Context) memory.LoadResult {
	return memory.LoadResult{Entries: s.entries, Success: true, Source: "primary"}
}

func TestCacheWarmJob_LoadsIndex(t *testing.T) {
	t.Parallel()

	cache := memory.NewCache(&staticStore{
		entries: []memory.Entry{memory.NewEntry(memory.SpeakerUser, "warmed fact", "")},
	})
	job := &CacheWarmJob{Cache: cache, Logger: discardLogger()}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if idx := cache.Get(context.Background()); idx.Len() != 1 {
		t.Errorf("index holds %d entries, want 1", idx.Len())
	}
}

func TestScheduler_RejectsDuplicateJob(t *testing.T) {
	t.Parallel()

	s := NewScheduler(discardLogger())
	job := &CacheWarmJob{Cache: memory.NewCache(&staticStore{}), Logger: discardLogger()}

	if err := s.RegisterJob(job); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if err := s.RegisterJob(job); err == nil {
		t.Error("duplicate registration: want error")
	}
}

func TestScheduler_StartRejectsBadSchedule(t *testing.T) {
	t.Parallel()

	s := NewScheduler(discardLogger())
	job := &CacheWarmJob{
		Cache:        memory.NewCache(&staticStore{}),
		Logger:       discardLogger(),
		ScheduleExpr: "not a schedule",
	}
	if err := s.RegisterJob(job); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := s.Start(); err == nil {
		t.Error("invalid schedule: want error from Start")
	}
}
