package cron

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mnemo-chat/mnemo/internal/memory"
)

// BackupPruneJob removes quarantined store snapshots older than Retention.
// Quarantined files sit next to the primary store as <path>.corrupt.<ts>.
type BackupPruneJob struct {
	// StorePath is the primary memory store path.
	StorePath    string
	Retention    time.Duration
	Logger       *slog.Logger
	ScheduleExpr string // empty = default "0 3 * * *"
}

// Compile-time interface check.
var _ Job = (*BackupPruneJob)(nil)

// Name implements Job.
func (j *BackupPruneJob) Name() string { return "backup_prune" }

// Schedule implements Job.
func (j *BackupPruneJob) Schedule() string {
	if j.ScheduleExpr != "" {
		return j.ScheduleExpr
	}
	return "0 3 * * *"
}

// Run deletes quarantined snapshots whose modification time is older than
// the retention window.
func (j *BackupPruneJob) Run(_ context.Context) error {
	matches, err := filepath.Glob(j.StorePath + ".corrupt.*")
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-j.Retention)
	var pruned int
	var errs []error
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			errs = append(errs, err)
			continue
		}
		pruned++
	}

	if pruned > 0 {
		j.Logger.Info("cron: pruned quarantined snapshots", "count", pruned)
	}
	return errors.Join(errs...)
}

// CacheWarmJob refreshes the memory index so the first request after a
// quiet period does not pay the disk reload.
type CacheWarmJob struct {
	Cache        *memory.Cache
	Logger       *slog.Logger
	ScheduleExpr string // empty = default "@every 15m"
}

var _ Job = (*CacheWarmJob)(nil)

// Name implements Job.
func (j *CacheWarmJob) Name() string { return "cache_warm" }

// Schedule implements Job.
func (j *CacheWarmJob) Schedule() string {
	if j.ScheduleExpr != "" {
		return j.ScheduleExpr
	}
	return "@every 15m"
}

// Run loads the index through the cache, refreshing it if expired.
func (j *CacheWarmJob) Run(ctx context.Context) error {
	idx := j.Cache.Get(ctx)
	if !idx.Success {
		j.Logger.Warn("cron: cache warm loaded degraded index", "source", idx.Source)
	}
	j.Logger.Debug("cron: cache warmed", "entries", idx.Len(), "source", idx.Source)
	return nil
}
