// Package cron provides a job scheduler for periodic background tasks
// such as quarantine pruning and memory cache warming.
package cron

import "context"

// Job defines a periodic background task.
type Job interface {
	// Name returns a unique identifier for this job (used for logging and dedup).
	Name() string

	// Schedule returns a cron expression (e.g., "*/15 * * * *" or "@every 1h").
	Schedule() string

	// Run executes the job. Implementations should check ctx.Done() for
	// graceful cancellation.
	Run(ctx context.Context) error
}
