package memory

import "context"

// LoadResult is the outcome of loading the durable store. A load never
// hard-fails: an unreadable or corrupt primary degrades to a fallback
// source or to an empty result with Success still true.
type LoadResult struct {
	// Entries are the structurally valid records, in storage order.
	Entries []Entry

	// Success reports whether a usable (possibly empty) result was
	// produced. It is false only when every source errored unexpectedly.
	Success bool

	// Source names the loader that produced the result (e.g. "primary",
	// "legacy_db", "empty"). Diagnostic only.
	Source string

	// Err carries the last non-fatal problem encountered while falling
	// through the source chain, for logging. It does not invalidate the
	// result.
	Err error
}

// Store is the single source of truth for memory entries.
// Implementations must be safe for concurrent use and must never corrupt
// existing data on a failed append.
type Store interface {
	// Append durably adds one entry. Errors are surfaced to the caller
	// but leave the store usable and the existing data intact.
	Append(ctx context.Context, e Entry) error

	// Load reads all entries, attempting fallback sources in order and
	// returning the first structurally valid result.
	Load(ctx context.Context) LoadResult
}
