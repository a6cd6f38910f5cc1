// Package file implements the durable conversation memory module: an
// append-only JSON store with atomic writes, corruption quarantine, and an
// ordered fallback chain over backups and legacy artifacts. It registers
// the shared store and index cache as services for the gateway and the
// maintenance jobs.
package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mnemo-chat/mnemo/internal/core"
	"github.com/mnemo-chat/mnemo/internal/memory"
	"gopkg.in/yaml.v3"
)

func init() {
	core.RegisterModule(&Module{})
}

// Compile-time interface guards.
var (
	_ memory.Store      = (*Store)(nil)
	_ core.Configurable = (*Module)(nil)
	_ core.Provisioner  = (*Module)(nil)
	_ core.Validator    = (*Module)(nil)
)

// Module wires the file store and its index cache into the app.
type Module struct {
	config Config
	logger *slog.Logger
	store  *Store
	cache  *memory.Cache
}

// ModuleInfo implements core.Module.
func (m *Module) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  "memory.file",
		New: func() core.Module { return &Module{} },
	}
}

// Configure implements core.Configurable.
func (m *Module) Configure(node *yaml.Node) error {
	if err := node.Decode(&m.config); err != nil {
		return fmt.Errorf("file: decode config: %w", err)
	}
	return nil
}

// Provision implements core.Provisioner.
func (m *Module) Provision(ctx *core.AppContext) error {
	m.logger = ctx.Logger
	m.config.defaults(ctx.DataDir)

	if dir := filepath.Dir(m.config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("file: create directory %s: %w", dir, err)
		}
	}

	m.store = NewStore(m.config, ctx.Logger)
	m.cache = memory.NewCache(m.store,
		memory.WithTTL(m.config.CacheTTL),
		memory.WithCacheLogger(ctx.Logger),
	)

	ctx.RegisterService("memory.store", m.store)
	ctx.RegisterService("memory.cache", m.cache)

	m.logger.Info("file memory module provisioned",
		"path", m.config.Path,
		"cache_ttl", m.config.CacheTTL,
	)
	return nil
}

// Validate implements core.Validator. It runs one load through the full
// fallback chain; a load that cannot produce even an empty result means
// the data directory is unusable.
func (m *Module) Validate() error {
	if err := m.config.validate(); err != nil {
		return err
	}

	result := m.store.Load(context.TODO())
	if !result.Success {
		return fmt.Errorf("file: initial load failed: %w", result.Err)
	}
	if result.Err != nil {
		m.logger.Warn("file memory loaded from fallback source",
			"source", result.Source, "entries", len(result.Entries), "reason", result.Err)
	}
	return nil
}

// Store returns the durable store.
func (m *Module) Store() *Store { return m.store }

// Cache returns the TTL-bound index cache over the store.
func (m *Module) Cache() *memory.Cache { return m.cache }

// DataPath returns the primary store path. The maintenance job uses its
// directory to find quarantined snapshots.
func (m *Module) DataPath() string { return m.config.Path }

// BackupRetention returns how long quarantined snapshots are kept.
func (m *Module) BackupRetention() time.Duration { return m.config.BackupRetention }
