package file

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mnemo-chat/mnemo/internal/memory"
)

const (
	defaultPrimaryFile  = "memory.json"
	defaultBackupFile   = "memory.backup.json"
	defaultLegacyExport = "memories_export.json"
	defaultLegacyDBFile = "memory.db"
	defaultNotesFile    = "memory.txt"
	defaultKnowledgeDir = "knowledge"

	defaultBackupRetention = 14 * 24 * time.Hour
)

// Config holds the file memory module configuration. All paths default to
// locations under the application data directory.
type Config struct {
	// Path is the primary JSON store. Defaults to {DataDir}/memory.json.
	Path string `yaml:"path"`

	// BackupPaths are JSON fallbacks consulted in order when the primary
	// is missing or corrupt. Defaults to [{DataDir}/memory.backup.json].
	BackupPaths []string `yaml:"backup_paths"`

	// LegacyExportPath is an export file from the previous generation of
	// the app ({"memories": [{"text": ...}]}). Consulted after backups.
	LegacyExportPath string `yaml:"legacy_export_path"`

	// LegacyDBPath is a SQLite database from the previous generation.
	LegacyDBPath string `yaml:"legacy_db_path"`

	// NotesPath is a plain-text notes file, one memory per line.
	NotesPath string `yaml:"notes_path"`

	// KnowledgeDir holds per-category text files (e.g. health.txt) turned
	// into entries tagged knowledge_<category>.
	KnowledgeDir string `yaml:"knowledge_dir"`

	// CacheTTL bounds index staleness. Defaults to 30 minutes.
	CacheTTL time.Duration `yaml:"cache_ttl"`

	// BackupRetention is how long quarantined corrupt snapshots are kept
	// before the maintenance job prunes them. Defaults to 14 days.
	BackupRetention time.Duration `yaml:"backup_retention"`
}

// defaults fills unset fields relative to the data directory.
func (c *Config) defaults(dataDir string) {
	if c.Path == "" {
		c.Path = filepath.Join(dataDir, defaultPrimaryFile)
	}
	if c.BackupPaths == nil {
		c.BackupPaths = []string{filepath.Join(dataDir, defaultBackupFile)}
	}
	if c.LegacyExportPath == "" {
		c.LegacyExportPath = filepath.Join(dataDir, defaultLegacyExport)
	}
	if c.LegacyDBPath == "" {
		c.LegacyDBPath = filepath.Join(dataDir, defaultLegacyDBFile)
	}
	if c.NotesPath == "" {
		c.NotesPath = filepath.Join(dataDir, defaultNotesFile)
	}
	if c.KnowledgeDir == "" {
		c.KnowledgeDir = filepath.Join(dataDir, defaultKnowledgeDir)
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = memory.DefaultCacheTTL
	}
	if c.BackupRetention == 0 {
		c.BackupRetention = defaultBackupRetention
	}
}

func (c *Config) validate() error {
	if c.Path == "" {
		return fmt.Errorf("file: path must not be empty")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("file: cache_ttl must be non-negative, got %s", c.CacheTTL)
	}
	if c.BackupRetention < 0 {
		return fmt.Errorf("file: backup_retention must be non-negative, got %s", c.BackupRetention)
	}
	return nil
}
