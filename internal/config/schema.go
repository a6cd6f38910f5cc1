// Package config handles YAML configuration loading, environment variable
// expansion, and structural validation for mnemo.
package config

import "gopkg.in/yaml.v3"

// Config is the top-level configuration structure.
type Config struct {
	// Version is the config format version. Currently only "1" is supported.
	Version string `yaml:"version"`

	// Modules maps module IDs to their raw YAML configuration.
	// Keys must match registered module IDs (e.g. "memory.file").
	Modules map[string]yaml.Node `yaml:"modules"`

	// Telemetry holds optional OTLP trace export settings.
	Telemetry *TelemetryConfig `yaml:"telemetry,omitempty"`

	// Maintenance holds the background job schedules.
	Maintenance *MaintenanceConfig `yaml:"maintenance,omitempty"`
}

// TelemetryConfig controls trace export. Tracing is off unless enabled.
type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`

	// Endpoint is the OTLP/HTTP collector address (host:port).
	Endpoint string `yaml:"endpoint"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure,omitempty"`

	// SampleRatio is the trace sampling ratio in [0, 1]. Defaults to 1.
	SampleRatio *float64 `yaml:"sample_ratio,omitempty"`
}

// MaintenanceConfig holds cron expressions for the background jobs.
// Empty fields fall back to the scheduler defaults.
type MaintenanceConfig struct {
	// BackupPrune schedules removal of expired quarantined snapshots.
	BackupPrune string `yaml:"backup_prune,omitempty"`

	// CacheWarm schedules a cache refresh so the first request after a
	// quiet period does not pay the reload.
	CacheWarm string `yaml:"cache_warm,omitempty"`
}
