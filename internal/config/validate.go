package config

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/mnemo-chat/mnemo/internal/core"
)

// Validate checks the structural validity of a Config: the version field,
// that every referenced module ID exists in the registry, and that the
// telemetry and maintenance sections are well-formed.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Version == "" {
		errs = append(errs, errors.New("config: version field is required"))
	} else if cfg.Version != "1" {
		errs = append(errs, fmt.Errorf("config: unsupported version %q (supported: \"1\")", cfg.Version))
	}

	if len(cfg.Modules) == 0 {
		errs = append(errs, errors.New("config: at least one module must be configured"))
	}

	for id := range cfg.Modules {
		if _, ok := core.GetModule(id); !ok {
			errs = append(errs, fmt.Errorf("config: unknown module %q", id))
		}
	}

	errs = append(errs, validateTelemetry(cfg.Telemetry)...)
	errs = append(errs, validateMaintenance(cfg.Maintenance)...)

	return errors.Join(errs...)
}

func validateTelemetry(t *TelemetryConfig) []error {
	if t == nil {
		return nil
	}
	var errs []error

	if t.Enabled && t.Endpoint == "" {
		errs = append(errs, errors.New("config: telemetry.endpoint is required when telemetry is enabled"))
	}
	if t.SampleRatio != nil && (*t.SampleRatio < 0 || *t.SampleRatio > 1) {
		errs = append(errs, fmt.Errorf("config: telemetry.sample_ratio must be in [0, 1], got %v", *t.SampleRatio))
	}

	return errs
}

func validateMaintenance(m *MaintenanceConfig) []error {
	if m == nil {
		return nil
	}
	var errs []error

	for field, spec := range map[string]string{
		"backup_prune": m.BackupPrune,
		"cache_warm":   m.CacheWarm,
	} {
		if spec == "" {
			continue
		}
		if _, err := cron.ParseStandard(spec); err != nil {
			errs = append(errs, fmt.Errorf("config: maintenance.%s: invalid cron expression %q: %w", field, spec, err))
		}
	}

	return errs
}
