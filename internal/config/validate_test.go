package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mnemo-chat/mnemo/internal/core"
	"gopkg.in/yaml.v3"
)

// stubModule is a basic module for testing.
type stubModule struct {
	id string
}

func (m *stubModule) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  core.ModuleID(m.id),
		New: func() core.Module { return &stubModule{id: m.id} },
	}
}

func registerStub(t *testing.T, id string) {
	t.Helper()
	core.RegisterModule(&stubModule{id: id})
}

func TestValidate_Valid(t *testing.T) {
	id := t.Name() + ".mod"
	registerStub(t, id)
	cfg := &Config{
		Version: "1",
		Modules: map[string]yaml.Node{id: {}},
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingVersion(t *testing.T) {
	id := t.Name() + ".mod"
	registerStub(t, id)
	cfg := &Config{
		Modules: map[string]yaml.Node{id: {}},
	}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected error for missing version")
	}
	if !strings.Contains(err.Error(), "version") {
		t.Errorf("error should mention version: %v", err)
	}
}

func TestValidate_UnsupportedVersion(t *testing.T) {
	id := t.Name() + ".mod"
	registerStub(t, id)
	cfg := &Config{
		Version: "99",
		Modules: map[string]yaml.Node{id: {}},
	}
	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "unsupported version") {
		t.Errorf("want unsupported version error, got %v", err)
	}
}

func TestValidate_UnknownModule(t *testing.T) {
	cfg := &Config{
		Version: "1",
		Modules: map[string]yaml.Node{"does.not.exist": {}},
	}
	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "unknown module") {
		t.Errorf("want unknown module error, got %v", err)
	}
}

func TestValidate_NoModules(t *testing.T) {
	cfg := &Config{Version: "1"}
	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "at least one module") {
		t.Errorf("want missing modules error, got %v", err)
	}
}

func TestValidate_Telemetry(t *testing.T) {
	id := t.Name() + ".mod"
	registerStub(t, id)
	base := Config{
		Version: "1",
		Modules: map[string]yaml.Node{id: {}},
	}

	cfg := base
	cfg.Telemetry = &TelemetryConfig{Enabled: true}
	if err := Validate(&cfg); err == nil || !strings.Contains(err.Error(), "endpoint") {
		t.Errorf("enabled telemetry without endpoint: want error, got %v", err)
	}

	bad := 1.5
	cfg = base
	cfg.Telemetry = &TelemetryConfig{Endpoint: "localhost:4318", SampleRatio: &bad}
	if err := Validate(&cfg); err == nil || !strings.Contains(err.Error(), "sample_ratio") {
		t.Errorf("out-of-range sample ratio: want error, got %v", err)
	}

	ok := 0.25
	cfg = base
	cfg.Telemetry = &TelemetryConfig{Enabled: true, Endpoint: "localhost:4318", SampleRatio: &ok}
	if err := Validate(&cfg); err != nil {
		t.Errorf("valid telemetry: unexpected error %v", err)
	}
}

func TestValidate_MaintenanceCronSpecs(t *testing.T) {
	id := t.Name() + ".mod"
	registerStub(t, id)
	base := Config{
		Version: "1",
		Modules: map[string]yaml.Node{id: {}},
	}

	cfg := base
	cfg.Maintenance = &MaintenanceConfig{BackupPrune: "not a cron spec"}
	if err := Validate(&cfg); err == nil || !strings.Contains(err.Error(), "backup_prune") {
		t.Errorf("invalid cron spec: want error, got %v", err)
	}

	cfg = base
	cfg.Maintenance = &MaintenanceConfig{BackupPrune: "0 3 * * *", CacheWarm: "@every 15m"}
	if err := Validate(&cfg); err != nil {
		t.Errorf("valid maintenance schedules: unexpected error %v", err)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("MNEMO_TEST_VERSION", "1")

	path := filepath.Join(t.TempDir(), "mnemo.yaml")
	doc := "version: \"${MNEMO_TEST_VERSION}\"\nmodules:\n  memory.file:\n    path: ${MNEMO_TEST_PATH:-/tmp/memory.json}\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Version != "1" {
		t.Errorf("version = %q, want expanded value 1", cfg.Version)
	}

	node := cfg.Modules["memory.file"]
	var decoded struct {
		Path string `yaml:"path"`
	}
	if err := node.Decode(&decoded); err != nil {
		t.Fatalf("decode module node: %v", err)
	}
	if decoded.Path != "/tmp/memory.json" {
		t.Errorf("path = %q, want fallback default applied", decoded.Path)
	}
}

func TestLoad_UnresolvedVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mnemo.yaml")
	if err := os.WriteFile(path, []byte("version: ${MNEMO_TEST_MISSING_VAR}\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "MNEMO_TEST_MISSING_VAR") {
		t.Errorf("want unresolved variable error, got %v", err)
	}
}
