package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"hangarops/labour-reporting/internal/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig without a file: %v", err)
	}
	if cfg.Storage.Timezone != "Australia/Sydney" {
		t.Errorf("default timezone = %q", cfg.Storage.Timezone)
	}
	if cfg.Storage.CounterBase != 300 {
		t.Errorf("default counter base = %d", cfg.Storage.CounterBase)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q", cfg.Log.Level)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d", cfg.Server.Port)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	content := `env: dev
log:
  level: debug
storage:
  data_dir: /tmp/labour
  counter_base: 500
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Env != "dev" {
		t.Errorf("env = %q, want dev", cfg.Env)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Storage.DataDir != "/tmp/labour" {
		t.Errorf("data dir = %q", cfg.Storage.DataDir)
	}
	if cfg.Storage.CounterBase != 500 {
		t.Errorf("counter base = %d, want 500", cfg.Storage.CounterBase)
	}
	// Unset keys keep their defaults.
	if cfg.Storage.Timezone != "Australia/Sydney" {
		t.Errorf("timezone = %q, want default", cfg.Storage.Timezone)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("STORAGE_COUNTER_BASE", "1000")
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.CounterBase != 1000 {
		t.Errorf("counter base = %d, want env override 1000", cfg.Storage.CounterBase)
	}
}
