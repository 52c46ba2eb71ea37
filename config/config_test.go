package config_test

import (
	"testing"

	"github.com/kofasentinel/atlas/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want dev", cfg.Env)
	}
	if cfg.DBPath != "./data/atlas.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.SeedSampleData {
		t.Error("SeedSampleData should default to false")
	}
	if !cfg.IsDev() {
		t.Error("IsDev should be true for the default env")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ATLAS_ENV", "prod")
	t.Setenv("ATLAS_DB_PATH", "/var/lib/atlas/register.db")
	t.Setenv("ATLAS_LOG_LEVEL", "warn")
	t.Setenv("ATLAS_SEED_SAMPLE_DATA", "true")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "prod" || cfg.IsDev() {
		t.Errorf("Env = %q, want prod", cfg.Env)
	}
	if cfg.DBPath != "/var/lib/atlas/register.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if !cfg.SeedSampleData {
		t.Error("SeedSampleData not read from env")
	}
}

func TestUnknownEnvFallsBackToDev(t *testing.T) {
	t.Setenv("ATLAS_ENV", "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "dev" {
		t.Errorf("unknown environment should fall back to dev, got %q", cfg.Env)
	}
}
