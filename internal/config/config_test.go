package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func defaultConfig() Config {
	var cfg Config
	ApplyDefaults(&cfg)
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := defaultConfig()
	if cfg.App.Port != 38472 {
		t.Errorf("port = %d", cfg.App.Port)
	}
	if cfg.Backend.BaseURL != DefaultAPIBase {
		t.Errorf("base_url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Polling.NotificationsSeconds != 30 {
		t.Errorf("polling = %d", cfg.Polling.NotificationsSeconds)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.Port = -1
	cfg.Backend.BaseURL = "not a url"
	cfg.Polling.NotificationsSeconds = 2

	err := Validate(cfg)
	if err == nil {
		t.Fatal("want error")
	}
	msg := err.Error()
	for _, want := range []string{"app.port", "base_url", "notifications_seconds"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestEnvOverridesBaseURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := SaveAtomic(path, defaultConfig()); err != nil {
		t.Fatalf("SaveAtomic: %v", err)
	}

	t.Setenv("JOBCONNECT_API_BASE", "https://api.example.com/api/")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.BaseURL != "https://api.example.com/api" {
		t.Errorf("base_url = %q, want env override with trailing slash trimmed", cfg.Backend.BaseURL)
	}
}

func TestSaveAtomic_RoundTripAndBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg := defaultConfig()
	cfg.App.Port = 40000
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("first save: %v", err)
	}

	cfg.App.Port = 40001
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.App.Port != 40001 {
		t.Errorf("port = %d, want 40001", loaded.App.Port)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("backup missing: %v", err)
	}
}

func TestSaveAtomic_RejectsInvalid(t *testing.T) {
	cfg := defaultConfig()
	cfg.Backend.TimeoutSeconds = 0
	cfg.Backend.RatePerSec = -1 // defaults will not repair an explicit negative

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := SaveAtomic(path, cfg); err == nil {
		t.Fatal("invalid config saved")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file created despite validation failure")
	}
}

func TestEnsureUserConfig_WritesDefaultsWhenNoShippedFile(t *testing.T) {
	dataDir := t.TempDir()
	path, err := EnsureUserConfig(dataDir, filepath.Join(dataDir, "no-such-default.yml"))
	if err != nil {
		t.Fatalf("EnsureUserConfig: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Port != 38472 {
		t.Errorf("bootstrap wrote port %d", cfg.App.Port)
	}

	// Second call leaves the existing user copy alone.
	again, err := EnsureUserConfig(dataDir, "")
	if err != nil || again != path {
		t.Fatalf("second EnsureUserConfig = %q, %v", again, err)
	}
}
