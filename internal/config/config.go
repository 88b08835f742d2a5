package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultAPIBase matches the backend's dev port. JOBCONNECT_API_BASE
// overrides whatever the config file says; there is exactly one client
// configuration at runtime.
const DefaultAPIBase = "http://localhost:9091/api"

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Backend struct {
		BaseURL        string  `yaml:"base_url"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RatePerSec     float64 `yaml:"rate_per_sec"`
		RateBurst      int     `yaml:"rate_burst"`
	} `yaml:"backend"`

	Polling struct {
		NotificationsSeconds int `yaml:"notifications_seconds"`
	} `yaml:"polling"`

	Cache struct {
		JobsMaxAgeHours int `yaml:"jobs_max_age_hours"`
	} `yaml:"cache"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	ApplyDefaults(&cfg)
	applyEnv(&cfg)
	return cfg, nil
}

func ApplyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 38472
	}
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = DefaultAPIBase
	}
	if cfg.Backend.TimeoutSeconds == 0 {
		cfg.Backend.TimeoutSeconds = 20
	}
	if cfg.Backend.RatePerSec == 0 {
		cfg.Backend.RatePerSec = 5.0
	}
	if cfg.Backend.RateBurst == 0 {
		cfg.Backend.RateBurst = 10
	}
	if cfg.Polling.NotificationsSeconds == 0 {
		cfg.Polling.NotificationsSeconds = 30
	}
	if cfg.Cache.JobsMaxAgeHours == 0 {
		cfg.Cache.JobsMaxAgeHours = 24
	}
}

// applyEnv lets the desktop shell pin the backend without editing the file.
func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("JOBCONNECT_API_BASE")); v != "" {
		cfg.Backend.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("JOBCONNECT_DATA_DIR")); v != "" {
		cfg.App.DataDir = v
	}
}
