package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}

	base := strings.TrimSpace(cfg.Backend.BaseURL)
	if base == "" {
		errs = append(errs, "backend.base_url is required")
	} else if u, err := url.Parse(base); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("backend.base_url is not a valid URL: %q", base))
	}
	if cfg.Backend.TimeoutSeconds <= 0 {
		errs = append(errs, "backend.timeout_seconds must be > 0")
	}
	if cfg.Backend.RatePerSec <= 0 {
		errs = append(errs, "backend.rate_per_sec must be > 0")
	}
	if cfg.Backend.RateBurst <= 0 {
		errs = append(errs, "backend.rate_burst must be > 0")
	}

	if cfg.Polling.NotificationsSeconds <= 0 {
		errs = append(errs, "polling.notifications_seconds must be > 0")
	} else if cfg.Polling.NotificationsSeconds < 5 {
		errs = append(errs, "polling.notifications_seconds below 5 would hammer the backend")
	}

	if cfg.Cache.JobsMaxAgeHours <= 0 {
		errs = append(errs, "cache.jobs_max_age_hours must be > 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
