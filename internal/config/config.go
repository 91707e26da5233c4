// Package config holds schedview's own configuration: where the three
// sources live, where the output document goes, and how timers are listed.
//
// A config file is optional. JSON is the native format; YAML is accepted by
// coercing to JSON so one strict decoder (DisallowUnknownFields) covers both.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Built-in source and output locations, resolved under the invoking user's
// home directory. Overridable per field in the config file.
const (
	defaultHealthConfigPath = "~/aurora/health-monitor-config.json"
	defaultOpenclawJobsPath = "~/.openclaw/cron/jobs.json"
	defaultOutputPath       = "~/projects/aurora-health/dist/cron-events.json"

	defaultConfigPath = "~/.config/schedview/config.json"
)

const defaultTimersTimeout = 5 * time.Second

type Config struct {
	HealthConfigPath string `json:"health_config_path,omitempty"`
	OpenclawJobsPath string `json:"openclaw_jobs_path,omitempty"`
	OutputPath       string `json:"output_path,omitempty"`

	Timers  TimersConfig  `json:"timers,omitempty"`
	Logging LoggingConfig `json:"logging,omitempty"`
}

// TimersConfig selects how systemd timer units are listed.
type TimersConfig struct {
	// Backend is "systemctl" (default, shells out) or "dbus" (linux only).
	Backend string `json:"backend,omitempty"`

	// Timeout bounds the listing call; a Go duration string like "5s".
	Timeout string `json:"timeout,omitempty"`
}

type LoggingConfig struct {
	Level string `json:"level,omitempty"`
}

// Default returns the built-in configuration with home-relative paths
// expanded.
func Default() Config {
	return Config{
		HealthConfigPath: expandHome(defaultHealthConfigPath),
		OpenclawJobsPath: expandHome(defaultOpenclawJobsPath),
		OutputPath:       expandHome(defaultOutputPath),
		Timers:           TimersConfig{Backend: "systemctl"},
	}
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file at the default location falls back to Default();
// an explicitly given path that cannot be read is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = expandHome(defaultConfigPath)
	} else {
		path = expandHome(path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}

	jb, err := coerceToJSONBytes(path, b)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	cfg := Default()
	dec := json.NewDecoder(bytes.NewReader(jb))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	cfg.HealthConfigPath = expandHome(cfg.HealthConfigPath)
	cfg.OpenclawJobsPath = expandHome(cfg.OpenclawJobsPath)
	cfg.OutputPath = expandHome(cfg.OutputPath)

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Timers.Backend {
	case "", "systemctl", "dbus":
	default:
		return fmt.Errorf("timers.backend %q (use \"systemctl\" or \"dbus\")", c.Timers.Backend)
	}
	if _, err := c.Timers.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout, defaulting to 5s when unset.
func (t TimersConfig) TimeoutDuration() (time.Duration, error) {
	s := strings.TrimSpace(t.Timeout)
	if s == "" {
		return defaultTimersTimeout, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("timers.timeout %q: %w", t.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timers.timeout must be > 0")
	}
	return d, nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
