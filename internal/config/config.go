// Package config loads server settings from defaults, an optional YAML file
// and PORTFOLIO_* environment variables, in that order.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PORTFOLIO_"

// Config holds all application configuration.
type Config struct {
	Addr            string        `koanf:"addr"`
	Mode            string        `koanf:"mode"`
	AssetsDir       string        `koanf:"assets_dir"`
	ContentPath     string        `koanf:"content_path"`
	WatchContent    bool          `koanf:"watch_content"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	LogLevel        string        `koanf:"log_level"`
	LogFormat       string        `koanf:"log_format"`
	Contact         ContactConfig `koanf:"contact"`
	Projects        ProjectConfig `koanf:"projects"`
}

// ContactConfig tunes the simulated contact form.
type ContactConfig struct {
	Delay     time.Duration `koanf:"delay"`
	StatusTTL time.Duration `koanf:"status_ttl"`
}

// ProjectConfig sizes the project grid pages.
type ProjectConfig struct {
	InitialVisible int `koanf:"initial_visible"`
	BatchSize      int `koanf:"batch_size"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		Mode:            "release",
		AssetsDir:       "assets",
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
		Contact: ContactConfig{
			Delay:     1500 * time.Millisecond,
			StatusTTL: 5 * time.Second,
		},
		Projects: ProjectConfig{
			InitialVisible: 6,
			BatchSize:      3,
		},
	}
}

// Load reads path (if it exists) and the environment on top of the defaults.
// PORT is honored for hosts that only set that variable.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// PORTFOLIO_CONTACT__DELAY -> contact.delay
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" && !k.Exists("addr") {
		cfg.Addr = ":" + port
	}
	return cfg, nil
}

var validModes = map[string]bool{"debug": true, "release": true, "test": true}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.WatchContent && c.ContentPath == "" {
		return fmt.Errorf("watch_content needs content_path")
	}
	if c.Contact.Delay < 0 {
		return fmt.Errorf("contact.delay must be non-negative")
	}
	if c.Contact.StatusTTL <= 0 {
		return fmt.Errorf("contact.status_ttl must be positive")
	}
	if c.Projects.InitialVisible <= 0 || c.Projects.BatchSize <= 0 {
		return fmt.Errorf("projects.initial_visible and projects.batch_size must be positive")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log_format %q: must be text or json", c.LogFormat)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Logger builds the slog logger described by the config.
func (c *Config) Logger() *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return l, nil
}
