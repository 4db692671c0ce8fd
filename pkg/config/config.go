package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/umputun/feedstash/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:feedstash.db?mode=rwc,description=SQLite file or postgres:// connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	Scheduler SchedulerConfig `yaml:"scheduler" json:"scheduler" jsonschema:"description=Background scheduler configuration"`

	Defaults DefaultsConfig `yaml:"defaults" json:"defaults" jsonschema:"description=Initial runtime settings, used when settings are created on first start"`
}

// FetchConfig holds http fetch settings for feeds and favicons
type FetchConfig struct {
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Timeout of a single feed or favicon request"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Feedstash/1.0,description=User agent for HTTP requests"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,minimum=1,maximum=64,description=Feeds refreshed concurrently"`
	OPMLTitle  string        `yaml:"opml_title" json:"opml_title" jsonschema:"default=Feedstash Subscriptions,description=Title of exported OPML documents"`
}

// SchedulerConfig holds background loop timings
type SchedulerConfig struct {
	Tick            time.Duration `yaml:"tick" json:"tick" jsonschema:"default=60s,description=How often refresh and cleanup timers are checked"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=24h,description=How often automatic cleanup runs"`
	ShutdownGrace   time.Duration `yaml:"shutdown_grace" json:"shutdown_grace" jsonschema:"default=30s,description=How long shutdown waits for in-flight work"`
}

// DefaultsConfig holds initial values of runtime settings
type DefaultsConfig struct {
	AutoCleanupEnabled     *bool `yaml:"auto_cleanup_enabled" json:"auto_cleanup_enabled" jsonschema:"default=true,description=Enable automatic cleanup of old articles"`
	AutoCleanupDays        int   `yaml:"auto_cleanup_days" json:"auto_cleanup_days" jsonschema:"default=28,enum=7,enum=14,enum=28,description=Age of articles removed by automatic cleanup"`
	RefreshIntervalMinutes int   `yaml:"refresh_interval_minutes" json:"refresh_interval_minutes" jsonschema:"default=60,enum=5,enum=10,enum=15,enum=30,enum=60,description=Feed refresh interval in minutes"`
}

// Load reads configuration from a YAML file, empty path means all defaults
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	setDefaults(&cfg)

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	// server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:feedstash.db?mode=rwc"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// fetch
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 10 * time.Second
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = "Feedstash/1.0"
	}
	if cfg.Fetch.MaxWorkers == 0 {
		cfg.Fetch.MaxWorkers = 4
	}
	if cfg.Fetch.OPMLTitle == "" {
		cfg.Fetch.OPMLTitle = "Feedstash Subscriptions"
	}

	// scheduler
	if cfg.Scheduler.Tick == 0 {
		cfg.Scheduler.Tick = time.Minute
	}
	if cfg.Scheduler.CleanupInterval == 0 {
		cfg.Scheduler.CleanupInterval = 24 * time.Hour
	}
	if cfg.Scheduler.ShutdownGrace == 0 {
		cfg.Scheduler.ShutdownGrace = 30 * time.Second
	}

	// initial settings
	defaults := domain.DefaultSettings()
	if cfg.Defaults.AutoCleanupEnabled == nil {
		cfg.Defaults.AutoCleanupEnabled = lo.ToPtr(defaults.AutoCleanupEnabled)
	}
	if cfg.Defaults.AutoCleanupDays == 0 {
		cfg.Defaults.AutoCleanupDays = defaults.AutoCleanupDays
	}
	if cfg.Defaults.RefreshIntervalMinutes == 0 {
		cfg.Defaults.RefreshIntervalMinutes = defaults.RefreshIntervalMinutes
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Database.MaxOpenConns < 0 || cfg.Database.MaxIdleConns < 0 {
		return fmt.Errorf("database connection limits must be non-negative")
	}

	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if cfg.Fetch.MaxWorkers < 1 || cfg.Fetch.MaxWorkers > 64 {
		return fmt.Errorf("fetch.max_workers must be between 1 and 64")
	}

	if cfg.Scheduler.Tick < time.Second {
		return fmt.Errorf("scheduler tick must be at least 1 second")
	}
	if cfg.Scheduler.CleanupInterval < cfg.Scheduler.Tick {
		return fmt.Errorf("scheduler cleanup_interval must not be shorter than tick")
	}
	if cfg.Scheduler.ShutdownGrace < 0 {
		return fmt.Errorf("scheduler shutdown_grace must be non-negative")
	}

	if !lo.Contains(domain.CleanupDaysAllowed, cfg.Defaults.AutoCleanupDays) {
		return fmt.Errorf("defaults.auto_cleanup_days must be one of %v", domain.CleanupDaysAllowed)
	}
	if !lo.Contains(domain.RefreshIntervalAllowed, cfg.Defaults.RefreshIntervalMinutes) {
		return fmt.Errorf("defaults.refresh_interval_minutes must be one of %v", domain.RefreshIntervalAllowed)
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// InitialSettings returns settings stored when the settings row is created
func (c *Config) InitialSettings() domain.Settings {
	return domain.Settings{
		AutoCleanupEnabled:     lo.FromPtrOr(c.Defaults.AutoCleanupEnabled, true),
		AutoCleanupDays:        c.Defaults.AutoCleanupDays,
		RefreshIntervalMinutes: c.Defaults.RefreshIntervalMinutes,
	}
}

// ConnMaxLifetime returns database connection lifetime as a duration
func (c *Config) ConnMaxLifetime() time.Duration {
	return time.Duration(c.Database.ConnMaxLifetime) * time.Second
}
