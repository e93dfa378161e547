// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/exilemarket/item-price-scanner/pkg/schema"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Source        SourceConfig        `yaml:"source"`
	Estimator     EstimatorConfig     `yaml:"estimator"`
	Schemas       SchemasConfig       `yaml:"schemas"`
	Dataset       DatasetConfig       `yaml:"dataset"`
	Deals         DealsConfig         `yaml:"deals"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// SourceConfig defines the trade-index record source settings.
type SourceConfig struct {
	BaseURL     string          `yaml:"base_url"`
	League      string          `yaml:"league"`
	PageSize    int             `yaml:"page_size"`
	MaxPages    int             `yaml:"max_pages"`
	ScrollTTL   time.Duration   `yaml:"scroll_ttl"`
	HTTPTimeout time.Duration   `yaml:"http_timeout"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines record-source request rate limiting.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// EstimatorConfig defines the model-server backend settings.
type EstimatorConfig struct {
	Backend   string        `yaml:"backend"` // http, baseline
	Endpoint  string        `yaml:"endpoint"`
	Timeout   time.Duration `yaml:"timeout"`
	BatchSize int           `yaml:"batch_size"`
}

// SchemasConfig defines where column schemas live and how missing columns
// are filled at serving time.
type SchemasConfig struct {
	Dir  string `yaml:"dir"`
	Fill string `yaml:"fill"` // zero, mean
}

// FillPolicy returns the typed fill policy.
func (s *SchemasConfig) FillPolicy() schema.FillPolicy {
	if s.Fill == "mean" {
		return schema.FillMean
	}
	return schema.FillZero
}

// DatasetConfig defines training dataset export settings.
type DatasetConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // csv, parquet

	// MaxPriceChaos drops corpus rows listed above this price. Listings in
	// that range are dominated by mirror-tier outliers the model cannot
	// learn from. Negative disables the cap.
	MaxPriceChaos float64 `yaml:"max_price_chaos"`
}

// DealsConfig defines deal-mode thresholds and the deal log.
type DealsConfig struct {
	MinProfitChaos float64       `yaml:"min_profit_chaos"`
	MinProfitRatio float64       `yaml:"min_profit_ratio"`
	Log            DealLogConfig `yaml:"log"`
}

// DealLogConfig defines the rotating deal log file.
type DealLogConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// ScheduleConfig defines background job intervals.
type ScheduleConfig struct {
	PrepareInterval time.Duration `yaml:"prepare_interval"`
	StaggerOffset   time.Duration `yaml:"stagger_offset"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applySourceDefaults(&cfg.Source)
	applyEstimatorDefaults(&cfg.Estimator)
	applySchemasDefaults(&cfg.Schemas)
	applyDatasetDefaults(&cfg.Dataset)
	applyDealsDefaults(&cfg.Deals)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applySourceDefaults(s *SourceConfig) {
	if s.PageSize == 0 {
		s.PageSize = 10000
	}
	if s.MaxPages == 0 {
		s.MaxPages = 100
	}
	if s.ScrollTTL == 0 {
		s.ScrollTTL = 10 * time.Minute
	}
	if s.HTTPTimeout == 0 {
		s.HTTPTimeout = 60 * time.Second
	}
	if s.RateLimit.PerSecond == 0 {
		s.RateLimit.PerSecond = 2.0
	}
	if s.RateLimit.Burst == 0 {
		s.RateLimit.Burst = 4
	}
}

func applyEstimatorDefaults(e *EstimatorConfig) {
	if e.Backend == "" {
		e.Backend = "http"
	}
	if e.Timeout == 0 {
		e.Timeout = 30 * time.Second
	}
	if e.BatchSize == 0 {
		e.BatchSize = 256
	}
}

func applySchemasDefaults(s *SchemasConfig) {
	if s.Dir == "" {
		s.Dir = "schemas"
	}
	if s.Fill == "" {
		s.Fill = "zero"
	}
}

func applyDatasetDefaults(d *DatasetConfig) {
	if d.Dir == "" {
		d.Dir = "data"
	}
	if d.Format == "" {
		d.Format = "csv"
	}
	if d.MaxPriceChaos == 0 {
		d.MaxPriceChaos = 50.0
	}
}

func applyDealsDefaults(d *DealsConfig) {
	if d.MinProfitChaos == 0 {
		d.MinProfitChaos = 15.0
	}
	if d.MinProfitRatio == 0 {
		d.MinProfitRatio = 1.0
	}
	if d.Log.Path == "" {
		d.Log.Path = "deals.log"
	}
	if d.Log.MaxSizeMB == 0 {
		d.Log.MaxSizeMB = 50
	}
	if d.Log.MaxBackups == 0 {
		d.Log.MaxBackups = 5
	}
	if d.Log.MaxAgeDays == 0 {
		d.Log.MaxAgeDays = 30
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.PrepareInterval == 0 {
		s.PrepareInterval = 24 * time.Hour
	}
	if s.StaggerOffset == 0 {
		s.StaggerOffset = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Source.BaseURL == "" {
		errs = append(errs, fmt.Errorf("source.base_url is required"))
	}

	switch cfg.Estimator.Backend {
	case "http":
		if cfg.Estimator.Endpoint == "" {
			errs = append(
				errs,
				fmt.Errorf("estimator.endpoint is required when backend is http"),
			)
		}
	case "baseline":
		// Self-contained, nothing to validate.
	default:
		errs = append(
			errs,
			fmt.Errorf("estimator.backend must be one of: http, baseline (got %q)", cfg.Estimator.Backend),
		)
	}

	switch cfg.Schemas.Fill {
	case "zero", "mean":
	default:
		errs = append(errs, fmt.Errorf("schemas.fill must be one of: zero, mean (got %q)", cfg.Schemas.Fill))
	}

	switch cfg.Dataset.Format {
	case "csv", "parquet":
	default:
		errs = append(errs, fmt.Errorf("dataset.format must be one of: csv, parquet (got %q)", cfg.Dataset.Format))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when enabled"))
	}

	return errors.Join(errs...)
}
