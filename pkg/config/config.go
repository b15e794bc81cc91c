// Package config loads the YAML configuration, fills defaults and validates it.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Auth     AuthConfig     `yaml:"auth" json:"auth" jsonschema:"description=Token issuing configuration"`
	Upstream UpstreamConfig `yaml:"upstream" json:"upstream" jsonschema:"description=Upstream news API configuration"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Background refresh configuration"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS links"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsgate.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// AuthConfig holds client credential and token signing settings
type AuthConfig struct {
	ClientID           string `yaml:"client_id" json:"client_id" jsonschema:"description=The only accepted client id"`
	ClientSecret       string `yaml:"client_secret" json:"client_secret" jsonschema:"description=Secret of the client (can use environment variable)"`
	SecretKey          string `yaml:"secret_key" json:"secret_key" jsonschema:"description=Token signing key (can use environment variable)"`
	Algorithm          string `yaml:"algorithm" json:"algorithm" jsonschema:"default=HS256,enum=HS256,enum=HS384,enum=HS512,description=Token signing algorithm"`
	TokenExpireMinutes int    `yaml:"token_expire_minutes" json:"token_expire_minutes" jsonschema:"default=60,minimum=1,description=Token lifetime in minutes"`
}

// UpstreamConfig holds news API settings
type UpstreamConfig struct {
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://newsapi.org/v2,description=News API base URL"`
	APIKey  string        `yaml:"api_key" json:"api_key" jsonschema:"description=News API key (can use environment variable)"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Upstream request timeout"`
}

// ScheduleConfig holds background refresh settings, refresh is off with zero interval
type ScheduleConfig struct {
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=0s,description=Refresh interval, 0 disables refresh"`
	Countries  []string      `yaml:"countries" json:"countries" jsonschema:"description=Country codes to refresh"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=2,minimum=1,description=Maximum concurrent refreshes"`
}

var algorithms = []string{"HS256", "HS384", "HS512"}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema, supplementary only
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	c.Server.BaseURL = strings.TrimRight(c.Server.BaseURL, "/")

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:newsgate.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// auth
	if c.Auth.Algorithm == "" {
		c.Auth.Algorithm = "HS256"
	}
	c.Auth.Algorithm = strings.ToUpper(c.Auth.Algorithm)
	if c.Auth.TokenExpireMinutes == 0 {
		c.Auth.TokenExpireMinutes = 60
	}

	// upstream
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = "https://newsapi.org/v2"
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 10 * time.Second
	}

	// schedule
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 2
	}
	countries := make([]string, 0, len(c.Schedule.Countries))
	for _, country := range c.Schedule.Countries {
		if country = strings.ToLower(strings.TrimSpace(country)); country != "" {
			countries = append(countries, country)
		}
	}
	c.Schedule.Countries = countries
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	var errs []error

	// auth
	if cfg.Auth.ClientID == "" {
		errs = append(errs, errors.New("auth.client_id is required"))
	}
	if cfg.Auth.ClientSecret == "" {
		errs = append(errs, errors.New("auth.client_secret is required"))
	}
	if cfg.Auth.SecretKey == "" {
		errs = append(errs, errors.New("auth.secret_key is required"))
	}
	if !slices.Contains(algorithms, cfg.Auth.Algorithm) {
		errs = append(errs, fmt.Errorf("auth.algorithm %q is not supported, use one of %v", cfg.Auth.Algorithm, algorithms))
	}
	if cfg.Auth.TokenExpireMinutes < 1 {
		errs = append(errs, errors.New("auth.token_expire_minutes must be positive"))
	}

	// upstream
	if cfg.Upstream.APIKey == "" {
		errs = append(errs, errors.New("upstream.api_key is required"))
	}
	if cfg.Upstream.Timeout < time.Second {
		errs = append(errs, errors.New("upstream timeout must be at least 1 second"))
	}

	// server
	if cfg.Server.Timeout < time.Second {
		errs = append(errs, errors.New("server timeout must be at least 1 second"))
	}

	// schedule
	if cfg.Schedule.MaxWorkers < 1 {
		errs = append(errs, errors.New("schedule.max_workers must be at least 1"))
	}
	if cfg.Schedule.Interval < 0 {
		errs = append(errs, errors.New("schedule.interval must not be negative"))
	}
	if cfg.Schedule.Interval > 0 && len(cfg.Schedule.Countries) == 0 {
		errs = append(errs, errors.New("schedule.countries is required when schedule.interval is set"))
	}

	return errors.Join(errs...)
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetBaseURL returns the public base URL of the service
func (c *Config) GetBaseURL() string {
	return c.Server.BaseURL
}

// GetTokenTTL returns token lifetime
func (c *Config) GetTokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenExpireMinutes) * time.Minute
}

// GetConnMaxLifetime returns database connection lifetime
func (c *Config) GetConnMaxLifetime() time.Duration {
	return time.Duration(c.Database.ConnMaxLifetime) * time.Second
}

// ScheduleEnabled reports whether background refresh should run
func (c *Config) ScheduleEnabled() bool {
	return c.Schedule.Interval > 0 && len(c.Schedule.Countries) > 0
}
