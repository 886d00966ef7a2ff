// Package common provides shared configuration, logging and version
// utilities for tvm.
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for tvm.
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Logging     LoggingConfig `toml:"logging"`
	History     HistoryConfig `toml:"history"`
	Auth        AuthConfig    `toml:"auth"`
	Solver      SolverConfig  `toml:"solver"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`

	// RateLimit is the sustained request rate allowed per client IP;
	// RateBurst is the burst capacity. Zero disables limiting.
	RateLimit float64 `toml:"rate_limit"`
	RateBurst int     `toml:"rate_burst"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// HistoryConfig holds evaluation-history storage configuration.
// Backend is "memory" or "redis"; RedisAddr is required for "redis".
type HistoryConfig struct {
	Backend    string `toml:"backend"`
	RedisAddr  string `toml:"redis_addr"`
	MaxEntries int    `toml:"max_entries"`
	TTL        string `toml:"ttl"`
}

// GetTTL parses and returns the history retention duration.
func (c *HistoryConfig) GetTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// AuthConfig holds optional bearer-token authentication configuration.
// An empty JWTSecret leaves the API open.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// Enabled reports whether bearer authentication should be enforced.
func (c *AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// SolverConfig holds the default parameters for the iterative rate solver,
// used when a request omits guess/tol/maxiter.
type SolverConfig struct {
	Guess   float64 `toml:"guess"`
	Tol     float64 `toml:"tol"`
	MaxIter int     `toml:"maxiter"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			RateLimit: 20,
			RateBurst: 40,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		History: HistoryConfig{
			Backend:    "memory",
			MaxEntries: 1000,
			TTL:        "24h",
		},
		Solver: SolverConfig{
			Guess:   0.1,
			Tol:     1e-6,
			MaxIter: 100,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Later files override earlier ones; missing files are skipped.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TVM_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("TVM_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("TVM_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("TVM_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if addr := os.Getenv("TVM_REDIS_ADDR"); addr != "" {
		config.History.Backend = "redis"
		config.History.RedisAddr = addr
	}

	if secret := os.Getenv("TVM_AUTH_JWT_SECRET"); secret != "" {
		config.Auth.JWTSecret = secret
	}
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
