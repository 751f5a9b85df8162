// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

// Package config loads application configuration with koanf v2.
// Precedence, lowest to highest: struct defaults, YAML config file,
// APP_-prefixed environment variables.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Session  SessionConfig  `koanf:"session"`
	Auth     AuthConfig     `koanf:"auth"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// MaxUploadBytes caps multipart poster uploads. Image bytes are
	// read fully into memory per upload, so the cap bounds per-request
	// memory.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// RateLimit is the per-IP request budget per RateLimitWindow.
	RateLimit       int           `koanf:"rate_limit"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// DatabaseConfig configures the embedded DuckDB store.
type DatabaseConfig struct {
	// Path is the database file. Empty means in-memory (tests).
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	// Threads for DuckDB; 0 means runtime.NumCPU().
	Threads int `koanf:"threads"`
}

// SessionConfig configures session storage and the session cookie.
type SessionConfig struct {
	// Store selects the backend: "memory" or "badger".
	Store string `koanf:"store"`
	// BadgerPath is the directory for the badger store.
	BadgerPath string `koanf:"badger_path"`

	TTL     time.Duration `koanf:"ttl"`
	Sliding bool          `koanf:"sliding"`
	// CleanupInterval is how often expired sessions are purged.
	CleanupInterval time.Duration `koanf:"cleanup_interval"`

	CookieName   string `koanf:"cookie_name"`
	CookieSecure bool   `koanf:"cookie_secure"`
	// HashKey is the hex-encoded HMAC key signing the session cookie.
	// Generated at startup (with a warning) when empty; sessions then
	// do not survive restarts.
	HashKey string `koanf:"hash_key"`
}

// AuthConfig configures password hashing.
type AuthConfig struct {
	BcryptCost int `koanf:"bcrypt_cost"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// defaultConfig returns the configuration defaults applied before the
// file and environment overrides.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxUploadBytes:  8 << 20, // 8MB posters
			RateLimit:       100,
			RateLimitWindow: time.Minute,
		},
		Database: DatabaseConfig{
			Path:      "data/catalog.duckdb",
			MaxMemory: "512MB",
			Threads:   0,
		},
		Session: SessionConfig{
			Store:           "memory",
			BadgerPath:      "data/sessions",
			TTL:             24 * time.Hour,
			Sliding:         true,
			CleanupInterval: 15 * time.Minute,
			CookieName:      "session",
			CookieSecure:    false,
			HashKey:         "",
		},
		Auth: AuthConfig{
			BcryptCost: 12,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the loaded configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("server.max_upload_bytes must be positive, got %d", c.Server.MaxUploadBytes)
	}
	switch c.Session.Store {
	case "memory", "badger":
	default:
		return fmt.Errorf("session.store must be memory or badger, got %q", c.Session.Store)
	}
	if c.Session.Store == "badger" && c.Session.BadgerPath == "" {
		return fmt.Errorf("session.badger_path is required for the badger store")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be 4-31, got %d", c.Auth.BcryptCost)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
