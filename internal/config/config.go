// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	Env        string `env:"TDS_ENV" envDefault:"development"`
	LogLevel   string `env:"TDS_LOG_LEVEL" envDefault:"info"`
	ServerHost string `env:"TDS_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"TDS_SERVER_PORT" envDefault:"8080"`

	// Record store
	StoreBackend string `env:"TDS_STORE_BACKEND" envDefault:"sqlite"` // sqlite, memory, redis, postgres or mysql
	DBPath       string `env:"TDS_DB_PATH" envDefault:"./data/topdesignr.db"`
	RedisURL     string `env:"TDS_REDIS_URL"`
	RedisPrefix  string `env:"TDS_REDIS_PREFIX" envDefault:"topdesignr:"`
	PostgresURL  string `env:"TDS_POSTGRES_URL"`
	MySQLDSN     string `env:"TDS_MYSQL_DSN"`

	// Admin access
	SessionSecret     string   `env:"TDS_SESSION_SECRET,required"`
	AdminPasswordHash string   `env:"TDS_ADMIN_PASSWORD_HASH"` // argon2id encoded hash
	AdminPassword     string   `env:"TDS_ADMIN_PASSWORD"`      // plain text, development only
	TrustedOrigins    []string `env:"TDS_TRUSTED_ORIGINS" envSeparator:","`

	// Optional MaxMind GeoLite2-Country database used to tag sign-ins and
	// contact submissions with a country.
	GeoIPDBPath string `env:"TDS_GEOIP_DB_PATH"`

	// Editor workspaces of signed-in operators are dropped after this much idle time.
	WorkspaceIdle time.Duration `env:"TDS_WORKSPACE_IDLE" envDefault:"2h"`
}

// Store backends.
const (
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMySQL    = "mysql"
)

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseSQLite reports whether records (and sessions) live in the SQLite file.
func (c Config) UseSQLite() bool {
	return c.StoreBackend == "" || c.StoreBackend == BackendSQLite
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("TDS_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, errors.New("TDS_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("TDS_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	switch cfg.StoreBackend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("TDS_REDIS_URL is required when TDS_STORE_BACKEND=redis")
		}
	case BackendPostgres:
		if cfg.PostgresURL == "" {
			return nil, errors.New("TDS_POSTGRES_URL is required when TDS_STORE_BACKEND=postgres")
		}
	case BackendMySQL:
		if cfg.MySQLDSN == "" {
			return nil, errors.New("TDS_MYSQL_DSN is required when TDS_STORE_BACKEND=mysql")
		}
	default:
		return nil, fmt.Errorf("TDS_STORE_BACKEND %q is not one of sqlite, memory, redis, postgres, mysql", cfg.StoreBackend)
	}

	if cfg.AdminPasswordHash == "" && cfg.AdminPassword == "" {
		return nil, errors.New("one of TDS_ADMIN_PASSWORD_HASH or TDS_ADMIN_PASSWORD must be set")
	}
	if cfg.AdminPasswordHash == "" && !cfg.IsDevelopment() {
		slog.Warn("TDS_ADMIN_PASSWORD is set in plain text; prefer TDS_ADMIN_PASSWORD_HASH outside development")
	}

	if cfg.WorkspaceIdle <= 0 {
		return nil, fmt.Errorf("TDS_WORKSPACE_IDLE must be positive, got %s", cfg.WorkspaceIdle)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
