// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package recordstore

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Backend type names accepted by Open.
const (
	TypeMemory   = "memory"
	TypeSQLite   = "sqlite"
	TypeRedis    = "redis"
	TypePostgres = "postgres"
	TypeMySQL    = "mysql"
)

// Config holds configuration for backend creation.
type Config struct {
	// Type is the backend type: "memory", "sqlite", "redis", "postgres" or
	// "mysql".
	Type string

	// SQLitePath is the database file (sqlite only).
	SQLitePath string

	// RedisURL is the Redis connection URL (redis only).
	RedisURL string

	// RedisPrefix is the key prefix (redis only).
	RedisPrefix string

	// PostgresURL is the connection string (postgres only).
	PostgresURL string

	// MySQLDSN is the go-sql-driver DSN (mysql only).
	MySQLDSN string

	// FallbackToMemory opens a memory backend when Redis is unreachable
	// instead of failing startup.
	FallbackToMemory bool
}

// Info describes the backend that Open selected.
type Info struct {
	Type       string
	IsFallback bool
}

// Open creates the backend described by cfg.
func Open(ctx context.Context, cfg Config) (Backend, Info, error) {
	switch cfg.Type {
	case TypeMemory:
		return NewMemoryBackend(), Info{Type: TypeMemory}, nil

	case TypeSQLite, "":
		if dir := filepath.Dir(cfg.SQLitePath); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, Info{}, fmt.Errorf("creating data directory: %w", err)
			}
		}
		b, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, Info{}, err
		}
		return b, Info{Type: TypeSQLite}, nil

	case TypeRedis:
		b, err := OpenRedis(RedisOptions{URL: cfg.RedisURL, Prefix: cfg.RedisPrefix})
		if err != nil {
			if !cfg.FallbackToMemory {
				return nil, Info{}, err
			}
			slog.Warn("redis record store unavailable, falling back to memory",
				"category", "store", "error", err)
			return NewMemoryBackend(), Info{Type: TypeMemory, IsFallback: true}, nil
		}
		return b, Info{Type: TypeRedis}, nil

	case TypePostgres:
		b, err := OpenPostgres(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, Info{}, err
		}
		return b, Info{Type: TypePostgres}, nil

	case TypeMySQL:
		b, err := OpenMySQL(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, Info{}, err
		}
		return b, Info{Type: TypeMySQL}, nil
	}

	return nil, Info{}, fmt.Errorf("unknown record store type %q", cfg.Type)
}
