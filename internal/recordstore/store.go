// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package recordstore provides the keyed record store: a string key mapped to a
// JSON document, kept in a pluggable backend (memory, SQLite, Redis, Postgres,
// MySQL).
package recordstore

import (
	"context"
)

// Backend is the raw key/value medium behind a Store.
// All implementations must be safe for concurrent use.
type Backend interface {
	// Get returns the bytes stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the stored keys in lexical order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases any resources held by the backend.
	Close() error
}

// Error represents an error type for record store operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotFound indicates no record exists under the key.
	ErrNotFound Error = "record not found"

	// ErrClosed indicates the backend has been closed.
	ErrClosed Error = "record store closed"
)
