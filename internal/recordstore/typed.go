// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Status reports how a read was resolved.
type Status int

const (
	// StatusAbsent means no record exists and the seed was returned.
	StatusAbsent Status = iota
	// StatusFound means the stored record was decoded.
	StatusFound
	// StatusCorrupt means a record exists but could not be decoded or
	// failed validation; the seed was returned instead.
	StatusCorrupt
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusCorrupt:
		return "corrupt"
	default:
		return "absent"
	}
}

// Validator checks a raw stored payload before it is decoded.
type Validator func(key string, raw []byte) error

// Pinger is implemented by backends that hold a connection to a server or
// database file and can verify it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Observer receives read and write outcomes, e.g. for metrics.
type Observer interface {
	ObserveRead(key string, status Status)
	ObserveWrite(key string, err error)
}

// Store is the JSON facade over a Backend. It is safe for concurrent use
// if the Backend is.
type Store struct {
	backend  Backend
	validate Validator
	observer Observer
	logger   *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithValidator sets the payload validator applied on every read.
func WithValidator(v Validator) Option {
	return func(s *Store) { s.validate = v }
}

// WithObserver sets the read/write observer.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

// WithLogger sets the logger used for corrupt-record warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New wraps backend in a Store.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Raw returns the stored bytes for key without decoding them.
func (s *Store) Raw(ctx context.Context, key string) ([]byte, error) {
	return s.backend.Get(ctx, key)
}

// Set encodes value as JSON and replaces whatever is stored under key.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		s.observeWrite(key, err)
		return fmt.Errorf("encoding record %q: %w", key, err)
	}
	err = s.backend.Set(ctx, key, data)
	s.observeWrite(key, err)
	return err
}

// Delete removes key so that readers fall back to their seed.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}

// Ping verifies the backend connection when the backend supports it.
func (s *Store) Ping(ctx context.Context) error {
	p, ok := s.backend.(Pinger)
	if !ok {
		return nil
	}
	return p.Ping(ctx)
}

// Keys lists the stored keys.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	return s.backend.Keys(ctx)
}

// Check reports the status of the record under key without decoding it
// into a concrete type.
func (s *Store) Check(ctx context.Context, key string) (Status, error) {
	raw, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return StatusAbsent, nil
	}
	if err != nil {
		return StatusAbsent, err
	}
	if err := s.check(key, raw); err != nil {
		return StatusCorrupt, nil
	}
	return StatusFound, nil
}

func (s *Store) check(key string, raw []byte) error {
	if !json.Valid(raw) {
		return errors.New("payload is not valid JSON")
	}
	if s.validate != nil {
		return s.validate(key, raw)
	}
	return nil
}

func (s *Store) observeRead(key string, status Status) {
	if s.observer != nil {
		s.observer.ObserveRead(key, status)
	}
}

func (s *Store) observeWrite(key string, err error) {
	if s.observer != nil {
		s.observer.ObserveWrite(key, err)
	}
}

// Get returns the value stored under key, or a copy of seed when the key is
// absent or its payload is corrupt. The seed itself is never modified and is
// never written back. Only backend failures are returned as errors.
func Get[T any](ctx context.Context, s *Store, key string, seed T) (T, error) {
	value, _, err := Lookup(ctx, s, key, seed)
	return value, err
}

// Lookup is Get that also reports how the read was resolved.
func Lookup[T any](ctx context.Context, s *Store, key string, seed T) (T, Status, error) {
	raw, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		s.observeRead(key, StatusAbsent)
		return cloneSeed(seed), StatusAbsent, nil
	}
	if err != nil {
		var zero T
		return zero, StatusAbsent, err
	}

	if err := s.check(key, raw); err != nil {
		s.corrupt(key, err)
		return cloneSeed(seed), StatusCorrupt, nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.corrupt(key, err)
		return cloneSeed(seed), StatusCorrupt, nil
	}

	s.observeRead(key, StatusFound)
	return value, StatusFound, nil
}

func (s *Store) corrupt(key string, err error) {
	s.logger.Warn("stored record is corrupt, using defaults",
		"category", "store", "key", key, "error", err)
	s.observeRead(key, StatusCorrupt)
}

// cloneSeed deep-copies seed through its JSON form so callers can mutate
// the result freely. Seeds are plain data, so the round trip is lossless.
func cloneSeed[T any](seed T) T {
	data, err := json.Marshal(seed)
	if err != nil {
		return seed
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return seed
	}
	return out
}
