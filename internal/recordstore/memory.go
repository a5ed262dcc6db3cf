// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package recordstore

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
)

// MemoryBackend keeps records in process memory. Contents are lost on restart.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string][]byte
	closed  atomic.Bool
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{records: make(map[string][]byte)}
}

// Get implements Backend.
func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}

	b.mu.RLock()
	value, ok := b.records[key]
	b.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	// Callers may decode in place; never hand out the stored slice.
	return slices.Clone(value), nil
}

// Set implements Backend.
func (b *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	if b.closed.Load() {
		return ErrClosed
	}

	b.mu.Lock()
	b.records[key] = slices.Clone(value)
	b.mu.Unlock()
	return nil
}

// Delete implements Backend.
func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	if b.closed.Load() {
		return ErrClosed
	}

	b.mu.Lock()
	delete(b.records, key)
	b.mu.Unlock()
	return nil
}

// Keys implements Backend.
func (b *MemoryBackend) Keys(_ context.Context) ([]string, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}

	b.mu.RLock()
	keys := make([]string, 0, len(b.records))
	for k := range b.records {
		keys = append(keys, k)
	}
	b.mu.RUnlock()

	slices.Sort(keys)
	return keys, nil
}

// Close implements Backend.
func (b *MemoryBackend) Close() error {
	b.closed.Store(true)
	return nil
}
