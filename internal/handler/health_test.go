// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/topdesignr/internal/recordstore"
	"github.com/olegiv/topdesignr/internal/session"
	"github.com/olegiv/topdesignr/internal/version"
)

func TestHealth_Anonymous(t *testing.T) {
	env := newTestEnv(t)

	out := env.doJSON(t, http.MethodGet, "/health", nil, http.StatusOK)
	assert.Equal(t, map[string]any{"status": "healthy"}, out)
}

func TestHealth_Admin(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	out := env.doJSON(t, http.MethodGet, "/health?verbose=true", nil, http.StatusOK)
	assert.Equal(t, "healthy", out["status"])
	assert.Equal(t, "1.2.3", out["version"])
	assert.Equal(t, "healthy", field(t, out, "checks", "store", "status"))
	assert.Equal(t, recordstore.TypeMemory, field(t, out, "checks", "store", "message"))
	assert.NotNil(t, out["system"])
}

// failingBackend fails every read.
type failingBackend struct {
	recordstore.Backend
}

func (failingBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

// unreachableBackend reads fine from a stale connection but fails Ping.
type unreachableBackend struct {
	recordstore.Backend
}

func (unreachableBackend) Ping(context.Context) error {
	return errors.New("dial tcp: connection refused")
}

func TestHealth_PingFailureIsDegraded(t *testing.T) {
	store := recordstore.New(unreachableBackend{recordstore.NewMemoryBackend()})
	h := NewHealthHandler(store, nil, version.Info{}, recordstore.TypeRedis)

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var out HealthStatusPublic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "degraded", out.Status)
}

func TestHealth_Degraded(t *testing.T) {
	store := recordstore.New(failingBackend{recordstore.NewMemoryBackend()})
	sm := session.New(nil, true)
	h := NewHealthHandler(store, sm, version.Info{}, recordstore.TypeRedis)

	w := httptest.NewRecorder()
	sm.LoadAndSave(http.HandlerFunc(h.Health)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var out HealthStatusPublic
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "degraded", out.Status)
}
