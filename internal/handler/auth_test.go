// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAPI_RequiresSignIn(t *testing.T) {
	env := newTestEnv(t)

	paths := []string{
		"/admin/api/services",
		"/admin/api/testimonials",
		"/admin/api/projects",
		"/admin/api/website",
		"/admin/api/messages",
		"/admin/api/store",
		"/admin/api/jobs",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			out := env.doJSON(t, http.MethodGet, p, nil, http.StatusUnauthorized)
			assert.Equal(t, "Authentication required", out["error"])
		})
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	out := env.doJSON(t, http.MethodGet, "/admin/api/session", nil, http.StatusOK)
	assert.Equal(t, false, out["authenticated"])

	out = env.doJSON(t, http.MethodPost, "/admin/login", map[string]any{"password": "wrong"}, http.StatusUnauthorized)
	assert.Equal(t, "Invalid password", out["error"])
	assert.Equal(t, 1, env.counts.logins[LoginFailure])
	assert.Zero(t, env.registry.Len())

	env.signIn(t)
	assert.Equal(t, 1, env.counts.logins[LoginSuccess])

	out = env.doJSON(t, http.MethodGet, "/admin/api/session", nil, http.StatusOK)
	assert.Equal(t, true, out["authenticated"])

	env.doJSON(t, http.MethodGet, "/admin/api/services", nil, http.StatusOK)
	assert.Equal(t, 1, env.registry.Len())
}

func TestLogin_Form(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.request(t, http.MethodPost, "/admin/login", url.Values{"password": {testPassword}}.Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := env.doJSON(t, http.MethodGet, "/admin/api/session", nil, http.StatusOK)
	assert.Equal(t, true, out["authenticated"])
}

func TestLogout_DiscardsWorkspace(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t)

	env.doJSON(t, http.MethodPost, "/admin/api/services/draft", nil, http.StatusCreated)
	require.Equal(t, 1, env.registry.Len())

	out := env.doJSON(t, http.MethodPost, "/admin/logout", nil, http.StatusOK)
	assert.Equal(t, false, out["authenticated"])
	assert.Zero(t, env.registry.Len())

	env.doJSON(t, http.MethodGet, "/admin/api/services", nil, http.StatusUnauthorized)
}

func TestLogin_Lockout(t *testing.T) {
	env := newTestEnv(t)

	for range 5 {
		env.doJSON(t, http.MethodPost, "/admin/login", map[string]any{"password": "wrong"}, http.StatusUnauthorized)
	}
	assert.Equal(t, 1, env.counts.logins[LoginLocked])

	resp, _ := env.request(t, http.MethodPost, "/admin/login", map[string]any{"password": testPassword})
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}
