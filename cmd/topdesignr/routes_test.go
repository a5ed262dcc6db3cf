// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/topdesignr/internal/auth"
	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/editor"
	"github.com/olegiv/topdesignr/internal/metrics"
	"github.com/olegiv/topdesignr/internal/middleware"
	"github.com/olegiv/topdesignr/internal/recordstore"
	"github.com/olegiv/topdesignr/internal/render"
	"github.com/olegiv/topdesignr/internal/scheduler"
	"github.com/olegiv/topdesignr/internal/session"
	"github.com/olegiv/topdesignr/internal/version"
	"github.com/olegiv/topdesignr/web"
)

func newTestApp(t *testing.T) *app {
	t.Helper()

	m := metrics.New()
	store := recordstore.New(recordstore.NewMemoryBackend(),
		recordstore.WithValidator(content.ValidatePayload),
		recordstore.WithObserver(m),
	)
	repo := content.NewRepository(store)
	admin, err := auth.NewAdmin("", "secret-password")
	require.NoError(t, err)
	renderer, err := render.New(render.Config{TemplatesFS: web.TemplatesFS()})
	require.NoError(t, err)
	registry := editor.NewRegistry(store, repo, editor.WithSaveListener(m.EditorSaved))

	return &app{
		isDev:      true,
		csrfKey:    []byte("0123456789abcdef0123456789abcdef"),
		backend:    recordstore.TypeMemory,
		info:       version.Info{Version: "test"},
		store:      store,
		repo:       repo,
		sm:         session.New(nil, true),
		admin:      admin,
		registry:   registry,
		renderer:   renderer,
		metrics:    m,
		jobs:       scheduler.New(slog.Default()),
		protection: middleware.NewLoginProtection(middleware.LoginProtectionConfig{}),
		contacts:   middleware.NewRateLimiter(100, 100),
	}
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRoutes_PublicPages(t *testing.T) {
	h := newTestApp(t).routes()

	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))

	w = serve(h, httptest.NewRequest(http.MethodGet, "/services/ui-ux-design", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(h, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=86400")

	w = serve(h, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_HealthAndMetrics(t *testing.T) {
	a := newTestApp(t)
	h := a.routes()

	w := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())

	serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	w = serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "topdesignr_store_reads_total")
}

func TestRoutes_AdminIsGated(t *testing.T) {
	h := newTestApp(t).routes()

	w := serve(h, httptest.NewRequest(http.MethodGet, "/admin/api/website", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	w = serve(h, httptest.NewRequest(http.MethodGet, "/admin/api/session", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_CrossSiteWriteRejected(t *testing.T) {
	a := newTestApp(t)
	h := a.routes()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact",
		strings.NewReader(`{"name":"A","email":"a@example.com","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Sec-Fetch-Site", "cross-site")

	w := serve(h, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	msgs, err := a.repo.Messages(t.Context())
	require.NoError(t, err)
	assert.Len(t, msgs, len(content.InitialContactMessages()))
}

func TestRegisterJobs(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, registerJobs(a.jobs, a.registry, a.protection, a.contacts, a.visitors, a.metrics, time.Hour))

	jobs := a.jobs.Jobs()
	require.Len(t, jobs, 3)
	names := make([]string, 0, len(jobs))
	for _, j := range jobs {
		names = append(names, j.Name)
	}
	assert.ElementsMatch(t, []string{"workspace-sweep", "login-protection-cleanup", "rate-limit-cleanup"}, names)

	require.NoError(t, a.jobs.Trigger("workspace-sweep"))
	assert.Error(t, registerJobs(a.jobs, a.registry, a.protection, a.contacts, a.visitors, a.metrics, time.Hour), "duplicate names are rejected")
}
