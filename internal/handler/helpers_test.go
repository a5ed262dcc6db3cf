// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/topdesignr/internal/auth"
	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/editor"
	"github.com/olegiv/topdesignr/internal/middleware"
	"github.com/olegiv/topdesignr/internal/recordstore"
	"github.com/olegiv/topdesignr/internal/render"
	"github.com/olegiv/topdesignr/internal/session"
	"github.com/olegiv/topdesignr/internal/version"
	"github.com/olegiv/topdesignr/web"
)

const testPassword = "correct horse battery staple"

// assertJSONResponse validates common JSON response properties.
func assertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantSuccess bool) map[string]any {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "status code")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	assert.Equal(t, wantSuccess, resp["success"], "success flag")
	return resp
}

type counter struct {
	contacts int
	logins   map[string]int
}

func (c *counter) ContactReceived() { c.contacts++ }

func (c *counter) LoginAttempt(result string) {
	if c.logins == nil {
		c.logins = make(map[string]int)
	}
	c.logins[result]++
}

// testEnv is a full router over a memory store, reached through a real
// server so the session cookie round-trips.
type testEnv struct {
	store    *recordstore.Store
	repo     *content.Repository
	sm       *scs.SessionManager
	registry *editor.Registry
	counts   *counter
	server   *httptest.Server
	client   *http.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := recordstore.New(recordstore.NewMemoryBackend(), recordstore.WithValidator(content.ValidatePayload))
	repo := content.NewRepository(store)
	sm := session.New(nil, true)
	registry := editor.NewRegistry(store, repo)
	admin, err := auth.NewAdmin("", testPassword)
	require.NoError(t, err)
	renderer, err := render.New(render.Config{TemplatesFS: web.TemplatesFS()})
	require.NoError(t, err)

	counts := &counter{}
	public := NewPublicHandler(repo, renderer, sm, counts, nil)
	authH := NewAuthHandler(sm, admin, registry, middleware.NewLoginProtection(middleware.LoginProtectionConfig{
		IPRateLimit: 1000,
		IPBurst:     1000,
	}), counts, nil)
	editors := NewEditorHandler(sm, registry)
	storeH := NewStoreHandler(store, repo, nil)
	health := NewHealthHandler(store, sm, version.Info{Version: "1.2.3"}, recordstore.TypeMemory)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)
	r.NotFound(public.NotFound)
	r.Get(RouteHealth, health.Health)
	public.Routes(r)
	r.Route(RouteAPI, func(r chi.Router) {
		public.APIRoutes(r)
		r.Post(RouteAPIContact, public.SubmitContact)
	})
	r.Route(RouteAdmin, func(r chi.Router) {
		authH.Routes(r)
		r.Route(RouteAdminAPI, func(r chi.Router) {
			r.Get(RouteAdminSession, authH.Session)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin(sm))
				editors.Routes(r)
				storeH.Routes(r)
			})
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{
		store:    store,
		repo:     repo,
		sm:       sm,
		registry: registry,
		counts:   counts,
		server:   srv,
		client:   newClient(t),
	}
}

// newClient returns a client with its own cookie jar that does not follow
// redirects.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// request sends body (JSON-encoded unless it is a string) and returns the
// response with its body read.
func (e *testEnv) request(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var rd io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
		contentType = "application/x-www-form-urlencoded"
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(context.Background(), method, e.server.URL+path, rd)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// json sends a request and decodes a JSON answer, checking the status.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any, wantStatus int) map[string]any {
	t.Helper()

	resp, data := e.request(t, method, path, body)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, data)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out), "body: %s", data)
	return out
}

func (e *testEnv) signIn(t *testing.T) {
	t.Helper()
	out := e.doJSON(t, http.MethodPost, "/admin/login", map[string]any{"password": testPassword}, http.StatusOK)
	require.Equal(t, true, out["authenticated"])
}

// field decodes a nested JSON value by path, e.g. field(m, "draft", "title").
func field(t *testing.T, m map[string]any, path ...string) any {
	t.Helper()
	var cur any = m
	for _, p := range path {
		obj, ok := cur.(map[string]any)
		require.True(t, ok, "path %v: %T is not an object", path, cur)
		cur = obj[p]
	}
	return cur
}

func items(t *testing.T, m map[string]any, key string) []any {
	t.Helper()
	list, ok := m[key].([]any)
	require.True(t, ok, "%q is %T, not a list", key, m[key])
	return list
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
