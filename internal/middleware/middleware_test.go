// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/topdesignr/internal/session"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
})

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.False(t, body.Success)
	return body.Error
}

// signedInCookie runs a sign-in through the session manager and returns the
// session cookie it set.
func signedInCookie(t *testing.T, sm *scs.SessionManager) *http.Cookie {
	t.Helper()
	login := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, session.SignIn(r.Context(), sm, "ws"))
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	login.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/admin/login", nil))
	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestRequireAdmin(t *testing.T) {
	sm := session.New(nil, true)
	h := sm.LoadAndSave(RequireAdmin(sm)(okHandler))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/api/services", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Authentication required", decodeError(t, rr))

	req := httptest.NewRequest(http.MethodGet, "/admin/api/services", nil)
	req.AddCookie(signedInCookie(t, sm))
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNoStore(t *testing.T) {
	rr := httptest.NewRecorder()
	NoStore(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestStaticCache(t *testing.T) {
	rr := httptest.NewRecorder()
	StaticCache(3600)(okHandler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	assert.Equal(t, "public, max-age=3600", rr.Header().Get("Cache-Control"))
}

func TestCSRF(t *testing.T) {
	key := []byte("12345678901234567890123456789012")
	h := CSRF(DefaultCSRFConfig(key, false, nil))(okHandler)

	t.Run("same origin post passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
		req.Header.Set("Sec-Fetch-Site", "same-origin")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("cross site post rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
		req.Header.Set("Sec-Fetch-Site", "cross-site")
		req.Header.Set("Origin", "https://evil.example")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, decodeError(t, rr), "CSRF")
	})

	t.Run("cross site get passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
		req.Header.Set("Sec-Fetch-Site", "cross-site")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestDefaultCSRFConfig(t *testing.T) {
	key := []byte("12345678901234567890123456789012")

	cfg := DefaultCSRFConfig(key, false, []string{"example.com"})
	assert.Equal(t, []string{"example.com"}, cfg.TrustedOrigins)

	cfg = DefaultCSRFConfig(key, true, nil)
	for _, origin := range cfg.TrustedOrigins {
		assert.False(t, strings.HasPrefix(origin, "http"), "origin %q should be host:port", origin)
		assert.Contains(t, origin, ":")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	h := rl.Middleware()(okHandler)

	send := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", nil)
		req.RemoteAddr = remote
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:2222"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:3333"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1111"), "buckets are per IP")
}

func TestSecurityHeaders(t *testing.T) {
	h := SecurityHeaders(DefaultSecurityHeadersConfig(false))(okHandler)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	hdr := rr.Header()
	assert.True(t, strings.HasPrefix(hdr.Get("Content-Security-Policy"), "default-src 'self'; script-src 'self'"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", hdr.Get("Strict-Transport-Security"))
	assert.Equal(t, "DENY", hdr.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", hdr.Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", hdr.Get("Referrer-Policy"))
	assert.Equal(t, "browsing-topics=(), camera=(), geolocation=(), microphone=(), payment=(), usb=()", hdr.Get("Permissions-Policy"))
}

func TestSecurityHeaders_DevAndExcluded(t *testing.T) {
	cfg := DefaultSecurityHeadersConfig(true)
	cfg.ExcludePaths = []string{"/metrics"}
	h := SecurityHeaders(cfg)(okHandler)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, rr.Header().Get("Strict-Transport-Security"))
	assert.NotEmpty(t, rr.Header().Get("Content-Security-Policy"))

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Empty(t, rr.Header().Get("Content-Security-Policy"))
}

func TestBuildCSP_ExtraDirectivesSorted(t *testing.T) {
	got := buildCSP(map[string]string{
		"zz-src":      "'none'",
		"default-src": "'self'",
		"aa-src":      "'none'",
	})
	assert.Equal(t, "default-src 'self'; aa-src 'none'; zz-src 'none'", got)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:5000"
	assert.Equal(t, "192.0.2.1", ClientIP(req))

	req.RemoteAddr = "192.0.2.1"
	assert.Equal(t, "192.0.2.1", ClientIP(req))
}

func newTestLoginProtection(clock *time.Time) *LoginProtection {
	lp := NewLoginProtection(LoginProtectionConfig{
		IPRateLimit:       100,
		IPBurst:           100,
		MaxFailedAttempts: 3,
		LockoutDuration:   time.Minute,
		AttemptWindow:     10 * time.Minute,
	})
	lp.now = func() time.Time { return *clock }
	return lp
}

func TestLoginProtection_Lockout(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lp := newTestLoginProtection(&clock)
	const ip = "203.0.113.7"

	assert.Equal(t, 3, lp.Remaining(ip))

	locked, _ := lp.RecordFailure(ip)
	assert.False(t, locked)
	locked, _ = lp.RecordFailure(ip)
	assert.False(t, locked)
	assert.Equal(t, 1, lp.Remaining(ip))

	locked, d := lp.RecordFailure(ip)
	assert.True(t, locked)
	assert.Equal(t, time.Minute, d)

	isLocked, remaining := lp.Locked(ip)
	assert.True(t, isLocked)
	assert.Equal(t, time.Minute, remaining)

	clock = clock.Add(61 * time.Second)
	isLocked, _ = lp.Locked(ip)
	assert.False(t, isLocked)

	// Second lockout doubles.
	lp.RecordFailure(ip)
	lp.RecordFailure(ip)
	locked, d = lp.RecordFailure(ip)
	assert.True(t, locked)
	assert.Equal(t, 2*time.Minute, d)
}

func TestLoginProtection_WindowResetAndSuccess(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lp := newTestLoginProtection(&clock)
	const ip = "203.0.113.8"

	lp.RecordFailure(ip)
	lp.RecordFailure(ip)
	clock = clock.Add(11 * time.Minute)
	assert.Equal(t, 3, lp.Remaining(ip), "window elapsed")

	locked, _ := lp.RecordFailure(ip)
	assert.False(t, locked, "count restarts after the window")

	lp.RecordSuccess(ip)
	assert.Equal(t, 3, lp.Remaining(ip))
}

func TestLoginProtection_Cleanup(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lp := newTestLoginProtection(&clock)

	lp.RecordFailure("198.51.100.1")
	clock = clock.Add(time.Hour)
	lp.Cleanup()

	lp.failedMu.Lock()
	defer lp.failedMu.Unlock()
	assert.Empty(t, lp.failed)
}

func TestLoginProtection_Middleware(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lp := newTestLoginProtection(&clock)
	h := lp.Middleware()(okHandler)

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, post().Code)

	for range 3 {
		lp.RecordFailure("203.0.113.9")
	}
	rr := post()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "61", rr.Header().Get("Retry-After"))

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	assert.Equal(t, http.StatusOK, rr.Code, "GET is not throttled")
}

func TestNewLoginProtection_Defaults(t *testing.T) {
	lp := NewLoginProtection(LoginProtectionConfig{})
	def := DefaultLoginProtectionConfig()
	assert.Equal(t, def.MaxFailedAttempts, lp.maxFailedAttempts)
	assert.Equal(t, def.LockoutDuration, lp.lockoutDuration)
	assert.Equal(t, def.AttemptWindow, lp.attemptWindow)
}
