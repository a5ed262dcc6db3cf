// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// LoginProtection throttles admin sign-in attempts. There is one admin
// credential, so both the rate limit and the lockout are tracked per client
// IP.
type LoginProtection struct {
	ipLimiters *limiterCache[string]

	failed   map[string]*loginAttempt
	failedMu sync.Mutex

	maxFailedAttempts int
	lockoutDuration   time.Duration
	attemptWindow     time.Duration

	now func() time.Time
}

type loginAttempt struct {
	count       int
	firstFailed time.Time
	lockedUntil time.Time
	lockouts    int // drives the exponential backoff
}

// LoginProtectionConfig holds configuration for login protection.
type LoginProtectionConfig struct {
	// IPRateLimit is requests per second per IP (default: 0.5)
	IPRateLimit float64
	// IPBurst is the burst size for IP rate limiting (default: 5)
	IPBurst int
	// MaxFailedAttempts before lockout (default: 5)
	MaxFailedAttempts int
	// LockoutDuration doubles with each lockout, capped at 24h (default: 15m)
	LockoutDuration time.Duration
	// AttemptWindow is the window for counting failures (default: 15m)
	AttemptWindow time.Duration
}

// DefaultLoginProtectionConfig returns the production settings.
func DefaultLoginProtectionConfig() LoginProtectionConfig {
	return LoginProtectionConfig{
		IPRateLimit:       0.5,
		IPBurst:           5,
		MaxFailedAttempts: 5,
		LockoutDuration:   15 * time.Minute,
		AttemptWindow:     15 * time.Minute,
	}
}

// NewLoginProtection creates a login protection instance. Zero config values
// take their defaults. Stale entries are dropped by Cleanup, which the
// scheduler runs periodically.
func NewLoginProtection(cfg LoginProtectionConfig) *LoginProtection {
	def := DefaultLoginProtectionConfig()
	if cfg.IPRateLimit <= 0 {
		cfg.IPRateLimit = def.IPRateLimit
	}
	if cfg.IPBurst <= 0 {
		cfg.IPBurst = def.IPBurst
	}
	if cfg.MaxFailedAttempts <= 0 {
		cfg.MaxFailedAttempts = def.MaxFailedAttempts
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = def.LockoutDuration
	}
	if cfg.AttemptWindow <= 0 {
		cfg.AttemptWindow = def.AttemptWindow
	}

	return &LoginProtection{
		ipLimiters:        newLimiterCache[string](cfg.IPRateLimit, cfg.IPBurst),
		failed:            make(map[string]*loginAttempt),
		maxFailedAttempts: cfg.MaxFailedAttempts,
		lockoutDuration:   cfg.LockoutDuration,
		attemptWindow:     cfg.AttemptWindow,
		now:               time.Now,
	}
}

// Locked reports whether ip is locked out and for how much longer.
func (lp *LoginProtection) Locked(ip string) (bool, time.Duration) {
	lp.failedMu.Lock()
	defer lp.failedMu.Unlock()

	attempt, ok := lp.failed[ip]
	if !ok {
		return false, 0
	}
	if now := lp.now(); now.Before(attempt.lockedUntil) {
		return true, attempt.lockedUntil.Sub(now)
	}
	return false, 0
}

// RecordFailure counts a failed sign-in and reports whether ip is now
// locked out.
func (lp *LoginProtection) RecordFailure(ip string) (bool, time.Duration) {
	lp.failedMu.Lock()
	defer lp.failedMu.Unlock()

	now := lp.now()
	attempt, ok := lp.failed[ip]
	if !ok {
		lp.failed[ip] = &loginAttempt{count: 1, firstFailed: now}
		return false, 0
	}

	if now.Sub(attempt.firstFailed) > lp.attemptWindow {
		attempt.count = 1
		attempt.firstFailed = now
		return false, 0
	}

	attempt.count++
	if attempt.count < lp.maxFailedAttempts {
		return false, 0
	}

	lockDuration := lp.lockoutDuration
	for i := 0; i < attempt.lockouts; i++ {
		lockDuration *= 2
		if lockDuration > 24*time.Hour {
			lockDuration = 24 * time.Hour
			break
		}
	}

	attempt.lockedUntil = now.Add(lockDuration)
	attempt.lockouts++
	attempt.count = 0

	slog.Warn("admin sign-in locked due to failed attempts",
		"category", "auth",
		"ip", ip,
		"lockouts", attempt.lockouts,
		"duration", lockDuration,
	)
	return true, lockDuration
}

// RecordSuccess clears the failure history of ip.
func (lp *LoginProtection) RecordSuccess(ip string) {
	lp.failedMu.Lock()
	defer lp.failedMu.Unlock()
	delete(lp.failed, ip)
}

// Remaining returns how many failures ip may still make before lockout.
func (lp *LoginProtection) Remaining(ip string) int {
	lp.failedMu.Lock()
	defer lp.failedMu.Unlock()

	attempt, ok := lp.failed[ip]
	if !ok || lp.now().Sub(attempt.firstFailed) > lp.attemptWindow {
		return lp.maxFailedAttempts
	}
	return max(lp.maxFailedAttempts-attempt.count, 0)
}

// Cleanup removes expired lockouts and trims the limiter cache.
func (lp *LoginProtection) Cleanup() {
	if lp.ipLimiters.clearIfExceeds(10000) {
		slog.Info("cleared login rate limiters due to size", "category", "auth")
	}

	now := lp.now()
	lp.failedMu.Lock()
	defer lp.failedMu.Unlock()
	for ip, attempt := range lp.failed {
		if now.After(attempt.lockedUntil) && now.Sub(attempt.firstFailed) > lp.attemptWindow {
			delete(lp.failed, ip)
		}
	}
}

// Middleware applies the IP rate limit and the lockout to POST requests.
// Recording failures is left to the login handler, which knows the outcome.
func (lp *LoginProtection) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			if locked, remaining := lp.Locked(ip); locked {
				w.Header().Set("Retry-After", strconv.Itoa(int(remaining.Seconds())+1))
				writeJSONError(w, http.StatusTooManyRequests, "Too many failed attempts. Try again later.")
				return
			}
			if !lp.ipLimiters.get(ip).Allow() {
				slog.Warn("login rate limit exceeded", "category", "auth", "ip", ip)
				writeJSONError(w, http.StatusTooManyRequests, "Too many login attempts. Please wait.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP exposes the address the protection keys on, so the login handler
// records outcomes against the same key.
func ClientIP(r *http.Request) string {
	return clientIP(r)
}
