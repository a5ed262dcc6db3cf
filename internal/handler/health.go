// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/recordstore"
	"github.com/olegiv/topdesignr/internal/session"
	"github.com/olegiv/topdesignr/internal/version"
)

const (
	healthHealthy  = "healthy"
	healthDegraded = "degraded"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	store     *recordstore.Store
	sm        *scs.SessionManager
	info      version.Info
	backend   string
	startTime time.Time
}

// NewHealthHandler creates a new health handler. backend names the record
// store backend in use.
func NewHealthHandler(store *recordstore.Store, sm *scs.SessionManager, info version.Info, backend string) *HealthHandler {
	return &HealthHandler{
		store:     store,
		sm:        sm,
		info:      info,
		backend:   backend,
		startTime: time.Now(),
	}
}

// HealthStatusPublic is the minimal health response for anonymous callers.
type HealthStatusPublic struct {
	Status string `json:"status"`
}

// HealthStatus is the full response for signed-in callers.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// SystemInfo contains runtime information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	storeCheck := h.checkStore(r.Context())

	overall := healthHealthy
	if storeCheck.Status != healthHealthy {
		overall = healthDegraded
	}

	w.Header().Set("Content-Type", "application/json")
	if overall != healthHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if h.sm == nil || !session.IsAdmin(r.Context(), h.sm) {
		_ = json.NewEncoder(w).Encode(HealthStatusPublic{Status: overall})
		return
	}

	status := HealthStatus{
		Status:    overall,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.info.String(),
		Checks:    map[string]Check{"store": storeCheck},
	}
	if r.URL.Query().Get("verbose") == "true" {
		status.System = &SystemInfo{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
		}
	}
	_ = json.NewEncoder(w).Encode(status)
}

// checkStore pings the backend and reads one key through it. A missing
// record is healthy; only backend failures count.
func (h *HealthHandler) checkStore(ctx context.Context) Check {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	if err == nil {
		_, err = h.store.Check(ctx, content.KeyWebsiteContent)
	}
	latency := time.Since(start)
	if err != nil {
		return Check{Status: "unhealthy", Message: "record store unavailable", Latency: latency.String()}
	}
	return Check{Status: healthHealthy, Message: h.backend, Latency: latency.String()}
}
