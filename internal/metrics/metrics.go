// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package metrics holds the Prometheus collectors for the site.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olegiv/topdesignr/internal/recordstore"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	registry *prometheus.Registry

	StoreReads         *prometheus.CounterVec
	StoreWrites        *prometheus.CounterVec
	EditorSaves        *prometheus.CounterVec
	LogEvents          *prometheus.CounterVec
	LoginAttempts      *prometheus.CounterVec
	ContactSubmissions prometheus.Counter
	OpenWorkspaces     prometheus.Gauge
}

// New creates the metrics on a private registry that also carries the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		StoreReads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "topdesignr_store_reads_total",
			Help: "Record store reads by key and outcome (found, absent, corrupt)",
		}, []string{"key", "status"}),
		StoreWrites: f.NewCounterVec(prometheus.CounterOpts{
			Name: "topdesignr_store_writes_total",
			Help: "Record store writes by key and result",
		}, []string{"key", "result"}),
		EditorSaves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "topdesignr_editor_saves_total",
			Help: "Successful editor saves by store key",
		}, []string{"key"}),
		LogEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "topdesignr_log_events_total",
			Help: "Warning and error log records by level and category",
		}, []string{"level", "category"}),
		LoginAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "topdesignr_admin_login_attempts_total",
			Help: "Admin login attempts by result",
		}, []string{"result"}),
		ContactSubmissions: f.NewCounter(prometheus.CounterOpts{
			Name: "topdesignr_contact_submissions_total",
			Help: "Accepted contact form submissions",
		}),
		OpenWorkspaces: f.NewGauge(prometheus.GaugeOpts{
			Name: "topdesignr_editor_workspaces",
			Help: "Editor workspaces currently held in memory",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRead implements recordstore.Observer.
func (m *Metrics) ObserveRead(key string, status recordstore.Status) {
	m.StoreReads.WithLabelValues(key, status.String()).Inc()
}

// ObserveWrite implements recordstore.Observer.
func (m *Metrics) ObserveWrite(key string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreWrites.WithLabelValues(key, result).Inc()
}

// CountLogEvent records a warning or error log record.
func (m *Metrics) CountLogEvent(level, category string) {
	m.LogEvents.WithLabelValues(level, category).Inc()
}

// EditorSaved records a successful editor save of key.
func (m *Metrics) EditorSaved(key string) {
	m.EditorSaves.WithLabelValues(key).Inc()
}

// LoginAttempt records an admin login attempt; result is "success",
// "failure" or "blocked".
func (m *Metrics) LoginAttempt(result string) {
	m.LoginAttempts.WithLabelValues(result).Inc()
}

// ContactReceived records an accepted contact form submission.
func (m *Metrics) ContactReceived() {
	m.ContactSubmissions.Inc()
}

// SetOpenWorkspaces sets the number of live editor workspaces.
func (m *Metrics) SetOpenWorkspaces(n int) {
	m.OpenWorkspaces.Set(float64(n))
}

var _ recordstore.Observer = (*Metrics)(nil)
