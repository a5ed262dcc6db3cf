// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/topdesignr/internal/recordstore"
)

func TestMetrics_StoreObserver(t *testing.T) {
	m := New()

	m.ObserveRead("services", recordstore.StatusFound)
	m.ObserveRead("services", recordstore.StatusCorrupt)
	m.ObserveRead("services", recordstore.StatusCorrupt)
	m.ObserveWrite("services", nil)
	m.ObserveWrite("services", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreReads.WithLabelValues("services", "found")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoreReads.WithLabelValues("services", "corrupt")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreWrites.WithLabelValues("services", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreWrites.WithLabelValues("services", "error")))
}

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.CountLogEvent("WARN", "store")
	m.EditorSaved("websiteContent")
	m.LoginAttempt("failure")
	m.ContactReceived()
	m.SetOpenWorkspaces(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LogEvents.WithLabelValues("WARN", "store")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EditorSaves.WithLabelValues("websiteContent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttempts.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.OpenWorkspaces))
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.ContactReceived()

	assert.Equal(t, 0.0, testutil.ToFloat64(b.ContactSubmissions))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.EditorSaved("services")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `topdesignr_editor_saves_total{key="services"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
