// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/recordstore"
	"github.com/olegiv/topdesignr/internal/scheduler"
)

// StoreHandler exposes maintenance views of the record store.
type StoreHandler struct {
	store *recordstore.Store
	repo  *content.Repository
	jobs  JobsLister
	now   func() time.Time
}

// JobsLister lists scheduled housekeeping jobs.
type JobsLister interface {
	Jobs() []scheduler.JobInfo
}

// NewStoreHandler creates a store handler. jobs may be nil.
func NewStoreHandler(store *recordstore.Store, repo *content.Repository, jobs JobsLister) *StoreHandler {
	return &StoreHandler{store: store, repo: repo, jobs: jobs, now: time.Now}
}

// Routes registers the maintenance endpoints. The caller applies the admin
// gate.
func (h *StoreHandler) Routes(r chi.Router) {
	r.Route(RouteAdminStore, func(r chi.Router) {
		r.Get(RouteRoot, h.Status)
		r.Get(RouteExport, h.Export)
		r.Delete(RouteParamKey, h.Reset)
	})
	r.Get(RouteAdminJobs, h.Jobs)
}

type recordStatus struct {
	Key    string `json:"key"`
	Status string `json:"status"`
}

// Status handles GET /store and reports, per content key, whether a record
// is stored, absent or corrupt.
func (h *StoreHandler) Status(w http.ResponseWriter, r *http.Request) {
	records := make([]recordStatus, 0, len(content.Keys))
	for _, key := range content.Keys {
		st, err := h.store.Check(r.Context(), key)
		if err != nil {
			logAndInternalError(w, "failed to check record", "category", "store", "key", key, "error", err)
			return
		}
		records = append(records, recordStatus{Key: key, Status: st.String()})
	}
	writeJSONSuccess(w, map[string]any{"records": records})
}

// Export handles GET /store/export and downloads every resolved collection
// as one JSON document.
func (h *StoreHandler) Export(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.repo.Snapshot(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to build export", "category", "store", "error", err)
		return
	}
	filename := fmt.Sprintf("topdesignr-%s.json", h.now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(snapshot)
}

// Reset handles DELETE /store/{key}?confirm=true. The key reverts to its
// seed on the next read.
func (h *StoreHandler) Reset(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if !slices.Contains(content.Keys, key) {
		writeJSONError(w, http.StatusNotFound, "Unknown key")
		return
	}
	if !confirmed(r) {
		writeJSONError(w, http.StatusConflict, "Reset requires confirm=true")
		return
	}
	if err := h.store.Delete(r.Context(), key); err != nil {
		logAndInternalError(w, "failed to reset record", "category", "store", "key", key, "error", err)
		return
	}
	writeJSONSuccess(w, map[string]any{"key": key, "reset": true})
}

// Jobs handles GET /jobs.
func (h *StoreHandler) Jobs(w http.ResponseWriter, _ *http.Request) {
	jobs := []scheduler.JobInfo{}
	if h.jobs != nil {
		jobs = h.jobs.Jobs()
	}
	writeJSONSuccess(w, map[string]any{"jobs": jobs})
}
