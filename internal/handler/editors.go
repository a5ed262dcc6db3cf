// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/editor"
	"github.com/olegiv/topdesignr/internal/session"
)

// EditorHandler exposes the signed-in operator's workspace. Every request
// runs under the workspace lock.
type EditorHandler struct {
	sm       *scs.SessionManager
	registry *editor.Registry
}

// NewEditorHandler creates an editor handler.
func NewEditorHandler(sm *scs.SessionManager, registry *editor.Registry) *EditorHandler {
	return &EditorHandler{sm: sm, registry: registry}
}

// Routes registers the editor endpoints. The caller applies the admin gate.
func (h *EditorHandler) Routes(r chi.Router) {
	services := &collectionHandler[content.Service]{
		EditorHandler: h,
		pick:          func(ws *editor.Workspace) *editor.Collection[content.Service] { return ws.Services.Collection },
		extra: func(ws *editor.Workspace) map[string]any {
			if slug, err := ws.Services.SlugPreview(); err == nil {
				return map[string]any{"slugPreview": slug}
			}
			return nil
		},
	}
	testimonials := &collectionHandler[content.Testimonial]{
		EditorHandler: h,
		pick:          func(ws *editor.Workspace) *editor.Collection[content.Testimonial] { return ws.Testimonials.Collection },
	}
	projects := &collectionHandler[content.Project]{
		EditorHandler: h,
		pick:          func(ws *editor.Workspace) *editor.Collection[content.Project] { return ws.Projects.Collection },
	}

	r.Route(RouteAdminServices, func(r chi.Router) {
		services.routes(r)
		r.Post(RouteDraftFeature, services.AddFeature)
		r.Patch(RouteDraftFeatIdx, services.UpdateFeature)
		r.Delete(RouteDraftFeatIdx, services.RemoveFeature)
	})
	r.Route(RouteAdminTestimonial, testimonials.routes)
	r.Route(RouteAdminProjects, projects.routes)
	r.Route(RouteAdminWebsite, h.websiteRoutes)
	r.Route(RouteAdminMessages, h.inboxRoutes)
}

// withWorkspace resolves the session's workspace and runs fn under its lock.
func (h *EditorHandler) withWorkspace(w http.ResponseWriter, r *http.Request, fn func(ws *editor.Workspace)) {
	id := session.WorkspaceID(r.Context(), h.sm)
	if id == "" {
		writeJSONError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	ws, err := h.registry.Get(r.Context(), id)
	if err != nil {
		logAndInternalError(w, "failed to open editor workspace", "category", "editor", "error", err)
		return
	}
	_ = ws.Do(func(ws *editor.Workspace) error {
		fn(ws)
		return nil
	})
}

type fieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func decodeField(w http.ResponseWriter, r *http.Request) (fieldRequest, bool) {
	var req fieldRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return req, false
	}
	if req.Field == "" {
		writeJSONError(w, http.StatusBadRequest, "field is required")
		return req, false
	}
	return req, true
}

// decodeOptionalJSON is decodeJSON that accepts an empty body.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return nil
	}
	if err := decodeJSON(w, r, v); err != nil && !errors.Is(err, errEmptyBody) {
		return err
	}
	return nil
}

func confirmed(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

// collectionHandler serves one collection editor.
type collectionHandler[T editor.Entity[T]] struct {
	*EditorHandler
	pick  func(ws *editor.Workspace) *editor.Collection[T]
	extra func(ws *editor.Workspace) map[string]any
}

func (h *collectionHandler[T]) routes(r chi.Router) {
	r.Get(RouteRoot, h.List)
	r.Post(RouteSuffixReload, h.Reload)
	r.Post(RouteDraft, h.StartCreate)
	r.Patch(RouteDraft, h.UpdateDraft)
	r.Delete(RouteDraft, h.CancelDraft)
	r.Post(RouteDraftCommit, h.CommitDraft)
	r.Post(RouteParamIDEdit, h.StartEdit)
	r.Delete(RouteParamID, h.Delete)
	r.Post(RouteSuffixSave, h.SaveAll)
}

func (h *collectionHandler[T]) with(w http.ResponseWriter, r *http.Request, fn func(ws *editor.Workspace, c *editor.Collection[T])) {
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		fn(ws, h.pick(ws))
	})
}

// writeState answers with the editor state: the working list, the draft
// (null when none) and whether the dialog is open.
func (h *collectionHandler[T]) writeState(w http.ResponseWriter, status int, ws *editor.Workspace, c *editor.Collection[T], data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	data["key"] = c.Key()
	data["items"] = c.Items()
	data["dialogOpen"] = c.DialogOpen()
	if d, ok := c.Draft(); ok {
		data["draft"] = d
	} else {
		data["draft"] = nil
	}
	if h.extra != nil {
		for k, v := range h.extra(ws) {
			data[k] = v
		}
	}
	writeJSONStatus(w, status, data)
}

// List handles GET /.
func (h *collectionHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		h.writeState(w, http.StatusOK, ws, c, nil)
	})
}

// Reload handles POST /reload: the working list is replaced by the stored
// one and any draft is discarded.
func (h *collectionHandler[T]) Reload(w http.ResponseWriter, r *http.Request) {
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		if err := c.Load(r.Context()); err != nil {
			logAndInternalError(w, "failed to reload collection", "category", "editor", "key", c.Key(), "error", err)
			return
		}
		h.writeState(w, http.StatusOK, ws, c, nil)
	})
}

// StartCreate handles POST /draft.
func (h *collectionHandler[T]) StartCreate(w http.ResponseWriter, r *http.Request) {
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		c.StartCreate()
		h.writeState(w, http.StatusCreated, ws, c, nil)
	})
}

// StartEdit handles POST /{id}/edit.
func (h *collectionHandler[T]) StartEdit(w http.ResponseWriter, r *http.Request) {
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		if _, err := c.StartEdit(chi.URLParam(r, "id")); err != nil {
			writeEditorError(w, err, "failed to start edit", "category", "editor")
			return
		}
		h.writeState(w, http.StatusOK, ws, c, nil)
	})
}

// UpdateDraft handles PATCH /draft with {"field": ..., "value": ...}.
func (h *collectionHandler[T]) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeField(w, r)
	if !ok {
		return
	}
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		if _, err := c.UpdateDraftField(req.Field, req.Value); err != nil {
			writeEditorError(w, err, "failed to update draft", "category", "editor")
			return
		}
		h.writeState(w, http.StatusOK, ws, c, nil)
	})
}

// CommitDraft handles POST /draft/commit.
func (h *collectionHandler[T]) CommitDraft(w http.ResponseWriter, r *http.Request) {
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		item, err := c.CommitDraft()
		if err != nil {
			writeEditorError(w, err, "failed to commit draft", "category", "editor")
			return
		}
		h.writeState(w, http.StatusOK, ws, c, map[string]any{"committed": item})
	})
}

// CancelDraft handles DELETE /draft.
func (h *collectionHandler[T]) CancelDraft(w http.ResponseWriter, r *http.Request) {
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		c.CancelDraft()
		h.writeState(w, http.StatusOK, ws, c, nil)
	})
}

// Delete handles DELETE /{id}. Without confirm=true the list is left
// unchanged and 409 is returned.
func (h *collectionHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	answer := editor.Declined
	if confirmed(r) {
		answer = editor.Confirmed
	}
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		removed, err := c.Delete(chi.URLParam(r, "id"), answer)
		if err != nil {
			writeEditorError(w, err, "failed to delete item", "category", "editor")
			return
		}
		if !removed {
			writeJSONError(w, http.StatusConflict, "Deletion requires confirm=true")
			return
		}
		h.writeState(w, http.StatusOK, ws, c, nil)
	})
}

// SaveAll handles POST /save.
func (h *collectionHandler[T]) SaveAll(w http.ResponseWriter, r *http.Request) {
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		if err := c.SaveAll(r.Context()); err != nil {
			logAndInternalError(w, "failed to save collection", "category", "store", "key", c.Key(), "error", err)
			return
		}
		h.writeState(w, http.StatusOK, ws, c, map[string]any{"saved": true})
	})
}

// AddFeature handles POST /services/draft/features.
func (h *collectionHandler[T]) AddFeature(w http.ResponseWriter, r *http.Request) {
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		if _, err := ws.Services.AddFeature(); err != nil {
			writeEditorError(w, err, "failed to add feature", "category", "editor")
			return
		}
		h.writeState(w, http.StatusOK, ws, c, nil)
	})
}

// UpdateFeature handles PATCH /services/draft/features/{index}.
func (h *collectionHandler[T]) UpdateFeature(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r, "index")
	if !ok {
		return
	}
	req, ok := decodeField(w, r)
	if !ok {
		return
	}
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		if _, err := ws.Services.UpdateFeature(index, req.Field, req.Value); err != nil {
			writeEditorError(w, err, "failed to update feature", "category", "editor")
			return
		}
		h.writeState(w, http.StatusOK, ws, c, nil)
	})
}

// RemoveFeature handles DELETE /services/draft/features/{index}.
func (h *collectionHandler[T]) RemoveFeature(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r, "index")
	if !ok {
		return
	}
	h.with(w, r, func(ws *editor.Workspace, c *editor.Collection[T]) {
		if _, err := ws.Services.RemoveFeature(index); err != nil {
			writeEditorError(w, err, "failed to remove feature", "category", "editor")
			return
		}
		h.writeState(w, http.StatusOK, ws, c, nil)
	})
}
