// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/topdesignr/internal/editor"
)

func (h *EditorHandler) websiteRoutes(r chi.Router) {
	r.Get(RouteRoot, h.WebsiteContent)
	r.Post(RouteSuffixReload, h.WebsiteReload)
	r.Post(RouteSuffixSave, h.WebsiteSave)
	r.Patch(RouteSection, h.WebsiteUpdateSection)
	r.Get(RouteSectionList, h.WebsiteItemIndex)
	r.Post(RouteSectionList, h.WebsiteAddItem)
	r.Patch(RouteSectionItem, h.WebsiteUpdateItem)
	r.Delete(RouteSectionItem, h.WebsiteRemoveItem)
	r.Post(RouteNestedList, h.WebsiteAddNested)
	r.Patch(RouteNestedItem, h.WebsiteUpdateNested)
	r.Delete(RouteNestedItem, h.WebsiteRemoveNested)
}

func writeWebsite(w http.ResponseWriter, status int, ws *editor.Workspace, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}
	data["content"] = ws.Website.Content()
	writeJSONStatus(w, status, data)
}

// WebsiteContent handles GET /website.
func (h *EditorHandler) WebsiteContent(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		writeWebsite(w, http.StatusOK, ws, nil)
	})
}

// WebsiteReload handles POST /website/reload, discarding unsaved edits.
func (h *EditorHandler) WebsiteReload(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		if err := ws.Website.Load(r.Context()); err != nil {
			logAndInternalError(w, "failed to reload website content", "category", "editor", "error", err)
			return
		}
		writeWebsite(w, http.StatusOK, ws, nil)
	})
}

// WebsiteSave handles POST /website/save.
func (h *EditorHandler) WebsiteSave(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		if err := ws.Website.SaveAll(r.Context()); err != nil {
			logAndInternalError(w, "failed to save website content", "category", "store", "error", err)
			return
		}
		writeWebsite(w, http.StatusOK, ws, map[string]any{"saved": true})
	})
}

// WebsiteUpdateSection handles PATCH /website/sections/{section}.
func (h *EditorHandler) WebsiteUpdateSection(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeField(w, r)
	if !ok {
		return
	}
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		if err := ws.Website.UpdateSectionField(chi.URLParam(r, "section"), req.Field, req.Value); err != nil {
			writeEditorError(w, err, "failed to update section", "category", "editor")
			return
		}
		writeWebsite(w, http.StatusOK, ws, nil)
	})
}

// WebsiteItemIndex handles GET /website/sections/{section}/{field}?id=...
// and resolves a stable item id to its current index.
func (h *EditorHandler) WebsiteItemIndex(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "id is required")
		return
	}
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		i, err := ws.Website.ItemIndex(chi.URLParam(r, "section"), chi.URLParam(r, "field"), id)
		if err != nil {
			writeEditorError(w, err, "failed to resolve item", "category", "editor")
			return
		}
		writeJSONSuccess(w, map[string]any{"index": i})
	})
}

type addItemRequest struct {
	Fields map[string]string `json:"fields"`
}

// WebsiteAddItem handles POST /website/sections/{section}/{field}. The
// optional body overrides the defaults of the new item.
func (h *EditorHandler) WebsiteAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		i, err := ws.Website.AddArrayItem(chi.URLParam(r, "section"), chi.URLParam(r, "field"), req.Fields)
		if err != nil {
			writeEditorError(w, err, "failed to add item", "category", "editor")
			return
		}
		writeWebsite(w, http.StatusCreated, ws, map[string]any{"index": i})
	})
}

// WebsiteUpdateItem handles PATCH /website/sections/{section}/{field}/{index}.
func (h *EditorHandler) WebsiteUpdateItem(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r, "index")
	if !ok {
		return
	}
	req, ok := decodeField(w, r)
	if !ok {
		return
	}
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		changed, err := ws.Website.UpdateArrayItem(chi.URLParam(r, "section"), chi.URLParam(r, "field"), index, req.Field, req.Value)
		if err != nil {
			writeEditorError(w, err, "failed to update item", "category", "editor")
			return
		}
		if !changed {
			writeOutOfRange(w)
			return
		}
		writeWebsite(w, http.StatusOK, ws, nil)
	})
}

// WebsiteRemoveItem handles DELETE /website/sections/{section}/{field}/{index}.
func (h *EditorHandler) WebsiteRemoveItem(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r, "index")
	if !ok {
		return
	}
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		removed, err := ws.Website.RemoveArrayItem(chi.URLParam(r, "section"), chi.URLParam(r, "field"), index)
		if err != nil {
			writeEditorError(w, err, "failed to remove item", "category", "editor")
			return
		}
		if !removed {
			writeOutOfRange(w)
			return
		}
		writeWebsite(w, http.StatusOK, ws, nil)
	})
}

// WebsiteAddNested handles POST /website/sections/{section}/{field}/{index}/{nested}.
func (h *EditorHandler) WebsiteAddNested(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r, "index")
	if !ok {
		return
	}
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		i, added, err := ws.Website.AddNestedArrayItem(chi.URLParam(r, "section"), chi.URLParam(r, "field"), index, chi.URLParam(r, "nested"))
		if err != nil {
			writeEditorError(w, err, "failed to add nested item", "category", "editor")
			return
		}
		if !added {
			writeOutOfRange(w)
			return
		}
		writeWebsite(w, http.StatusCreated, ws, map[string]any{"index": i})
	})
}

// WebsiteUpdateNested handles PATCH
// /website/sections/{section}/{field}/{index}/{nested}/{nestedIndex}.
func (h *EditorHandler) WebsiteUpdateNested(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r, "index")
	if !ok {
		return
	}
	nestedIndex, ok := indexParam(w, r, "nestedIndex")
	if !ok {
		return
	}
	var req fieldRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		changed, err := ws.Website.UpdateNestedArrayItem(
			chi.URLParam(r, "section"), chi.URLParam(r, "field"), index,
			chi.URLParam(r, "nested"), nestedIndex, req.Field, req.Value)
		if err != nil {
			writeEditorError(w, err, "failed to update nested item", "category", "editor")
			return
		}
		if !changed {
			writeOutOfRange(w)
			return
		}
		writeWebsite(w, http.StatusOK, ws, nil)
	})
}

// WebsiteRemoveNested handles DELETE
// /website/sections/{section}/{field}/{index}/{nested}/{nestedIndex}.
func (h *EditorHandler) WebsiteRemoveNested(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r, "index")
	if !ok {
		return
	}
	nestedIndex, ok := indexParam(w, r, "nestedIndex")
	if !ok {
		return
	}
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		removed, err := ws.Website.RemoveNestedArrayItem(
			chi.URLParam(r, "section"), chi.URLParam(r, "field"), index,
			chi.URLParam(r, "nested"), nestedIndex)
		if err != nil {
			writeEditorError(w, err, "failed to remove nested item", "category", "editor")
			return
		}
		if !removed {
			writeOutOfRange(w)
			return
		}
		writeWebsite(w, http.StatusOK, ws, nil)
	})
}
