// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/editor"
)

func (h *EditorHandler) inboxRoutes(r chi.Router) {
	r.Get(RouteRoot, h.ListMessages)
	r.Post(RouteParamIDRead, h.MarkMessageRead)
	r.Delete(RouteParamID, h.DeleteMessage)
}

func writeInbox(w http.ResponseWriter, ws *editor.Workspace) {
	writeJSONSuccess(w, map[string]any{
		"messages": ws.Inbox.Messages(),
		"unread":   ws.Inbox.Unread(),
	})
}

// ListMessages handles GET /messages. The inbox is reloaded on every call
// so new submissions show up without a manual refresh.
func (h *EditorHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		if err := ws.Inbox.Load(r.Context()); err != nil {
			logAndInternalError(w, "failed to load messages", "category", "editor", "error", err)
			return
		}
		writeInbox(w, ws)
	})
}

// MarkMessageRead handles POST /messages/{id}/read.
func (h *EditorHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		if err := ws.Inbox.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeEditorError(w, err, "failed to mark message read", "category", "store")
			return
		}
		writeInbox(w, ws)
	})
}

// DeleteMessage handles DELETE /messages/{id}?confirm=true.
func (h *EditorHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.withWorkspace(w, r, func(ws *editor.Workspace) {
		if !confirmed(r) {
			if err := ws.Inbox.Load(r.Context()); err != nil {
				logAndInternalError(w, "failed to load messages", "category", "editor", "error", err)
				return
			}
			exists := slices.ContainsFunc(ws.Inbox.Messages(), func(m content.ContactMessage) bool { return m.ID == id })
			if !exists {
				writeJSONError(w, http.StatusNotFound, "Message not found")
				return
			}
			writeJSONError(w, http.StatusConflict, "Deletion requires confirm=true")
			return
		}
		if err := ws.Inbox.Delete(r.Context(), id); err != nil {
			writeEditorError(w, err, "failed to delete message", "category", "store")
			return
		}
		writeInbox(w, ws)
	})
}
