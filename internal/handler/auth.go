// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/olegiv/topdesignr/internal/auth"
	"github.com/olegiv/topdesignr/internal/editor"
	"github.com/olegiv/topdesignr/internal/middleware"
	"github.com/olegiv/topdesignr/internal/session"
	"github.com/olegiv/topdesignr/internal/visitor"
)

// Login attempt outcomes reported to the LoginRecorder.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
	LoginLocked  = "locked"
)

// LoginRecorder counts sign-in outcomes.
type LoginRecorder interface {
	LoginAttempt(result string)
}

// AuthHandler signs the operator in and out. Signing in binds a fresh
// editor workspace to the session; signing out discards it.
type AuthHandler struct {
	sm         *scs.SessionManager
	admin      *auth.Admin
	registry   *editor.Registry
	protection *middleware.LoginProtection
	logins     LoginRecorder
	visitors   *visitor.Resolver
}

// NewAuthHandler creates an auth handler. protection, logins and visitors
// may be nil.
func NewAuthHandler(sm *scs.SessionManager, admin *auth.Admin, registry *editor.Registry, protection *middleware.LoginProtection, logins LoginRecorder, visitors *visitor.Resolver) *AuthHandler {
	return &AuthHandler{
		sm:         sm,
		admin:      admin,
		registry:   registry,
		protection: protection,
		logins:     logins,
		visitors:   visitors,
	}
}

// Routes registers login and logout; the login POST is throttled when
// protection is set. Session is registered by the caller under the admin
// API prefix.
func (h *AuthHandler) Routes(r chi.Router) {
	if h.protection != nil {
		r.With(h.protection.Middleware()).Post(RouteAdminLogin, h.Login)
	} else {
		r.Post(RouteAdminLogin, h.Login)
	}
	r.Post(RouteAdminLogout, h.Logout)
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if isFormRequest(r) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid form data")
			return
		}
		req.Password = r.PostForm.Get("password")
	} else if err := decodeJSON(w, r, &req); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	ip := middleware.ClientIP(r)
	who := h.visitors.Describe(r, ip)

	if !h.admin.Verify(req.Password) {
		result := LoginFailure
		if h.protection != nil {
			if locked, _ := h.protection.RecordFailure(ip); locked {
				result = LoginLocked
			}
		}
		h.record(result)
		slog.Warn("admin sign-in failed", append([]any{"category", "auth"}, who.LogAttrs()...)...)
		writeJSONError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	if h.protection != nil {
		h.protection.RecordSuccess(ip)
	}
	if old := session.WorkspaceID(ctx, h.sm); old != "" {
		h.registry.Drop(old)
	}

	id := h.registry.NewID()
	if err := session.SignIn(ctx, h.sm, id); err != nil {
		logAndInternalError(w, "failed to start admin session", "category", "auth", "error", err)
		return
	}
	h.record(LoginSuccess)
	slog.Info("admin signed in", append([]any{"category", "auth"}, who.LogAttrs()...)...)

	writeJSONSuccess(w, map[string]any{"authenticated": true})
}

func (h *AuthHandler) record(result string) {
	if h.logins != nil {
		h.logins.LoginAttempt(result)
	}
}

// Logout handles POST /admin/logout. Unsaved edits in the workspace are
// discarded.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id, err := session.SignOut(r.Context(), h.sm)
	if id != "" {
		h.registry.Drop(id)
	}
	if err != nil {
		logAndInternalError(w, "failed to end admin session", "category", "auth", "error", err)
		return
	}
	slog.Info("admin signed out", "category", "auth")
	writeJSONSuccess(w, map[string]any{"authenticated": false})
}

// Session handles GET /admin/api/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, map[string]any{"authenticated": session.IsAdmin(r.Context(), h.sm)})
}
