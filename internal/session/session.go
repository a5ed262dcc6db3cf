// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package session holds the per-browser values of the site: the admin gate
// flag, the theme preference and the id of the operator's editor workspace.
package session

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
)

// Session keys.
const (
	KeyAdminAuth = "adminAuth"
	KeyTheme     = "theme"
	KeyWorkspace = "workspace"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeCyber = "cyber"
)

// New creates a session manager. Sessions live in the SQLite sessions table
// when db is set and in process memory otherwise.
func New(db *sql.DB, isDev bool) *scs.SessionManager {
	sm := scs.New()

	if db != nil {
		sm.Store = sqlite3store.New(db)
	} else {
		sm.Store = memstore.New()
	}

	sm.Lifetime = 24 * time.Hour
	sm.IdleTimeout = 12 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"
	sm.Cookie.Secure = !isDev
	if !isDev {
		// __Host- cookies must be Secure, host-only and scoped to "/".
		sm.Cookie.Name = "__Host-session"
	}

	return sm
}

// IsAdmin reports whether the gate flag is set. An absent flag means
// signed out.
func IsAdmin(ctx context.Context, sm *scs.SessionManager) bool {
	return sm.GetBool(ctx, KeyAdminAuth)
}

// SignIn sets the gate flag and binds the session to a workspace. The token
// is renewed to prevent session fixation.
func SignIn(ctx context.Context, sm *scs.SessionManager, workspaceID string) error {
	if err := sm.RenewToken(ctx); err != nil {
		return err
	}
	sm.Put(ctx, KeyAdminAuth, true)
	sm.Put(ctx, KeyWorkspace, workspaceID)
	return nil
}

// SignOut clears the gate flag and returns the workspace id that was bound
// to the session, if any. The theme preference survives.
func SignOut(ctx context.Context, sm *scs.SessionManager) (string, error) {
	workspaceID := sm.PopString(ctx, KeyWorkspace)
	sm.Remove(ctx, KeyAdminAuth)
	return workspaceID, sm.RenewToken(ctx)
}

// WorkspaceID returns the workspace bound to the session.
func WorkspaceID(ctx context.Context, sm *scs.SessionManager) string {
	return sm.GetString(ctx, KeyWorkspace)
}

// Theme returns the stored theme, defaulting to light for absent or
// unrecognized values.
func Theme(ctx context.Context, sm *scs.SessionManager) string {
	if sm.GetString(ctx, KeyTheme) == ThemeCyber {
		return ThemeCyber
	}
	return ThemeLight
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	return name == ThemeLight || name == ThemeCyber
}

// SetTheme stores the theme preference. Unknown names are ignored and
// reported as false.
func SetTheme(ctx context.Context, sm *scs.SessionManager, name string) bool {
	if !ValidTheme(name) {
		return false
	}
	sm.Put(ctx, KeyTheme, name)
	return true
}

// ToggleTheme flips between light and cyber and returns the new theme.
func ToggleTheme(ctx context.Context, sm *scs.SessionManager) string {
	next := ThemeCyber
	if Theme(ctx, sm) == ThemeCyber {
		next = ThemeLight
	}
	sm.Put(ctx, KeyTheme, next)
	return next
}
