// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides the HTTP middleware of the site: the admin
// gate, CSRF protection, login throttling, rate limiting and security
// headers.
package middleware

import (
	"encoding/json"
	"net"
	"net/http"
)

// writeJSONError writes the same {"success":false,"error":...} envelope the
// handlers use.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
	})
}

// clientIP returns the request's remote host. chi's RealIP middleware runs
// first and has already replaced RemoteAddr with the proxy-reported address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
