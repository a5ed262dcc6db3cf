// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/editor"
)

// logAndInternalError logs an error and writes a JSON 500 response.
func logAndInternalError(w http.ResponseWriter, logMsg string, args ...any) {
	slog.Error(logMsg, args...)
	writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
}

// writeEditorError maps editor and content errors to HTTP statuses.
// Anything unrecognized is logged as a server failure.
func writeEditorError(w http.ResponseWriter, err error, logMsg string, args ...any) {
	switch {
	case errors.Is(err, editor.ErrNoDraft):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, editor.ErrNotFound), errors.Is(err, content.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, content.ErrUnknownField),
		errors.Is(err, content.ErrReadOnlyField),
		errors.Is(err, content.ErrUnknownSection):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, content.ErrCorruptRecord):
		slog.Warn(logMsg, append(args, "error", err)...)
		writeJSONError(w, http.StatusServiceUnavailable, "Stored data is corrupt; reset it from the store maintenance page")
	default:
		logAndInternalError(w, logMsg, append(args, "error", err)...)
	}
}

// writeOutOfRange answers an index-addressed operation that did not match
// an item.
func writeOutOfRange(w http.ResponseWriter) {
	writeJSONError(w, http.StatusNotFound, "Index out of range")
}

// indexParam parses an integer URL parameter. Non-integers answer 400 and
// report false; negative values pass through and are out of range.
func indexParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	i, err := strconv.Atoi(raw)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid "+name+": "+strconv.Quote(raw))
		return 0, false
	}
	return i, true
}
