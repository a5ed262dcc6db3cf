// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging provides a slog handler that counts WARN and ERROR records
// by category, so store corruption and failed saves show up in metrics.
package logging

import (
	"context"
	"log/slog"
	"strings"
)

// Categories inferred when a record carries no "category" attribute.
const (
	CategoryAuth    = "auth"
	CategoryStore   = "store"
	CategoryEditor  = "editor"
	CategoryContact = "contact"
	CategoryConfig  = "config"
	CategorySystem  = "system"
)

// EventCounter receives one call per counted record.
type EventCounter interface {
	CountLogEvent(level, category string)
}

// MetricsHandler is a slog.Handler that wraps another handler and counts
// records at or above a threshold level.
type MetricsHandler struct {
	inner   slog.Handler
	counter EventCounter
	level   slog.Level // Minimum level to count (default: WARN)

	// category set through WithAttrs, if any
	category string
}

// NewMetricsHandler wraps inner and counts WARN and above into counter.
func NewMetricsHandler(inner slog.Handler, counter EventCounter) *MetricsHandler {
	return NewMetricsHandlerWithLevel(inner, counter, slog.LevelWarn)
}

// NewMetricsHandlerWithLevel creates a MetricsHandler with a custom minimum level.
func NewMetricsHandlerWithLevel(inner slog.Handler, counter EventCounter, level slog.Level) *MetricsHandler {
	return &MetricsHandler{
		inner:   inner,
		counter: counter,
		level:   level,
	}
}

// Enabled implements slog.Handler.
func (h *MetricsHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *MetricsHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level && h.counter != nil {
		h.counter.CountLogEvent(levelName(r.Level), h.extractCategory(r))
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *MetricsHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	category := h.category
	for _, a := range attrs {
		if a.Key == "category" {
			category = a.Value.String()
		}
	}
	return &MetricsHandler{
		inner:    h.inner.WithAttrs(attrs),
		counter:  h.counter,
		level:    h.level,
		category: category,
	}
}

// WithGroup implements slog.Handler.
func (h *MetricsHandler) WithGroup(name string) slog.Handler {
	return &MetricsHandler{
		inner:    h.inner.WithGroup(name),
		counter:  h.counter,
		level:    h.level,
		category: h.category,
	}
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// extractCategory looks for a "category" attribute, then falls back to the
// handler's own category, then infers one from the message.
func (h *MetricsHandler) extractCategory(r slog.Record) string {
	var category string

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "category" {
			category = a.Value.String()
			return false
		}
		return true
	})

	if category != "" {
		return category
	}
	if h.category != "" {
		return h.category
	}

	msg := strings.ToLower(r.Message)
	switch {
	case strings.Contains(msg, "auth") || strings.Contains(msg, "login") || strings.Contains(msg, "logout"):
		return CategoryAuth
	case strings.Contains(msg, "store") || strings.Contains(msg, "record"):
		return CategoryStore
	case strings.Contains(msg, "editor") || strings.Contains(msg, "workspace") || strings.Contains(msg, "sav"):
		return CategoryEditor
	case strings.Contains(msg, "contact") || strings.Contains(msg, "message"):
		return CategoryContact
	case strings.Contains(msg, "config") || strings.Contains(msg, "setting"):
		return CategoryConfig
	default:
		return CategorySystem
	}
}

// ParseLevel maps a configured level name to a slog.Level, defaulting to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
