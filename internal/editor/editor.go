// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package editor holds the admin view-models: collection editors for
// services, testimonials and projects, the structured website editor, the
// contact inbox, and the per-operator workspaces that own them.
//
// Editors keep an in-memory working copy loaded from the record store and
// write it back only on an explicit SaveAll. They are not safe for
// concurrent use on their own; a Workspace serializes access.
package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNoDraft is returned by draft operations when no draft is open.
	ErrNoDraft = errors.New("no draft open")

	// ErrNotFound is returned when an id does not match any item.
	ErrNotFound = errors.New("item not found")
)

// Confirmer asks the operator to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f(prompt).
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Fixed answers, mostly useful for callers that confirm out of band (the
// HTTP layer's confirm=true parameter) and for tests.
var (
	Confirmed = ConfirmFunc(func(string) bool { return true })
	Declined  = ConfirmFunc(func(string) bool { return false })
)

// IDGenerator issues identifiers for new records.
type IDGenerator struct {
	newUUID func() (uuid.UUID, error)
}

// NewIDGenerator returns a generator of time-ordered UUIDv7 identifiers.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{newUUID: uuid.NewV7}
}

// New returns an id for which taken reports false. A nil taken accepts the
// first id generated.
func (g *IDGenerator) New(taken func(id string) bool) string {
	for {
		u, err := g.newUUID()
		if err != nil {
			u = uuid.New()
		}
		id := u.String()
		if taken == nil || !taken(id) {
			return id
		}
	}
}

func indexError(kind string, index int) error {
	return fmt.Errorf("%s index %d: %w", kind, index, ErrNotFound)
}
