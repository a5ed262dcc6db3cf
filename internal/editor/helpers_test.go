// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/olegiv/topdesignr/internal/content"
	"github.com/olegiv/topdesignr/internal/recordstore"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore returns a store over a fresh in-memory backend.
func newTestStore(t *testing.T) (*recordstore.Store, recordstore.Backend) {
	t.Helper()
	backend := recordstore.NewMemoryBackend()
	t.Cleanup(func() { _ = backend.Close() })
	store := recordstore.New(backend,
		recordstore.WithValidator(content.ValidatePayload),
		recordstore.WithLogger(discardLogger()),
	)
	return store, backend
}

// sequenceIDs returns a generator that hands out the given UUIDs in order.
func sequenceIDs(t *testing.T, ids ...string) *IDGenerator {
	t.Helper()
	next := 0
	return &IDGenerator{newUUID: func() (uuid.UUID, error) {
		if next >= len(ids) {
			t.Fatalf("sequenceIDs exhausted after %d ids", len(ids))
		}
		u := uuid.MustParse(ids[next])
		next++
		return u, nil
	}}
}

const (
	idA = "01890a5d-ac96-774b-bcce-b302099a8057"
	idB = "01890a5d-ac96-774b-bcce-b302099a8058"
	idC = "01890a5d-ac96-774b-bcce-b302099a8059"
)
