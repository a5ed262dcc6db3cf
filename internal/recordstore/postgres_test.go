// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
)

func TestPostgresBackend_RoundTrip(t *testing.T) {
	url := os.Getenv("TDS_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("Skipping Postgres tests: TDS_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()

	b, err := OpenPostgres(ctx, url)
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	defer func() { _ = b.Close() }()

	_ = b.Delete(ctx, "tds-test")
	if _, err := b.Get(ctx, "tds-test"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on missing key = %v, want ErrNotFound", err)
	}

	if err := b.Set(ctx, "tds-test", []byte(`{"b":1, "a":[true]}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := b.Get(ctx, "tds-test")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	var doc struct {
		A []bool `json:"a"`
		B int    `json:"b"`
	}
	if err := json.Unmarshal(got, &doc); err != nil {
		t.Fatalf("stored JSONB did not decode: %v", err)
	}
	if doc.B != 1 || len(doc.A) != 1 || !doc.A[0] {
		t.Errorf("decoded = %+v", doc)
	}

	_ = b.Delete(ctx, "tds-test")
}
