// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"slices"
	"testing"
)

func TestOpenMySQL_EmptyDSN(t *testing.T) {
	if _, err := OpenMySQL(context.Background(), ""); err == nil {
		t.Fatal("OpenMySQL(\"\") should fail")
	}
}

func TestOpenMySQL_BadDSN(t *testing.T) {
	if _, err := OpenMySQL(context.Background(), "not a dsn"); err == nil {
		t.Fatal("OpenMySQL with a malformed DSN should fail")
	}
}

func TestMySQLBackend_RoundTrip(t *testing.T) {
	dsn := os.Getenv("TDS_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("Skipping MySQL tests: TDS_TEST_MYSQL_DSN not set")
	}
	ctx := context.Background()

	b, err := OpenMySQL(ctx, dsn)
	if err != nil {
		t.Fatalf("OpenMySQL: %v", err)
	}
	defer func() { _ = b.Close() }()

	_ = b.Delete(ctx, "tds-test")
	if _, err := b.Get(ctx, "tds-test"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on missing key = %v, want ErrNotFound", err)
	}

	if err := b.Set(ctx, "tds-test", []byte(`{"a":[1,2]}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Set(ctx, "tds-test", []byte(`{"a":[3]}`)); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}
	got, err := b.Get(ctx, "tds-test")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	var doc struct {
		A []int `json:"a"`
	}
	if err := json.Unmarshal(got, &doc); err != nil {
		t.Fatalf("stored value is not JSON: %v", err)
	}
	if !slices.Equal(doc.A, []int{3}) {
		t.Errorf("a = %v, want [3]", doc.A)
	}

	keys, err := b.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	if !slices.Contains(keys, "tds-test") {
		t.Errorf("Keys() = %v, missing tds-test", keys)
	}

	if err := b.Delete(ctx, "tds-test"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
