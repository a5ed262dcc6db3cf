// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import (
	"encoding/json"
	"testing"
)

func TestValidatePayload_Seeds(t *testing.T) {
	for _, key := range Keys {
		seed, ok := Seed(key)
		if !ok {
			t.Fatalf("Seed(%q) missing", key)
		}
		raw, err := json.Marshal(seed)
		if err != nil {
			t.Fatalf("Marshal(%s) failed: %v", key, err)
		}
		if err := ValidatePayload(key, raw); err != nil {
			t.Errorf("seed for %s failed validation: %v", key, err)
		}
	}
}

func TestValidatePayload_Rejects(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"services not array", KeyServices, `{"id":"1"}`},
		{"service missing title", KeyServices, `[{"id":"1","slug":"x","description":"d"}]`},
		{"service title wrong type", KeyServices, `[{"id":"1","title":5,"slug":"x","description":"d"}]`},
		{"testimonial missing author", KeyTestimonials, `[{"id":"1","content":"c","position":"p","company":"c","image":"i"}]`},
		{"message isRead string", KeyContactMessages, `[{"id":"1","name":"n","email":"e","message":"m","date":"d","isRead":"yes"}]`},
		{"website missing footer", KeyWebsiteContent, `{"hero":{"title":"a"},"about":{"title":"a"},"keyNumbers":{"title":"a"},"pricing":{"title":"a"},"contact":{"title":"a"}}`},
		{"website plan price missing", KeyWebsiteContent, `{"hero":{"title":"a"},"about":{"title":"a"},"keyNumbers":{"title":"a"},"pricing":{"title":"a","plans":[{"title":"x"}]},"contact":{"title":"a"},"footer":{"title":"a"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidatePayload(tt.key, []byte(tt.raw)); err == nil {
				t.Errorf("ValidatePayload(%s, %s) = nil, want error", tt.key, tt.raw)
			}
		})
	}
}

func TestValidatePayload_OptionalListsMayBeNull(t *testing.T) {
	raw := `{"hero":{"title":"a"},"about":{"title":"a"},"keyNumbers":{"title":"a","numbers":null},"pricing":{"title":"a"},"contact":{"title":"a"},"footer":{"title":"a","links":[{"title":"x","items":null}]}}`
	if err := ValidatePayload(KeyWebsiteContent, []byte(raw)); err != nil {
		t.Errorf("ValidatePayload() error = %v", err)
	}
}

func TestValidatePayload_UnknownKey(t *testing.T) {
	if err := ValidatePayload("somethingElse", []byte(`42`)); err != nil {
		t.Errorf("unknown key should pass, got %v", err)
	}
}
