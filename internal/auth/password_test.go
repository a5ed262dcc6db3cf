// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	other, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == other {
		t.Error("two hashes of the same password should differ by salt")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	valid, err := CheckPassword("changeme", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if !valid {
		t.Fatal("Correct password was rejected")
	}

	valid, err = CheckPassword("wrongpassword", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if valid {
		t.Fatal("Wrong password was accepted")
	}
}

func TestCheckPassword_ForeignParameters(t *testing.T) {
	// Hash of "changeme" produced with m=65536,t=1,p=4.
	hash := "$argon2id$v=19$m=65536,t=1,p=4$mucMvOaS6lZ2LWNS1OEFKw$UYEWv8cvCOO6l2zGeqv3JPVe1nyy0x9GXBfYEuDM544"

	valid, err := CheckPassword("changeme", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if !valid {
		t.Fatal("hash rejected correct password 'changeme'")
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	tests := []string{
		"",
		"plain",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA",
	}
	for _, h := range tests {
		if _, err := CheckPassword("x", h); err == nil {
			t.Errorf("CheckPassword(%q) expected error", h)
		}
	}
}

func TestNewAdmin(t *testing.T) {
	a, err := NewAdmin("", "s3cret")
	if err != nil {
		t.Fatalf("NewAdmin error: %v", err)
	}
	if !a.Verify("s3cret") {
		t.Error("plain password not accepted")
	}
	if a.Verify("S3cret") {
		t.Error("wrong password accepted")
	}

	hash, _ := HashPassword("from-hash")
	a, err = NewAdmin(hash, "ignored")
	if err != nil {
		t.Fatalf("NewAdmin error: %v", err)
	}
	if !a.Verify("from-hash") || a.Verify("ignored") {
		t.Error("hash should take precedence over plain password")
	}

	if _, err := NewAdmin("", ""); err == nil {
		t.Error("empty credential should fail")
	}
	if _, err := NewAdmin("nonsense", ""); !errors.Is(err, ErrInvalidHash) {
		t.Errorf("NewAdmin(nonsense) error = %v, want ErrInvalidHash", err)
	}
}
