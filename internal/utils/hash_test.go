// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	passwords := []string{"password123", "p@ss w0rd", "пароль-юникод", strings.Repeat("a", 72)}

	for _, password := range passwords {
		digest, err := HashPassword(password, bcrypt.MinCost)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if digest == password {
			t.Fatal("digest must not equal the plaintext")
		}
		if !VerifyPassword(password, digest) {
			t.Errorf("expected %q to verify against its own digest", password)
		}
	}
}

func TestHashPassword_OtherPasswordDoesNotVerify(t *testing.T) {
	digest, err := HashPassword("password123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if VerifyPassword("password124", digest) {
		t.Error("expected a different password not to verify")
	}
	if VerifyPassword("", digest) {
		t.Error("expected an empty password not to verify")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("same-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected two digests of the same password to differ")
	}
}

func TestHashPassword_CostOutOfRangeFallsBackToDefault(t *testing.T) {
	digest, err := HashPassword("password123", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
	if err == nil {
		t.Error("expected an error for passwords longer than 72 bytes")
	}
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	if VerifyPassword("password123", "not-a-bcrypt-digest") {
		t.Error("expected malformed digest not to verify")
	}
}
