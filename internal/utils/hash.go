package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt digest of password using the given cost.
//
// The digest embeds its own random salt and cost, so VerifyPassword needs
// nothing but the digest. A cost outside [bcrypt.MinCost, bcrypt.MaxCost]
// falls back to [bcrypt.DefaultCost].
//
// Example usage:
//
//	digest, err := utils.HashPassword("correct horse", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether password matches the bcrypt digest.
// A malformed digest never matches.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
