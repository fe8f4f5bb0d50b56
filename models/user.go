// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns posts and authenticates with a
// bearer token.
type User struct {
	// UserID is the server-assigned identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Password holds the bcrypt digest of the user's password.
	// It is never serialised.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	Email string `json:"email" validate:"required,email,max=255"`

	// Password is the plaintext password. bcrypt accepts at most 72 bytes,
	// so the limit is on the encoded length, not on characters.
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

// Credentials carries the login form fields. Username holds the email.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
