// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by an access token.
//
// It embeds [jwt.RegisteredClaims] for the standard exp and iat claims and
// adds the owner identifier under the "user_id" key.
type TokenClaims struct {
	// UserID identifies the user the token was issued for. Zero means the
	// claim was absent.
	UserID int64 `json:"user_id,omitempty"`

	jwt.RegisteredClaims
}

// Token is an issued access token.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner of the token.
	UserID int64 `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// AccessToken is the login response body.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewAccessToken wraps a token into the bearer login response.
func NewAccessToken(token Token) AccessToken {
	return AccessToken{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}
}
