// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the posts REST API.
//
// The primary abstraction is [PostsClient], which hides the wire protocol
// from command-line and programmatic callers. The package ships an
// HTTP/REST implementation ([NewHTTPPostsClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-posts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PostsClient defines transport-agnostic communication with the posts
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type PostsClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if none has been set yet.
	Token() string

	// Register creates a new account. It does not log in.
	Register(ctx context.Context, input models.UserCreate) (models.User, error)

	// Login exchanges credentials for an access token and stores it via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error)

	// GetUser fetches the public view of a user. Requires a token.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, input models.PostInput) (models.Post, error)
	UpdatePost(ctx context.Context, postID int64, input models.PostInput) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}
