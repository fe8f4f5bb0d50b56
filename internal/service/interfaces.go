// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-posts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and resolves bearer
// tokens to users.
type AuthService interface {
	RegisterUser(ctx context.Context, input models.UserCreate) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	// CurrentUser returns the user a valid, unexpired token was issued for.
	CurrentUser(ctx context.Context, tokenString string) (models.User, error)
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	Issue(ctx context.Context, userID int64) (models.Token, error)
	Verify(ctx context.Context, tokenString string) (models.TokenClaims, error)
}

// PostService implements the post use cases. Mutations are restricted to
// the owner of the post.
type PostService interface {
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	CreatePost(ctx context.Context, owner models.User, input models.PostInput) (models.Post, error)
	UpdatePost(ctx context.Context, actor models.User, postID int64, input models.PostInput) (models.Post, error)
	DeletePost(ctx context.Context, actor models.User, postID int64) error
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// validating.
type PostServiceWrapper interface {
	Wrap(PostService) PostService // returns a decorated PostService applying additional behavior
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
