// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the PostgreSQL persistence layer: connection
// management, per-request sessions, transactions, and the user and post
// repositories.
package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-posts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with id and created_at set.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrUserNotFound when no user has the id.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PostRepository persists posts and reads them back joined with their owner
// and vote count.
type PostRepository interface {
	// ListPosts returns one page of posts ordered by id. The slice is empty,
	// never nil, when nothing matches.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	// GetPost returns ErrPostNotFound when the id does not exist.
	GetPost(ctx context.Context, postID int64) (models.Post, error)
	// GetPostOwnerForUpdate locks the post row until the surrounding
	// transaction ends and returns its owner id.
	GetPostOwnerForUpdate(ctx context.Context, postID int64) (int64, error)
	// CreatePost inserts post and returns the new id.
	CreatePost(ctx context.Context, post models.Post) (int64, error)
	// UpdatePost replaces the client-settable fields of the post.
	UpdatePost(ctx context.Context, postID int64, input models.PostInput) error
	// DeletePost removes the post together with its votes.
	DeletePost(ctx context.Context, postID int64) error
}

// Transactor runs fn inside a database transaction. Repository calls made
// with the context passed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SessionProvider hands out a dedicated connection for the lifetime of one
// request. The caller must close it.
type SessionProvider interface {
	Session(ctx context.Context) (*sql.Conn, error)
}

// ErrorClassificator decides how a failed database call should be treated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
