// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
	"github.com/jackc/pgerrcode"
)

// postRepository is the PostgreSQL-backed implementation of
// [PostRepository]. Reads join "users" and count "votes" so every returned
// post carries its owner and vote total.
type postRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// ListPosts returns posts matching filter ordered by ascending id.
func (p *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.db.querier(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*postRepository.ListPosts").
			Uint64("limit", filter.Limit).
			Uint64("skip", filter.Skip).
			Msg("failed to execute query for listing posts")
		return nil, p.db.wrapError(err, ErrExecutingQuery)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, filter.Limit)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*postRepository.ListPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// GetPost returns a single post with owner and votes.
func (p *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("failed to create query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(p.db.querier(ctx).QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Int64("post_id", postID).Msg("failed to get post")
		return models.Post{}, p.db.wrapError(err, ErrExecutingQuery)
	}

	return post, nil
}

// GetPostOwnerForUpdate returns the owner of the post and holds a row lock
// on it. Outside a transaction the lock is released immediately.
func (p *postRepository) GetPostOwnerForUpdate(ctx context.Context, postID int64) (int64, error) {
	var ownerID int64
	err := p.db.querier(ctx).QueryRowContext(ctx, selectPostOwnerForUpdate, postID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*postRepository.GetPostOwnerForUpdate").
			Int64("post_id", postID).
			Msg("failed to lock post")
		return 0, p.db.wrapError(err, ErrExecutingQuery)
	}

	return ownerID, nil
}

// CreatePost inserts post and returns its id. A missing owner is reported
// as [ErrUserNotFound].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (int64, error) {
	log := logger.FromContext(ctx)

	var postID int64
	err := p.db.querier(ctx).
		QueryRowContext(ctx, createPost, post.Title, post.Content, post.Published, post.OwnerID).
		Scan(&postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Int64("owner_id", post.OwnerID).Msg("failed to insert post")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return 0, ErrUserNotFound
		}
		return 0, p.db.wrapError(err, ErrExecutingStatement)
	}

	log.Info().Str("func", "*postRepository.CreatePost").Int64("post_id", postID).Msg("post created")
	return postID, nil
}

// UpdatePost overwrites title, content and published. The owner is never
// changed.
func (p *postRepository) UpdatePost(ctx context.Context, postID int64, input models.PostInput) error {
	result, err := p.db.querier(ctx).ExecContext(ctx, updatePost, input.Title, input.Content, input.IsPublished(), postID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*postRepository.UpdatePost").
			Int64("post_id", postID).
			Msg("failed to update post")
		return p.db.wrapError(err, ErrExecutingStatement)
	}

	return p.expectAffected(ctx, result, "*postRepository.UpdatePost", postID)
}

// DeletePost removes the post. Votes go with it through ON DELETE CASCADE.
func (p *postRepository) DeletePost(ctx context.Context, postID int64) error {
	result, err := p.db.querier(ctx).ExecContext(ctx, deletePost, postID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*postRepository.DeletePost").
			Int64("post_id", postID).
			Msg("failed to delete post")
		return p.db.wrapError(err, ErrExecutingStatement)
	}

	return p.expectAffected(ctx, result, "*postRepository.DeletePost", postID)
}

func (p *postRepository) expectAffected(ctx context.Context, result sql.Result, funcName string, postID int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		logger.FromContext(ctx).Warn().Str("func", funcName).Int64("post_id", postID).Msg("post not found")
		return ErrPostNotFound
	}

	return nil
}
