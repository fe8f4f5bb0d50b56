// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
)

// postService is the concrete implementation of PostService.
//
// Create, update and delete run in one transaction each. Update and delete
// lock the post row before the ownership check so a concurrent mutation
// cannot slip in between the check and the write.
//
// The update payload is validated here, after the existence and ownership
// checks: a missing post is 404 and a foreign one 403 whatever the body.
type postService struct {
	postRepository store.PostRepository
	transactor     store.Transactor
	validator      validators.Validator
	logger         *logger.Logger
}

// NewPostService constructs a PostService backed by postRepository.
func NewPostService(postRepository store.PostRepository, transactor store.Transactor, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		transactor:     transactor,
		validator:      validator,
		logger:         logger,
	}
}

func (p *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, fmt.Errorf("getting post failed: %w", err)
	}

	return post, nil
}

// CreatePost stores a post owned by owner and returns it as persisted,
// including the owner view and the vote count.
func (p *postService) CreatePost(ctx context.Context, owner models.User, input models.PostInput) (models.Post, error) {
	var created models.Post
	err := p.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		postID, err := p.postRepository.CreatePost(ctx, models.Post{
			Title:     input.Title,
			Content:   input.Content,
			Published: input.IsPublished(),
			OwnerID:   owner.UserID,
		})
		if err != nil {
			return err
		}

		created, err = p.postRepository.GetPost(ctx, postID)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.CreatePost").Int64("owner_id", owner.UserID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

// UpdatePost replaces title, content and published of a post owned by
// actor. A missing post is reported before a foreign one.
func (p *postService) UpdatePost(ctx context.Context, actor models.User, postID int64, input models.PostInput) (models.Post, error) {
	var updated models.Post
	err := p.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := p.checkOwnership(ctx, actor, postID); err != nil {
			return err
		}
		if err := p.validator.Validate(ctx, input); err != nil {
			return fmt.Errorf("invalid post: %w", err)
		}

		if err := p.postRepository.UpdatePost(ctx, postID, input); err != nil {
			return err
		}

		var err error
		updated, err = p.postRepository.GetPost(ctx, postID)
		return err
	})
	if err != nil {
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return updated, nil
}

// DeletePost removes a post owned by actor.
func (p *postService) DeletePost(ctx context.Context, actor models.User, postID int64) error {
	err := p.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := p.checkOwnership(ctx, actor, postID); err != nil {
			return err
		}

		return p.postRepository.DeletePost(ctx, postID)
	})
	if err != nil {
		return fmt.Errorf("post deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*postService.DeletePost").Int64("post_id", postID).Msg("post deleted")
	return nil
}

func (p *postService) checkOwnership(ctx context.Context, actor models.User, postID int64) error {
	ownerID, err := p.postRepository.GetPostOwnerForUpdate(ctx, postID)
	if err != nil {
		return err
	}

	if ownerID != actor.UserID {
		logger.FromContext(ctx).Warn().
			Str("func", "*postService.checkOwnership").
			Int64("post_id", postID).
			Int64("actor_id", actor.UserID).
			Msg("mutation of a foreign post rejected")
		return ErrForbidden
	}

	return nil
}
