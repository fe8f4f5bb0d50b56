// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := postFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	posts, err := h.services.PostService.ListPosts(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(ctx, postID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoAuthenticatedUser)
		return
	}

	var input models.PostInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.CreatePost(ctx, user, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("post_id", post.ID).Int64("user_id", user.UserID).Msg("post created")
	_, _ = utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoAuthenticatedUser)
		return
	}

	postID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.PostInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.UpdatePost(ctx, user, postID, input)
	if err != nil {
		log.Debug().Err(err).Int64("post_id", postID).Int64("user_id", user.UserID).Msg("post update rejected")
		writeError(w, r, err)
		return
	}

	log.Info().Int64("post_id", postID).Int64("user_id", user.UserID).Msg("post updated")
	_, _ = utils.WriteJSON(w, post, http.StatusAccepted)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoAuthenticatedUser)
		return
	}

	postID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(ctx, user, postID); err != nil {
		log.Debug().Err(err).Int64("post_id", postID).Int64("user_id", user.UserID).Msg("post deletion rejected")
		writeError(w, r, err)
		return
	}

	log.Info().Int64("post_id", postID).Int64("user_id", user.UserID).Msg("post deleted")
	w.WriteHeader(http.StatusNoContent)
}
