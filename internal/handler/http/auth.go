// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.UserCreate
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	_, _ = utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := credentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Msg("user logged in")
	_, _ = utils.WriteJSON(w, token, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
