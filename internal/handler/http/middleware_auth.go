// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to a
// user via [service.AuthService.CurrentUser] and, on success, stores the
// full [models.User] in the request context with [utils.WithUser] before
// delegating to the next handler.
//
// The user is read on the request's DB session, so auth must run inside
// withDBSession.
//
// The middleware rejects requests with HTTP 401 Unauthorized and a
// "WWW-Authenticate: Bearer" header in the following cases:
//   - The header is absent or not of the form "Bearer <token>"
//     ("Not authenticated").
//   - The token has expired ("Token expired").
//   - The token is otherwise invalid or its user no longer exists
//     ("Could not validate credentials").
//
// The token itself is never logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("missing or malformed bearer token")
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.CurrentUser(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
