// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
)

// withDBSession acquires one connection from the pool per request and
// makes it the request's session. The connection goes back to the pool
// when the handler returns, whether it succeeded, failed or panicked.
func (h *Handler) withDBSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		conn, err := h.sessions.Session(ctx)
		if err != nil {
			writeError(w, r, err)
			return
		}
		defer func() {
			if closeErr := conn.Close(); closeErr != nil {
				log.Err(closeErr).Msg("releasing db session failed")
			}
		}()

		next.ServeHTTP(w, r.WithContext(store.WithSession(ctx, conn)))
	})
}
