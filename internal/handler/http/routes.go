// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Trailing slashes are stripped before routing, so
// /posts and /posts/ reach the same handler.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	router.Use(middleware.StripSlashes)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Handle("/metrics", h.metrics.handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withDBSession)

		// routes without authorization
		r.Post("/login", h.login)
		r.Post("/users", h.register)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users/{id}", h.getUser)

			r.Get("/posts", h.listPosts)
			r.Post("/posts", h.createPost)
			r.Get("/posts/{id}", h.getPost)
			r.Put("/posts/{id}", h.updatePost)
			r.Delete("/posts/{id}", h.deletePost)
		})
	})

	return router
}
