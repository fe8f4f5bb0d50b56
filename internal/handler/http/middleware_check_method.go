// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"sort"
	"strings"

	"github.com/MKhiriev/go-posts/internal/app"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers with HTTP 405 and a JSON {"detail": "Method Not Allowed"}
// body. The Allow header lists the methods registered for the matched
// route, so that clients can discover what the path supports.
//
// The route is found by asking router to match the request path for each
// known method; parameterised patterns such as /posts/{id} are matched the
// same way chi routes them.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		utils.WriteDetail(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}

// routeNotFound answers unknown paths with a JSON 404.
func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
}

var knownMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

func allowedMethods(router chi.Routes, path string) []string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	var allowed []string
	for _, method := range knownMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	sort.Strings(allowed)
	return allowed
}
