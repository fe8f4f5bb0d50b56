// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-posts/internal/app"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/go-chi/chi/v5"
)

// errorStatus binds a sentinel error to the response it produces. detail
// builds the message from the request, so that 404s can name the id.
type errorStatus struct {
	target error
	status int
	detail func(r *http.Request) string
}

func staticDetail(msg string) func(*http.Request) string {
	return func(*http.Request) string { return msg }
}

// errorStatuses is checked in order; the first match wins. Authentication
// errors come before not-found so that a token whose user was deleted is a
// 401 and not a 404.
var errorStatuses = []errorStatus{
	{service.ErrTokenIsExpired, http.StatusUnauthorized, staticDetail(app.MsgTokenIsExpired)},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized, staticDetail(app.MsgTokenIsInvalid)},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, staticDetail(app.MsgNotAuthenticated)},
	{ErrNoAuthenticatedUser, http.StatusUnauthorized, staticDetail(app.MsgNotAuthenticated)},

	{service.ErrInvalidCredentials, http.StatusForbidden, staticDetail(app.MsgInvalidCredentials)},
	{service.ErrForbidden, http.StatusForbidden, staticDetail(app.MsgAccessDenied)},

	{store.ErrPostNotFound, http.StatusNotFound, func(r *http.Request) string {
		return fmt.Sprintf(app.MsgPostNotFound, chi.URLParam(r, "id"))
	}},
	{store.ErrUserNotFound, http.StatusNotFound, func(r *http.Request) string {
		return fmt.Sprintf(app.MsgUserNotFound, chi.URLParam(r, "id"))
	}},

	{store.ErrEmailAlreadyExists, http.StatusConflict, staticDetail(app.MsgEmailAlreadyExists)},

	{ErrMalformedBody, http.StatusUnprocessableEntity, staticDetail(app.MsgInvalidDataProvided)},
	{ErrInvalidPathParam, http.StatusUnprocessableEntity, staticDetail(app.MsgInvalidDataProvided)},
	{ErrInvalidQueryParam, http.StatusUnprocessableEntity, staticDetail(app.MsgInvalidDataProvided)},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable, staticDetail(app.MsgServiceUnavailable)},
}

// writeError logs err and renders it as a {"detail": ...} body. Every 401
// carries the bearer challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, detail := describeError(r, err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	utils.WriteDetail(w, detail, status)
}

// describeError resolves the status and detail for err. A
// [*validators.ValidationError] anywhere in the chain yields a 422 listing
// the offending fields.
func describeError(r *http.Request, err error) (int, any) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, validationErr.Fields
	}

	for _, es := range errorStatuses {
		if !errors.Is(err, es.target) {
			continue
		}
		return es.status, es.detail(r)
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}
