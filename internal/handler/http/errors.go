// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request, before the service layer
// is reached. Callers can match against them with [errors.Is].
var (
	// ErrMalformedBody is returned when the request body is not a single
	// JSON object of the expected shape, including when it carries unknown
	// fields.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrInvalidPathParam is returned when a path parameter such as {id}
	// is not an integer.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrInvalidQueryParam is returned when limit or skip cannot be parsed.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrNoAuthenticatedUser is returned when a protected handler runs
	// without the auth middleware having stored a user in the context.
	ErrNoAuthenticatedUser = errors.New("no authenticated user in request context")
)
