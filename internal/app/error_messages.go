// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-posts server handlers and middleware.
//
// All Msg* constants are the human-readable strings written into the
// "detail" member of error response bodies. Clients match on some of them,
// so the wording is part of the API.
package app

const (
	// MsgNotAuthenticated is returned when the Authorization header is
	// absent or not a bearer token.
	MsgNotAuthenticated = "Not authenticated"

	// MsgTokenIsExpired is returned when a bearer token is well formed and
	// correctly signed but its expiry time has passed.
	MsgTokenIsExpired = "Token expired"

	// MsgTokenIsInvalid is returned when a bearer token cannot be verified
	// or its user no longer exists.
	MsgTokenIsInvalid = "Could not validate credentials"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// modify a post that belongs to a different user.
	MsgAccessDenied = "Not authorized to perform requested action"

	// MsgInvalidCredentials is returned by login for an unknown email as
	// well as for a wrong password.
	MsgInvalidCredentials = "Invalid Credentials"

	// MsgEmailAlreadyExists is returned when registration is rejected
	// because the email is already in use.
	MsgEmailAlreadyExists = "Email already registered"

	// MsgPostNotFound is a format taking the requested post id.
	MsgPostNotFound = "Post with id %s not found"

	// MsgUserNotFound is a format taking the requested user id.
	MsgUserNotFound = "User with id: %s does not exist"

	// MsgInvalidDataProvided is returned when a body, path or query
	// parameter cannot be decoded.
	MsgInvalidDataProvided = "Unprocessable Entity"

	// MsgServiceUnavailable is returned when the database cannot be reached.
	MsgServiceUnavailable = "Service Unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
)
