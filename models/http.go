// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every non-2xx response.
//
// Detail is a plain message for most errors and a list of [FieldError] for
// validation failures.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
