// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request models against their `validate` struct
// tags and reports every failing field at once.
//
// The services validate user input before touching the store; the HTTP
// handler turns a [*ValidationError] into a 422 response listing the fields.
package validators

import "context"

// Validator checks v against its `validate` tags. A failure is a
// [*ValidationError] that matches [ErrValidation].
type Validator interface {
	Validate(ctx context.Context, v any) error
}
