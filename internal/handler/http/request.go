// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds every JSON or form body read by the handlers.
const maxBodyBytes = 1 << 20

const (
	msgNotAnInteger  = "value is not a valid integer"
	msgInvalidJSON   = "request body is not valid JSON"
	msgInvalidForm   = "request body is not a valid form"
	msgTrailingData  = "request body must contain a single JSON object"
	msgUnknownField  = "extra fields not permitted"
	msgBodyTooLarge  = "request body is too large"
	msgWrongJSONType = "value has the wrong type"
)

// decodeJSON reads exactly one JSON object into dst. Unknown fields are
// rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return malformedBody(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrMalformedBody, validators.NewFieldError("body", msgTrailingData))
	}

	return nil
}

func malformedBody(err error) error {
	field, msg := "body", msgInvalidJSON

	var (
		maxBytesErr  *http.MaxBytesError
		typeErr      *json.UnmarshalTypeError
		unknownField string
	)
	switch {
	case errors.As(err, &maxBytesErr):
		msg = msgBodyTooLarge
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			field = typeErr.Field
		}
		msg = msgWrongJSONType
	case parseUnknownField(err, &unknownField):
		field, msg = unknownField, msgUnknownField
	}

	return fmt.Errorf("%w: %w", ErrMalformedBody, validators.NewFieldError(field, msg))
}

// parseUnknownField extracts the field name from the error encoding/json
// reports for DisallowUnknownFields.
func parseUnknownField(err error, field *string) bool {
	quoted, ok := strings.CutPrefix(err.Error(), "json: unknown field ")
	if !ok {
		return false
	}
	name, unquoteErr := strconv.Unquote(quoted)
	if unquoteErr != nil {
		return false
	}
	*field = name
	return true
}

// pathID parses the {id} path parameter. Range checks are left to the
// service layer.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPathParam, validators.NewFieldError("id", msgNotAnInteger))
	}
	return id, nil
}

// postFilter reads limit, skip and search from the query string, falling
// back to the defaults for absent parameters.
func postFilter(r *http.Request) (models.PostFilter, error) {
	filter := models.NewPostFilter()
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.PostFilter{}, fmt.Errorf("%w: %w", ErrInvalidQueryParam, validators.NewFieldError("limit", msgNotAnInteger))
		}
		filter.Limit = limit
	}
	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.PostFilter{}, fmt.Errorf("%w: %w", ErrInvalidQueryParam, validators.NewFieldError("skip", msgNotAnInteger))
		}
		filter.Skip = skip
	}
	filter.Search = query.Get("search")

	return filter, nil
}

// credentials reads the login form. OAuth2 password clients send
// application/x-www-form-urlencoded; a JSON body is accepted as well.
func credentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	var creds models.Credentials

	if isJSON(r) {
		if err := decodeJSON(w, r, &creds); err != nil {
			return models.Credentials{}, err
		}
		return creds, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrMalformedBody, validators.NewFieldError("body", msgInvalidForm))
	}
	creds.Username = r.PostForm.Get("username")
	creds.Password = r.PostForm.Get("password")

	return creds, nil
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
