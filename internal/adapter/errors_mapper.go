// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-posts/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrValidation,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := responseDetail(resp)

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

// responseDetail renders the server's {"detail": ...} body as text, falling
// back to the raw body or the status text.
func responseDetail(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var errResp struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal([]byte(body), &errResp); err == nil && len(errResp.Detail) > 0 {
		var msg string
		if json.Unmarshal(errResp.Detail, &msg) == nil {
			return msg
		}

		var fields []models.FieldError
		if json.Unmarshal(errResp.Detail, &fields) == nil && len(fields) > 0 {
			parts := make([]string, 0, len(fields))
			for _, f := range fields {
				parts = append(parts, f.Field+": "+f.Message)
			}
			return strings.Join(parts, "; ")
		}
	}

	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
