// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-posts/models"
	"github.com/go-playground/validator/v10"
)

// StructValidator validates the request models through their `validate`
// struct tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a Validator that reports fields by their JSON
// names.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(tagMaxBytes, maxBytes)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &StructValidator{validate: v}
}

// Validate checks every tagged field of obj.
func (v *StructValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.UserCreate, models.Credentials, models.PostInput, models.PostFilter:
		return v.validateStruct(ctx, value)
	case *models.UserCreate:
		return v.validateStruct(ctx, *value)
	case *models.Credentials:
		return v.validateStruct(ctx, *value)
	case *models.PostInput:
		return v.validateStruct(ctx, *value)
	case *models.PostFilter:
		return v.validateStruct(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *StructValidator) validateStruct(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	result := &ValidationError{Fields: make([]models.FieldError, 0, len(validationErrs))}
	for _, fe := range validationErrs {
		result.Fields = append(result.Fields, models.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}

	return result
}

// tagMaxBytes limits the UTF-8 encoded length of a string, where max
// counts characters.
const tagMaxBytes = "maxbytes"

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "min":
		if isString {
			return fmt.Sprintf("ensure this value has at least %s characters", fe.Param())
		}
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
		}
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case tagMaxBytes:
		return fmt.Sprintf("ensure this value has at most %s bytes", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
