package service

import "errors"

var (
	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenIsInvalid      = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrForbidden is returned when a user mutates a post they do not own.
	ErrForbidden = errors.New("not authorized to perform requested action")

	ErrInvalidServiceConfig = errors.New("invalid service configuration")
)
