// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
	"github.com/MKhiriev/go-posts/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs tokens with a symmetric HMAC key.
type tokenService struct {
	method   jwt.SigningMethod
	signKey  []byte
	duration time.Duration

	// now is replaced in tests.
	now func() time.Time
}

// NewTokenService builds a TokenService from the secret, algorithm and
// lifetime in cfg. Only HS256, HS384 and HS512 are accepted.
func NewTokenService(cfg config.App) (TokenService, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("%w: empty secret key", ErrInvalidServiceConfig)
	}

	method, ok := jwt.GetSigningMethod(cfg.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidServiceConfig, cfg.Algorithm)
	}

	if cfg.TokenDuration() <= 0 {
		return nil, fmt.Errorf("%w: token lifetime must be positive", ErrInvalidServiceConfig)
	}

	return &tokenService{
		method:   method,
		signKey:  []byte(cfg.SecretKey),
		duration: cfg.TokenDuration(),
		now:      time.Now,
	}, nil
}

// Issue signs a token for userID that expires after the configured lifetime.
func (t *tokenService) Issue(ctx context.Context, userID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.method, t.signKey, userID, t.now(), t.duration)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Int64("user_id", userID).Msg("failed to sign token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks the signature, algorithm and expiry of tokenString.
// Expired tokens yield ErrTokenIsExpired, everything else ErrTokenIsInvalid.
func (t *tokenService) Verify(ctx context.Context, tokenString string) (models.TokenClaims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, t.method, t.signKey, t.now)
	if err == nil {
		return claims, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
	}

	return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
}
