package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-posts/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when the signing
	// method, key, user or duration is missing.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT token")

	// ErrNoUserIDClaim is returned when a token verifies but carries no
	// positive "user_id" claim.
	ErrNoUserIDClaim = errors.New("token has no user_id claim")

	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// GenerateJWTToken creates a signed JWT token for userID.
//
// The token carries the following claims:
//   - user_id: the user the token is issued for
//   - iat:     issuedAt
//   - exp:     issuedAt plus tokenDuration
//
// All parameters are required. Returns [ErrInvalidJWTParams] if any of them
// is empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(jwt.SigningMethodHS256, []byte("secret"), 42, time.Now(), 30*time.Minute)
func GenerateJWTToken(method jwt.SigningMethod, signKey []byte, userID int64, issuedAt time.Time, tokenDuration time.Duration) (models.Token, error) {
	if method == nil || len(signKey) == 0 || userID <= 0 || tokenDuration <= 0 {
		return models.Token{}, ErrInvalidJWTParams
	}

	expiresAt := issuedAt.Add(tokenDuration)
	claims := models.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	tokenString, err := jwt.NewWithClaims(method, claims).SignedString(signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, UserID: userID, ExpiresAt: expiresAt}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - the token algorithm must be exactly method
//   - signature verification using signKey
//   - presence of the exp claim and expiry check against now
//   - presence of a positive user_id claim
//
// Errors from the jwt package are wrapped, so callers can tell an expired
// token apart with errors.Is(err, jwt.ErrTokenExpired).
func ValidateAndParseJWTToken(tokenString string, method jwt.SigningMethod, signKey []byte, now func() time.Time) (models.TokenClaims, error) {
	var claims models.TokenClaims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)

	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return signKey, nil
	})
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 {
		return models.TokenClaims{}, ErrNoUserIDClaim
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
