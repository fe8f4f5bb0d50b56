package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSignKey = []byte("secret-key")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	token, err := GenerateJWTToken(jwt.SigningMethodHS256, testSignKey, 123, issuedAt, 30*time.Minute)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != 123 {
		t.Errorf("expected user id 123, got %d", token.UserID)
	}
	if !token.ExpiresAt.Equal(issuedAt.Add(30 * time.Minute)) {
		t.Errorf("unexpected expiry %v", token.ExpiresAt)
	}
}

func TestGenerateJWTToken_Deterministic(t *testing.T) {
	issuedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	first, err := GenerateJWTToken(jwt.SigningMethodHS256, testSignKey, 7, issuedAt, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GenerateJWTToken(jwt.SigningMethodHS256, testSignKey, 7, issuedAt, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.SignedString != second.SignedString {
		t.Error("expected identical tokens for identical input and time")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		method   jwt.SigningMethod
		key      []byte
		userID   int64
		duration time.Duration
	}{
		{"nil method", nil, testSignKey, 1, time.Hour},
		{"empty key", jwt.SigningMethodHS256, nil, 1, time.Hour},
		{"zero user", jwt.SigningMethodHS256, testSignKey, 0, time.Hour},
		{"zero duration", jwt.SigningMethodHS256, testSignKey, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.method, tt.key, tt.userID, now, tt.duration)
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuedAt := time.Now()
	token, err := GenerateJWTToken(jwt.SigningMethodHS512, testSignKey, 456, issuedAt, 5*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateAndParseJWTToken(token.SignedString, jwt.SigningMethodHS512, testSignKey, fixedClock(issuedAt.Add(time.Minute)))

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if claims.UserID != 456 {
		t.Errorf("expected userID 456, got %d", claims.UserID)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuedAt := time.Now()
	token, err := GenerateJWTToken(jwt.SigningMethodHS256, testSignKey, 1, issuedAt, 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(token.SignedString, jwt.SigningMethodHS256, testSignKey, fixedClock(issuedAt.Add(31*time.Minute)))

	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, _ := GenerateJWTToken(jwt.SigningMethodHS256, testSignKey, 1, time.Now(), time.Hour)

	_, err := ValidateAndParseJWTToken(token.SignedString, jwt.SigningMethodHS256, []byte("other-key"), time.Now)

	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected jwt.ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestValidateAndParseJWTToken_TamperedPayload(t *testing.T) {
	token, _ := GenerateJWTToken(jwt.SigningMethodHS256, testSignKey, 1, time.Now(), time.Hour)
	forged, _ := GenerateJWTToken(jwt.SigningMethodHS256, testSignKey, 2, time.Now(), time.Hour)

	parts := strings.Split(token.SignedString, ".")
	forgedParts := strings.Split(forged.SignedString, ".")
	tampered := parts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err := ValidateAndParseJWTToken(tampered, jwt.SigningMethodHS256, testSignKey, time.Now)

	if err == nil {
		t.Fatal("expected an error for a tampered payload")
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		t.Error("tampered token must not be reported as expired")
	}
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	token, _ := GenerateJWTToken(jwt.SigningMethodHS384, testSignKey, 1, time.Now(), time.Hour)

	_, err := ValidateAndParseJWTToken(token.SignedString, jwt.SigningMethodHS256, testSignKey, time.Now)

	if err == nil {
		t.Error("expected an error for a token signed with another algorithm")
	}
}

func TestValidateAndParseJWTToken_MissingUserID(t *testing.T) {
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(tokenString, jwt.SigningMethodHS256, testSignKey, time.Now)

	if !errors.Is(err, ErrNoUserIDClaim) {
		t.Errorf("expected ErrNoUserIDClaim, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := jwt.MapClaims{"user_id": 1}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(tokenString, jwt.SigningMethodHS256, testSignKey, time.Now)

	if err == nil {
		t.Error("expected an error for a token without exp")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.jwt", jwt.SigningMethodHS256, testSignKey, time.Now)

	if !errors.Is(err, jwt.ErrTokenMalformed) {
		t.Errorf("expected jwt.ErrTokenMalformed, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer abc  ", "abc", false},
		{"empty", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"scheme and space", "Bearer ", "", true},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", true},
		{"extra parts", "Bearer abc def", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Errorf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
