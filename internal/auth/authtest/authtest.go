// Package authtest signs access tokens the way the auth provider does, for
// tests that need to drive AuthMiddleware end to end.
package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const Secret = "test-secret-key-for-testing"

// signs an HS256 token for subject that expires after ttl
func SignToken(t testing.TB, subject string, ttl time.Duration) string {
	t.Helper()

	return SignClaims(t, jwt.MapClaims{
		"sub":   subject,
		"email": subject + "@example.com",
		"role":  "authenticated",
		"aud":   "authenticated",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	})
}

// signs arbitrary claims with Secret
func SignClaims(t testing.TB, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(Secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	return token
}
