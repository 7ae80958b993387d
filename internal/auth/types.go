package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// returned for every token that must not be trusted
var ErrInvalidToken = errors.New("invalid or expired token")

// verified access token contents
type Claims struct {
	Subject string
	Email   string
	Role    string

	// full claim set as signed by the auth provider
	Raw jwt.MapClaims
}

// gin context keys set by AuthMiddleware
const (
	contextUserID    = "user_id"
	contextUserEmail = "user_email"
	contextClaims    = "claims"
)
