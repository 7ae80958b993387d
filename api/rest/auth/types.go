package auth

import (
	"context"

	"github.com/LucasBaccaro/fullstack/tutor/accounts"
)

// account operations behind the auth endpoints
type AccountService interface {
	SignUp(ctx context.Context, email, password string) (*accounts.Result, error)
	Login(ctx context.Context, email, password string) (*accounts.Result, error)
}

// empty values are passed through so the identity provider decides whether
// they are acceptable
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type SessionResponse struct {
	User    UserResponse  `json:"user"`
	Session TokenResponse `json:"session"`
}
