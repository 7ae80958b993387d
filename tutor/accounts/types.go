package accounts

import (
	"context"

	"github.com/LucasBaccaro/fullstack/internal/identity"
)

// account operations the service needs from the auth provider
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password string) (*identity.User, error)
	SignInWithPassword(ctx context.Context, email, password string) (*identity.Session, error)
}

// inserts the profile row for a new account
type ProfileCreator interface {
	Create(ctx context.Context, userID string) error
}

type Service struct {
	identity IdentityProvider
	profiles ProfileCreator
}

// where a sign-up or login attempt ended up
type State string

const (
	StateStart                      State = "start"
	StateAccountCreated             State = "account_created"
	StateSessionEstablished         State = "session_established"
	StateProfileBootstrapped        State = "profile_bootstrapped"
	StateProfileBootstrapFailed     State = "profile_bootstrap_failed"
	StateAccountCreationFailed      State = "account_creation_failed"
	StateSessionEstablishmentFailed State = "session_establishment_failed"
)

// outcome of SignUp or Login. State is set even when an error is returned
type Result struct {
	UserID      string
	Email       string
	AccessToken string
	TokenType   string
	State       State
}

// how a failure should be surfaced to the caller
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindConflict
	KindUnprocessable
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindUnprocessable:
		return "unprocessable"
	default:
		return "internal"
	}
}

// account failure with a caller-safe Message; Err holds the cause for logs
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
