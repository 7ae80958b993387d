package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LucasBaccaro/fullstack/internal/identity"
	"github.com/LucasBaccaro/fullstack/internal/logger"
)

const (
	msgDuplicateEmail  = "a user with this email already exists"
	msgWeakPassword    = "password should be at least 6 characters"
	msgInvalidEmail    = "email address is not valid"
	msgNoAccount       = "could not create the account right now"
	msgNoSession       = "could not establish a session after registration"
	msgBadCredentials  = "invalid email or password"
	msgUnexpectedError = "an unexpected error occurred, please try again"
)

func NewService(identityProvider IdentityProvider, profiles ProfileCreator) *Service {
	return &Service{identity: identityProvider, profiles: profiles}
}

// registers an account without email verification, logs it in and
// bootstraps its profile. a failed profile insert does not fail the sign-up
func (s *Service) SignUp(ctx context.Context, email, password string) (*Result, error) {
	result := &Result{State: StateStart}

	user, err := s.identity.CreateUser(ctx, email, password)
	if err != nil {
		result.State = StateAccountCreationFailed
		return result, translateProviderError(err)
	}

	if user == nil || user.ID == "" {
		result.State = StateAccountCreationFailed
		return result, &Error{Kind: KindBadRequest, Message: msgNoAccount}
	}

	result.State = StateAccountCreated

	session, err := s.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		result.State = StateSessionEstablishmentFailed

		var apiErr *identity.APIError
		if errors.As(err, &apiErr) {
			return result, &Error{Kind: KindUnauthorized, Message: msgNoSession, Err: err}
		}

		return result, &Error{Kind: KindInternal, Message: msgUnexpectedError, Err: err}
	}

	if session == nil || session.User == nil || session.AccessToken == "" {
		result.State = StateSessionEstablishmentFailed
		return result, &Error{Kind: KindUnauthorized, Message: msgNoSession}
	}

	result.State = StateSessionEstablished
	fillSession(result, session)

	if err := s.profiles.Create(ctx, session.User.ID); err != nil {
		result.State = StateProfileBootstrapFailed

		logger.FromContext(ctx).Warn("profile bootstrap failed",
			"user_id", session.User.ID,
			"error", err,
		)
	} else {
		result.State = StateProfileBootstrapped
	}

	return result, nil
}

// authenticates with email and password. every provider refusal looks the
// same so callers cannot tell whether the email is registered
func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	result := &Result{State: StateStart}

	session, err := s.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		result.State = StateSessionEstablishmentFailed

		var apiErr *identity.APIError
		if errors.As(err, &apiErr) {
			return result, &Error{Kind: KindUnauthorized, Message: msgBadCredentials, Err: err}
		}

		return result, &Error{Kind: KindInternal, Message: msgUnexpectedError, Err: err}
	}

	if session == nil || session.User == nil || session.AccessToken == "" {
		result.State = StateSessionEstablishmentFailed
		return result, &Error{Kind: KindUnauthorized, Message: msgBadCredentials}
	}

	result.State = StateSessionEstablished
	fillSession(result, session)

	return result, nil
}

func fillSession(result *Result, session *identity.Session) {
	result.UserID = session.User.ID
	result.Email = session.User.Email
	result.AccessToken = session.AccessToken
	result.TokenType = session.TokenType
}

// maps an account creation failure to a caller-facing error. structured
// provider codes win; message matching covers servers that send none
func translateProviderError(err error) *Error {
	var apiErr *identity.APIError
	if !errors.As(err, &apiErr) {
		return &Error{Kind: KindInternal, Message: msgUnexpectedError, Err: err}
	}

	switch apiErr.Code {
	case "user_already_exists", "email_exists":
		return &Error{Kind: KindConflict, Message: msgDuplicateEmail, Err: err}
	case "weak_password":
		return &Error{Kind: KindUnprocessable, Message: msgWeakPassword, Err: err}
	case "email_address_invalid", "validation_failed":
		if apiErr.Code == "email_address_invalid" || strings.Contains(apiErr.Message, "email") {
			return &Error{Kind: KindUnprocessable, Message: msgInvalidEmail, Err: err}
		}
	}

	switch {
	case strings.Contains(apiErr.Message, "User already registered"),
		strings.Contains(apiErr.Message, "already been registered"):
		return &Error{Kind: KindConflict, Message: msgDuplicateEmail, Err: err}
	case strings.Contains(apiErr.Message, "Password should be at least"):
		return &Error{Kind: KindUnprocessable, Message: msgWeakPassword, Err: err}
	case strings.Contains(apiErr.Message, "Unable to validate email address"):
		return &Error{Kind: KindUnprocessable, Message: msgInvalidEmail, Err: err}
	}

	return &Error{
		Kind:    KindBadRequest,
		Message: fmt.Sprintf("authentication error: %s", apiErr.Message),
		Err:     err,
	}
}
