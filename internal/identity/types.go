package identity

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Config struct {
	// project url, e.g. https://<ref>.supabase.co
	BaseURL string

	// service role key, sent as both apikey and bearer credential
	APIKey string

	// optional, defaults to the shared client
	HTTPClient *http.Client
}

// account as returned by the auth provider
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// result of a successful password login
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

// typed error for any non-2xx answer from the auth provider
type APIError struct {
	Status  int
	Code    string // machine readable error_code, may be empty on older servers
	Message string // human readable message
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("auth provider error %d (%s): %s", e.Status, e.Code, e.Message)
	}

	return fmt.Sprintf("auth provider error %d: %s", e.Status, e.Message)
}

type createUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmailConfirm bool   `json:"email_confirm"`
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// the auth server has used several error shapes across versions
type errorBody struct {
	Code             json.RawMessage `json:"code"`
	ErrorCode        string          `json:"error_code"`
	Msg              string          `json:"msg"`
	Message          string          `json:"message"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}
