package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	adminUsersPath    = "/auth/v1/admin/users"
	passwordGrantPath = "/auth/v1/token?grant_type=password"

	// upper bound on error bodies we keep around for messages
	maxErrorBodyBytes = 64 << 10
)

// shared HTTP client for auth provider calls
var identityHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// talks to the supabase auth (GoTrue) REST API
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("identity base url is required")
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("identity api key is required")
	}

	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = identityHTTPClient
	}

	return &Client{config: config, httpClient: httpClient}, nil
}

// creates an account with email confirmation already satisfied, so no
// verification mail is sent and the account can log in immediately
func (c *Client) CreateUser(ctx context.Context, email, password string) (*User, error) {
	var user User

	err := c.post(ctx, adminUsersPath, createUserRequest{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
	}, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// exchanges email and password for a session
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	var session Session

	err := c.post(ctx, passwordGrantPath, passwordGrantRequest{
		Email:    email,
		Password: password,
	}, &session)
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.config.APIKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.config.APIKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck // response body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes)) //nolint:errcheck // best-effort error body
		return parseAPIError(resp.StatusCode, raw)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}

		return apiErr
	}

	apiErr.Code = body.ErrorCode
	if apiErr.Code == "" {
		// older servers put a string code in "code" or an oauth code in "error"
		var code string
		if json.Unmarshal(body.Code, &code) == nil {
			apiErr.Code = code
		} else if body.Error != "" && body.ErrorDescription != "" {
			apiErr.Code = body.Error
		}
	}

	apiErr.Message = firstNonEmpty(body.Msg, body.Message, body.ErrorDescription, body.Error, http.StatusText(status))

	return apiErr
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}

	return ""
}
