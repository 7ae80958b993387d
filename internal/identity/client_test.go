package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL + "/", APIKey: "service-key"})
	require.NoError(t, err)

	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{APIKey: "k"})
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "https://x.supabase.co"})
	assert.Error(t, err)
}

func TestCreateUser_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, adminUsersPath, r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])
		assert.Equal(t, "secret123", body["password"])
		assert.Equal(t, true, body["email_confirm"], "accounts are created pre-confirmed")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"3f1c7a52-7d2b-4d7e-9b1a-2c5e8f0a6b11","email":"ana@example.com","aud":"authenticated"}`))
	})

	user, err := client.CreateUser(context.Background(), "ana@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "3f1c7a52-7d2b-4d7e-9b1a-2c5e8f0a6b11", user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestSignInWithPassword_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		_, _ = w.Write([]byte(`{
			"access_token": "jwt-token",
			"token_type": "bearer",
			"expires_in": 3600,
			"refresh_token": "refresh",
			"user": {"id": "user-1", "email": "ana@example.com"}
		}`))
	})

	session, err := client.SignInWithPassword(context.Background(), "ana@example.com", "secret123")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.AccessToken)
	assert.Equal(t, "bearer", session.TokenType)
	assert.Equal(t, 3600, session.ExpiresIn)
	require.NotNil(t, session.User)
	assert.Equal(t, "user-1", session.User.ID)
}

func TestAPIErrorShapes(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		code    string
		message string
	}{
		{
			name:    "current error_code shape",
			status:  http.StatusUnprocessableEntity,
			body:    `{"code":422,"error_code":"weak_password","msg":"Password should be at least 6 characters."}`,
			code:    "weak_password",
			message: "Password should be at least 6 characters.",
		},
		{
			name:    "legacy msg only",
			status:  http.StatusBadRequest,
			body:    `{"code":400,"msg":"User already registered"}`,
			code:    "",
			message: "User already registered",
		},
		{
			name:    "string code",
			status:  http.StatusUnprocessableEntity,
			body:    `{"code":"email_exists","message":"A user with this email address has already been registered"}`,
			code:    "email_exists",
			message: "A user with this email address has already been registered",
		},
		{
			name:    "oauth grant error",
			status:  http.StatusBadRequest,
			body:    `{"error":"invalid_grant","error_description":"Invalid login credentials"}`,
			code:    "invalid_grant",
			message: "Invalid login credentials",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "upstream unavailable",
			code:    "",
			message: "upstream unavailable",
		},
		{
			name:    "empty body",
			status:  http.StatusServiceUnavailable,
			body:    "",
			code:    "",
			message: "Service Unavailable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := client.SignInWithPassword(context.Background(), "a@b.c", "pw")

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "expected *APIError, got %v", err)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.code, apiErr.Code)
			assert.Equal(t, tc.message, apiErr.Message)
		})
	}
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, APIKey: "k"})
	require.NoError(t, err)

	_, err = client.CreateUser(context.Background(), "a@b.c", "pw")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not provider auth errors")
}

func TestMalformedSuccessBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	_, err := client.CreateUser(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}
