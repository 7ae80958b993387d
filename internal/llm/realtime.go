package llm

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

// shared HTTP client for realtime API calls
// the per-call bound comes from RealtimeConfig.Timeout via the request context
var realtimeHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// requests ephemeral realtime credentials on behalf of authenticated users.
// the api key never leaves this struct
type RealtimeBroker struct {
	config     RealtimeConfig
	session    *SessionTemplate
	httpClient *http.Client
}

func NewRealtimeBroker(config RealtimeConfig, session *SessionTemplate) (*RealtimeBroker, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("realtime api key is required")
	}

	if session == nil {
		return nil, fmt.Errorf("session template cannot be nil")
	}

	config = applyRealtimeDefaults(config)

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = realtimeHTTPClient
	}

	return &RealtimeBroker{
		config:     config,
		session:    session,
		httpClient: httpClient,
	}, nil
}

// makes exactly one call to the sessions endpoint and folds every outcome
// into a MintResult. it never returns an error and never retries
func (b *RealtimeBroker) MintEphemeralKey(ctx context.Context, topic string) MintResult {
	reqBody := sessionRequest{
		Model:        b.config.Model,
		Voice:        b.config.Voice,
		Instructions: b.session.BuildInstructions(topic),
		Tools:        b.session.Tools,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return unexpectedFailure(err)
	}

	ctx, cancel := context.WithTimeout(ctx, b.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.config.SessionsURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return unexpectedFailure(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", b.config.APIKey))

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return networkFailure(err)
	}

	defer resp.Body.Close() //nolint:errcheck // response body

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkFailure(err)
	}

	if resp.StatusCode != http.StatusOK {
		return MintResult{
			Success: false,
			Error:   "provider error: " + providerErrorMessage(body),
			Status:  resp.StatusCode,
		}
	}

	var sessResp sessionResponse
	if err := json.Unmarshal(body, &sessResp); err != nil {
		return unexpectedFailure(fmt.Errorf("failed to decode response: %w", err))
	}

	if !hasClientSecret(sessResp.ClientSecret) {
		return MintResult{Success: false, Error: "provider response missing client_secret"}
	}

	return MintResult{Success: true, ClientSecret: sessResp.ClientSecret}
}

func networkFailure(err error) MintResult {
	return MintResult{Success: false, Error: "network error: " + err.Error()}
}

func unexpectedFailure(err error) MintResult {
	return MintResult{Success: false, Error: "unexpected error: " + err.Error()}
}

// prefers error.message from a JSON error body, otherwise the raw body
func providerErrorMessage(body []byte) string {
	var errResp providerErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}

	return string(body)
}

// every falsy JSON value counts as missing: absent, null, false, 0, "", {} and []
func hasClientSecret(raw json.RawMessage) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return false
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return false
	}

	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	}

	return true
}

// short label for metrics and logs
func (r MintResult) Outcome() string {
	switch {
	case r.Success:
		return "success"
	case r.Status != 0:
		return "provider_error"
	case strings.HasPrefix(r.Error, "network error"):
		return "network_error"
	case strings.HasPrefix(r.Error, "provider response missing"):
		return "missing_client_secret"
	default:
		return "unexpected_error"
	}
}
