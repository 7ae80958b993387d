package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const (
	defaultRealtimeModel       = "gpt-4o-mini-realtime-preview-2024-12-17"
	defaultRealtimeVoice       = "shimmer"
	defaultRealtimeSessionsURL = "https://api.openai.com/v1/realtime/sessions"
	defaultRealtimeTimeout     = 15 * time.Second
)

// mints short-lived client credentials for a realtime voice session
type SessionMinter interface {
	MintEphemeralKey(ctx context.Context, topic string) MintResult
}

// holds configuration for the realtime session broker
type RealtimeConfig struct {
	APIKey      string
	Model       string        // e.g., "gpt-4o-mini-realtime-preview-2024-12-17"
	Voice       string        // e.g., "shimmer"
	SessionsURL string        // realtime sessions endpoint
	Timeout     time.Duration // bound on the single outbound call
	HTTPClient  *http.Client  // optional, shared client used when nil
}

// normalized outcome of a mint attempt. Success is true only when the
// provider handed back a usable client secret
type MintResult struct {
	Success      bool            `json:"success"`
	ClientSecret json.RawMessage `json:"client_secret,omitempty" swaggertype:"object"`
	Error        string          `json:"error,omitempty"`
	Status       int             `json:"status,omitempty"`
}

// static prompt and tool definitions loaded from session.yaml
type SessionTemplate struct {
	Instructions string `yaml:"instructions"`
	TopicPrefix  string `yaml:"topic_prefix"`
	Tools        []Tool `yaml:"tools"`
}

// function tool exposed to the realtime model
type Tool struct {
	Type        string         `yaml:"type" json:"type"`
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Parameters  map[string]any `yaml:"parameters" json:"parameters"`
}

type sessionRequest struct {
	Model        string `json:"model"`
	Voice        string `json:"voice"`
	Instructions string `json:"instructions"`
	Tools        []Tool `json:"tools"`
}

type sessionResponse struct {
	ClientSecret json.RawMessage `json:"client_secret"`
}

type providerErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
