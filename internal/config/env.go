package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "8080"
	defaultEnvironment     = "development"
	defaultRealtimeModel   = "gpt-4o-mini-realtime-preview-2024-12-17"
	defaultRealtimeVoice   = "shimmer"
	defaultSessionsURL     = "https://api.openai.com/v1/realtime/sessions"
	defaultRealtimeTimeout = 15 * time.Second
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	required := map[string]string{
		"SUPABASE_URL":               os.Getenv("SUPABASE_URL"),
		"SUPABASE_KEY":               os.Getenv("SUPABASE_KEY"),
		"SUPABASE_JWT_SECRET":        os.Getenv("SUPABASE_JWT_SECRET"),
		"SUPABASE_CONNECTION_STRING": os.Getenv("SUPABASE_CONNECTION_STRING"),
		"OPENAI_API_KEY":             os.Getenv("OPENAI_API_KEY"),
	}

	// fixed order so the first missing variable is reported deterministically
	for _, name := range []string{
		"SUPABASE_URL",
		"SUPABASE_KEY",
		"SUPABASE_JWT_SECRET",
		"SUPABASE_CONNECTION_STRING",
		"OPENAI_API_KEY",
	} {
		if required[name] == "" {
			return nil, fmt.Errorf("%s environment variable is required", name)
		}
	}

	timeout := defaultRealtimeTimeout
	if raw := os.Getenv("REALTIME_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("REALTIME_TIMEOUT_SECONDS must be a positive integer, got %q", raw)
		}

		timeout = time.Duration(seconds) * time.Second
	}

	metricsEnabled := true
	if raw := os.Getenv("METRICS_ENABLED"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("METRICS_ENABLED must be a boolean, got %q", raw)
		}

		metricsEnabled = enabled
	}

	return &Config{
		Port:                envOrDefault("PORT", defaultPort),
		Environment:         envOrDefault("ENVIRONMENT", defaultEnvironment),
		SupabaseURL:         strings.TrimRight(required["SUPABASE_URL"], "/"),
		SupabaseKey:         required["SUPABASE_KEY"],
		SupabaseJWTSecret:   required["SUPABASE_JWT_SECRET"],
		SupabaseConnString:  required["SUPABASE_CONNECTION_STRING"],
		OpenAIKey:           required["OPENAI_API_KEY"],
		RealtimeModel:       envOrDefault("REALTIME_MODEL", defaultRealtimeModel),
		RealtimeVoice:       envOrDefault("REALTIME_VOICE", defaultRealtimeVoice),
		RealtimeSessionsURL: envOrDefault("REALTIME_SESSIONS_URL", defaultSessionsURL),
		RealtimeTimeout:     timeout,
		CORSAllowedOrigins:  splitList(envOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		AuthRateLimit:       strings.TrimSpace(os.Getenv("AUTH_RATE_LIMIT")),
		RedisURL:            os.Getenv("REDIS_URL"),
		MetricsEnabled:      metricsEnabled,
	}, nil
}

func envOrDefault(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}

	return fallback
}

func splitList(raw string) []string {
	var out []string

	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
