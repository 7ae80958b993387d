package config

import "time"

type Config struct {
	Port        string
	Environment string

	// supabase auth (GoTrue) endpoint and service key
	SupabaseURL string
	SupabaseKey string

	// shared HMAC secret the auth provider signs access tokens with
	SupabaseJWTSecret string

	// direct postgres connection to the supabase database
	SupabaseConnString string

	OpenAIKey           string
	RealtimeModel       string
	RealtimeVoice       string
	RealtimeSessionsURL string
	RealtimeTimeout     time.Duration

	CORSAllowedOrigins []string

	// limiter formatted rate for /auth routes, e.g. "20-M". empty disables it
	AuthRateLimit string
	RedisURL      string

	MetricsEnabled bool
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

type MigrateFlags struct {
	DatabaseURL string
	Down        bool
	Steps       int
}
