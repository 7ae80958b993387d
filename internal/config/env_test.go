package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("SUPABASE_URL", "https://project.supabase.co/")
	t.Setenv("SUPABASE_KEY", "service-key")
	t.Setenv("SUPABASE_JWT_SECRET", "jwt-secret")
	t.Setenv("SUPABASE_CONNECTION_STRING", "postgres://postgres:pw@localhost:5432/postgres")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	for _, name := range []string{
		"PORT", "ENVIRONMENT", "REALTIME_MODEL", "REALTIME_VOICE", "REALTIME_SESSIONS_URL",
		"REALTIME_TIMEOUT_SECONDS", "CORS_ALLOWED_ORIGINS", "AUTH_RATE_LIMIT", "REDIS_URL", "METRICS_ENABLED",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadEnvironmentVariables_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "https://project.supabase.co", cfg.SupabaseURL, "trailing slash should be trimmed")
	assert.Equal(t, "gpt-4o-mini-realtime-preview-2024-12-17", cfg.RealtimeModel)
	assert.Equal(t, "shimmer", cfg.RealtimeVoice)
	assert.Equal(t, "https://api.openai.com/v1/realtime/sessions", cfg.RealtimeSessionsURL)
	assert.Equal(t, 15*time.Second, cfg.RealtimeTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.AuthRateLimit)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvironmentVariables_MissingRequired(t *testing.T) {
	for _, name := range []string{
		"SUPABASE_URL", "SUPABASE_KEY", "SUPABASE_JWT_SECRET", "SUPABASE_CONNECTION_STRING", "OPENAI_API_KEY",
	} {
		t.Run(name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(name, "")

			_, err := LoadEnvironmentVariables()
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoadEnvironmentVariables_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REALTIME_TIMEOUT_SECONDS", "30")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com ,")
	t.Setenv("AUTH_RATE_LIMIT", "20-M")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadEnvironmentVariables()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Second, cfg.RealtimeTimeout)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "20-M", cfg.AuthRateLimit)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadEnvironmentVariables_InvalidValues(t *testing.T) {
	setRequired(t)
	t.Setenv("REALTIME_TIMEOUT_SECONDS", "soon")

	_, err := LoadEnvironmentVariables()
	assert.Error(t, err)

	setRequired(t)
	t.Setenv("METRICS_ENABLED", "maybe")

	_, err = LoadEnvironmentVariables()
	assert.Error(t, err)
}

func TestParseMigrateFlags(t *testing.T) {
	t.Setenv("SUPABASE_CONNECTION_STRING", "postgres://env")

	flags, err := ParseMigrateFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env", flags.DatabaseURL)
	assert.False(t, flags.Down)
	assert.Zero(t, flags.Steps)

	flags, err = ParseMigrateFlags([]string{"--database-url", "postgres://flag", "--down", "-n", "2"})
	require.NoError(t, err)
	assert.Equal(t, "postgres://flag", flags.DatabaseURL)
	assert.True(t, flags.Down)
	assert.Equal(t, 2, flags.Steps)

	_, err = ParseMigrateFlags([]string{"--steps=-1"})
	assert.Error(t, err)
}

func TestParseMigrateFlags_RequiresURL(t *testing.T) {
	t.Setenv("SUPABASE_CONNECTION_STRING", "")

	_, err := ParseMigrateFlags(nil)
	assert.Error(t, err)
}
