package main

import (
	"fmt"

	"github.com/LucasBaccaro/fullstack/internal/auth"
	"github.com/LucasBaccaro/fullstack/internal/config"
	"github.com/LucasBaccaro/fullstack/internal/identity"
	"github.com/LucasBaccaro/fullstack/internal/llm"
	"github.com/LucasBaccaro/fullstack/internal/metrics"
	"github.com/LucasBaccaro/fullstack/internal/ratelimit"
	"github.com/LucasBaccaro/fullstack/tutor/accounts"
	"github.com/LucasBaccaro/fullstack/tutor/profiles"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, profileRepo *profiles.Repository) (*Services, error) {
	verifier, err := auth.NewVerifier(cfg.SupabaseJWTSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create token verifier: %w", err)
	}

	identityClient, err := identity.NewClient(identity.Config{
		BaseURL: cfg.SupabaseURL,
		APIKey:  cfg.SupabaseKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}

	session, err := llm.LoadSessionTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load session template: %w", err)
	}

	broker, err := llm.NewRealtimeBroker(llm.RealtimeConfig{
		APIKey:      cfg.OpenAIKey,
		Model:       cfg.RealtimeModel,
		Voice:       cfg.RealtimeVoice,
		SessionsURL: cfg.RealtimeSessionsURL,
		Timeout:     cfg.RealtimeTimeout,
	}, session)
	if err != nil {
		return nil, fmt.Errorf("failed to create realtime broker: %w", err)
	}

	limiter, err := ratelimit.New(ratelimit.Config{
		Rate:     cfg.AuthRateLimit,
		RedisURL: cfg.RedisURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create auth rate limiter: %w", err)
	}

	services := &Services{
		Verifier:    verifier,
		Identity:    identityClient,
		Broker:      broker,
		Accounts:    accounts.NewService(identityClient, profileRepo),
		AuthLimiter: limiter,
		Metrics:     metrics.Noop{},
	}

	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		services.Registry = registry
		services.Metrics = metrics.NewCollector(registry)
	}

	return services, nil
}
