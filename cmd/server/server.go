package main

import (
	"context"
	"fmt"

	"github.com/LucasBaccaro/fullstack/internal/config"
	"github.com/LucasBaccaro/fullstack/internal/logger"
	"github.com/LucasBaccaro/fullstack/internal/storage"
	"github.com/LucasBaccaro/fullstack/tutor/profiles"
	"github.com/LucasBaccaro/fullstack/tutor/progress"
	"github.com/LucasBaccaro/fullstack/tutor/topics"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	db, err := storage.NewClient(ctx, cfg.SupabaseConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	profileRepo := profiles.NewRepository(db.DB())
	topicRepo := topics.NewRepository(db.DB())
	progressRepo := progress.NewRepository(db.DB())

	services, err := InitializeServices(cfg, profileRepo)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	server := &Server{
		db:          db,
		config:      cfg,
		profileRepo: profileRepo,
		topicRepo:   topicRepo,
		progressRep: progressRepo,
		services:    services,
		router:      router,
	}

	RegisterRoutes(router, server)

	logger.Info("server initialized",
		"environment", cfg.Environment,
		"realtime_model", cfg.RealtimeModel,
		"metrics", cfg.MetricsEnabled,
		"auth_rate_limit", cfg.AuthRateLimit != "",
	)

	return server, nil
}

// releases the database pool
func (s *Server) Close() {
	s.db.Close()
}
