package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/LucasBaccaro/fullstack/internal/config"
	"github.com/LucasBaccaro/fullstack/internal/logger"
	"github.com/LucasBaccaro/fullstack/internal/tracing"
)

const (
	serviceName    = "voice-tutor"
	serviceVersion = "1.0.0"
)

// @title Voice Tutor API
// @version 1.0
// @description Backend for a voice-first English tutoring app
// @description
// @description Features:
// @description - Email and password accounts with automatic profile bootstrap
// @description - Ephemeral realtime voice session keys
// @description - Conversation topics and completion tracking
// @description - Per-session progress logs

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Access token issued by the auth provider. Format: Bearer {token}

func main() {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	logger.Setup(cfg.Environment)
	logger.Info("starting voice tutor server", "environment", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := tracing.Init(ctx, tracing.Config{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		Version:     serviceVersion,
	})

	srv, err := NewServer(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// leaves room for the realtime provider call bound
		WriteTimeout: cfg.RealtimeTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	srv.Close()

	logger.Info("server stopped")
}
