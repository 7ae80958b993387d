package main

import (
	"github.com/LucasBaccaro/fullstack/internal/auth"
	"github.com/LucasBaccaro/fullstack/internal/config"
	"github.com/LucasBaccaro/fullstack/internal/identity"
	"github.com/LucasBaccaro/fullstack/internal/llm"
	"github.com/LucasBaccaro/fullstack/internal/metrics"
	"github.com/LucasBaccaro/fullstack/internal/ratelimit"
	"github.com/LucasBaccaro/fullstack/internal/storage"
	"github.com/LucasBaccaro/fullstack/tutor/accounts"
	"github.com/LucasBaccaro/fullstack/tutor/profiles"
	"github.com/LucasBaccaro/fullstack/tutor/progress"
	"github.com/LucasBaccaro/fullstack/tutor/topics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *storage.Client
	config      *config.Config
	profileRepo *profiles.Repository
	topicRepo   *topics.Repository
	progressRep *progress.Repository
	services    *Services
	router      *gin.Engine
}

// holds the external clients and cross-cutting services
type Services struct {
	Verifier *auth.Verifier
	Identity *identity.Client
	Broker   *llm.RealtimeBroker
	Accounts *accounts.Service

	// nil when AUTH_RATE_LIMIT is unset
	AuthLimiter *ratelimit.Limiter

	Metrics  metrics.Recorder
	Registry *prometheus.Registry
}
