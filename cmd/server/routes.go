package main

import (
	"net/http"
	"time"

	"github.com/LucasBaccaro/fullstack/api/rest/auth"
	"github.com/LucasBaccaro/fullstack/api/rest/health"
	"github.com/LucasBaccaro/fullstack/api/rest/profile"
	"github.com/LucasBaccaro/fullstack/api/rest/progress"
	"github.com/LucasBaccaro/fullstack/api/rest/realtime"
	"github.com/LucasBaccaro/fullstack/api/rest/topics"
	_ "github.com/LucasBaccaro/fullstack/docs" // registers the swagger document
	authmw "github.com/LucasBaccaro/fullstack/internal/auth"
	"github.com/LucasBaccaro/fullstack/internal/logger"
	"github.com/LucasBaccaro/fullstack/internal/metrics"
	"github.com/LucasBaccaro/fullstack/internal/tracing"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	services := server.services

	router.Use(gin.Recovery())

	if tracing.Enabled() {
		router.Use(tracing.Middleware(serviceName))
	}

	router.Use(logger.Middleware())
	router.Use(metrics.Middleware(services.Metrics))
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))

	health.RegisterRoutes(router, server.db)
	router.GET("/swagger/doc.json", swaggerDoc)

	if services.Registry != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(services.Registry)))
	}

	public := router.Group("")
	{
		var authMiddleware []gin.HandlerFunc
		if services.AuthLimiter != nil {
			authMiddleware = append(authMiddleware, services.AuthLimiter.Middleware())
		}

		auth.RegisterRoutes(public, services.Accounts, services.Metrics, authMiddleware...)
	}

	protected := router.Group("", authmw.AuthMiddleware(services.Verifier))
	{
		realtime.RegisterRoutes(protected, services.Broker, services.Metrics)
		profile.RegisterRoutes(protected, server.profileRepo)
		topics.RegisterRoutes(protected, server.topicRepo)
		progress.RegisterRoutes(protected, server.progressRep)
	}
}

// wildcard origins cannot be combined with credentials, so credentials are
// only allowed for an explicit origin list
func CORSMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", logger.RequestIDHeader},
		ExposeHeaders: []string{logger.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}

	return cors.New(cfg)
}

func swaggerDoc(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
