package health

import (
	"context"
	"net/http"
	"time"

	"github.com/LucasBaccaro/fullstack/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	serviceName  = "voice-tutor"
	version      = "1.0.0"
	readyTimeout = 2 * time.Second
)

// Welcome godoc
// @Summary API welcome message
// @Tags health
// @Produce json
// @Success 200 {object} WelcomeResponse
// @Router / [get]
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{Message: "Welcome to the Voice App API"})
}

// Handler godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: serviceName,
		Version: version,
	})
}

// Ready godoc
// @Summary Readiness check
// @Description Verifies the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /health/ready [get]
func Ready(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.FromContext(c.Request.Context()).Error("readiness check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", Database: "unreachable"})
			return
		}

		c.JSON(http.StatusOK, ReadyResponse{Status: "ready", Database: "ok"})
	}
}
