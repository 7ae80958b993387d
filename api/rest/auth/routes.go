package auth

import (
	"github.com/LucasBaccaro/fullstack/internal/metrics"
	"github.com/gin-gonic/gin"
)

// registers the public authentication routes. middleware runs before
// both handlers (e.g. an optional rate limit)
func RegisterRoutes(router *gin.RouterGroup, svc AccountService, rec metrics.Recorder, middleware ...gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	authGroup.Use(middleware...)
	{
		authGroup.POST("/signup", SignUp(svc, rec))
		authGroup.POST("/login", Login(svc))
	}
}
