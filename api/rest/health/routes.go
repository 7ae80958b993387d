package health

import "github.com/gin-gonic/gin"

// public probes; no authentication
func RegisterRoutes(router gin.IRoutes, db Pinger) {
	router.GET("/", Welcome)
	router.GET("/health", Handler)
	router.GET("/health/ready", Ready(db))
}
