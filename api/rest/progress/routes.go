package progress

import (
	"github.com/gin-gonic/gin"
)

// registers progress routes on an already authenticated group
func RegisterRoutes(router *gin.RouterGroup, store LogStore) {
	router.GET("/progress", ListProgress(store))
	router.POST("/progress", CreateProgress(store))
}
