package profile

import (
	"github.com/gin-gonic/gin"
)

// registers profile routes on an already authenticated group
func RegisterRoutes(router *gin.RouterGroup, store ProfileStore) {
	profileGroup := router.Group("/profile")
	{
		profileGroup.GET("/me", GetMe(store))
		profileGroup.PATCH("/me", UpdateMe(store))
	}
}
