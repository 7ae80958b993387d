package topics

import (
	"github.com/gin-gonic/gin"
)

// registers topic routes on an already authenticated group
func RegisterRoutes(router *gin.RouterGroup, store TopicStore) {
	topicsGroup := router.Group("/topics")
	{
		topicsGroup.GET("", ListTopics(store))
		topicsGroup.GET("/completed", ListCompletedTopics(store))
		topicsGroup.POST("/:id/complete", CompleteTopic(store))
	}
}
