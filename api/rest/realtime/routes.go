package realtime

import (
	"github.com/LucasBaccaro/fullstack/internal/llm"
	"github.com/LucasBaccaro/fullstack/internal/metrics"
	"github.com/gin-gonic/gin"
)

// registers the session broker route on an already authenticated group
func RegisterRoutes(router *gin.RouterGroup, minter llm.SessionMinter, rec metrics.Recorder) {
	router.POST("/openai/ephemeral-key", EphemeralKey(minter, rec))
}
