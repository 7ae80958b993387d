package realtime

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/LucasBaccaro/fullstack/internal/auth"
	"github.com/LucasBaccaro/fullstack/internal/errors"
	"github.com/LucasBaccaro/fullstack/internal/llm"
	"github.com/LucasBaccaro/fullstack/internal/logger"
	"github.com/LucasBaccaro/fullstack/internal/metrics"
	"github.com/gin-gonic/gin"
)

// EphemeralKey godoc
// @Summary Mint a short-lived realtime voice session key
// @Description Always answers 200 once the caller is authenticated; success=false carries the body, provider or network failure
// @Tags realtime
// @Accept json
// @Produce json
// @Param request body EphemeralKeyRequest false "Conversation topic"
// @Success 200 {object} llm.MintResult
// @Failure 401 {object} errors.ErrorResponse
// @Router /openai/ephemeral-key [post]
// @Security BearerAuth
func EphemeralKey(minter llm.SessionMinter, rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var result llm.MintResult

		var req EphemeralKeyRequest
		if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
			// same 200 contract as provider failures; nothing is sent upstream
			result = llm.MintResult{Success: false, Error: "unexpected error: invalid request body: " + err.Error()}
		} else {
			result = minter.MintEphemeralKey(c.Request.Context(), req.Instructions)
		}

		rec.RecordMint(result.Outcome())

		if !result.Success {
			logger.FromContext(c.Request.Context()).Warn("ephemeral key mint failed",
				"user_id", userID,
				"outcome", result.Outcome(),
				"status", result.Status,
				"error", result.Error,
			)
		}

		c.JSON(http.StatusOK, result)
	}
}
