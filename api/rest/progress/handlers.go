package progress

import (
	stderrors "errors"
	"net/http"

	"github.com/LucasBaccaro/fullstack/internal/auth"
	"github.com/LucasBaccaro/fullstack/internal/errors"
	"github.com/LucasBaccaro/fullstack/internal/logger"
	"github.com/LucasBaccaro/fullstack/tutor/progress"
	"github.com/gin-gonic/gin"
)

// ListProgress godoc
// @Summary List the caller's progress logs, newest first
// @Tags progress
// @Produce json
// @Success 200 {array} progress.Log
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /progress [get]
// @Security BearerAuth
func ListProgress(store LogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		logs, err := store.List(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list progress", err)
			return
		}

		if logs == nil {
			logs = []progress.Log{}
		}

		c.JSON(http.StatusOK, logs)
	}
}

// CreateProgress godoc
// @Summary Record a tutoring session summary
// @Description The log is always stored for the authenticated caller; a user_id in the body is ignored
// @Tags progress
// @Accept json
// @Produce json
// @Param request body CreateProgressRequest true "Session summary"
// @Success 201 {object} progress.Log
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /progress [post]
// @Security BearerAuth
func CreateProgress(store LogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req CreateProgressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.UserID != nil && *req.UserID != userID {
			logger.FromContext(c.Request.Context()).Warn("progress log user_id overridden by token subject",
				"user_id", userID,
				"client_user_id", *req.UserID,
			)
		}

		log, err := store.Create(c.Request.Context(), userID, req.toNewLog())
		if stderrors.Is(err, progress.ErrNotStored) {
			errors.BadRequest(c, "could not record progress", nil)
			return
		}

		if err != nil {
			errors.InternalError(c, "failed to record progress", err)
			return
		}

		c.JSON(http.StatusCreated, log)
	}
}
