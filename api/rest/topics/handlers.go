package topics

import (
	stderrors "errors"
	"net/http"

	"github.com/LucasBaccaro/fullstack/internal/auth"
	"github.com/LucasBaccaro/fullstack/internal/errors"
	"github.com/LucasBaccaro/fullstack/tutor/topics"
	"github.com/gin-gonic/gin"
)

// ListTopics godoc
// @Summary List all conversation topics
// @Tags topics
// @Produce json
// @Success 200 {array} topics.Topic
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /topics [get]
// @Security BearerAuth
func ListTopics(store TopicStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list topics", err)
			return
		}

		if list == nil {
			list = []topics.Topic{}
		}

		c.JSON(http.StatusOK, list)
	}
}

// CompleteTopic godoc
// @Summary Mark a topic as completed
// @Tags topics
// @Produce json
// @Param id path int true "Topic ID"
// @Success 201 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /topics/{id}/complete [post]
// @Security BearerAuth
func CompleteTopic(store TopicStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		topicID, ok := errors.ParsePathID(c, "id", "topic")
		if !ok {
			return
		}

		err := store.Complete(c.Request.Context(), userID, topicID)
		switch {
		case stderrors.Is(err, topics.ErrNotFound):
			errors.NotFound(c, "topic")
		case stderrors.Is(err, topics.ErrAlreadyCompleted):
			errors.Conflict(c, "you have already completed this topic")
		case err != nil:
			errors.InternalError(c, "failed to save topic progress", err)
		default:
			c.JSON(http.StatusCreated, MessageResponse{Message: "topic marked as completed"})
		}
	}
}

// ListCompletedTopics godoc
// @Summary List topics the caller has completed
// @Tags topics
// @Produce json
// @Success 200 {array} topics.Topic
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /topics/completed [get]
// @Security BearerAuth
func ListCompletedTopics(store TopicStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		list, err := store.ListCompleted(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list completed topics", err)
			return
		}

		if list == nil {
			list = []topics.Topic{}
		}

		c.JSON(http.StatusOK, list)
	}
}
