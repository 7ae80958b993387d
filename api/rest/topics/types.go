package topics

import (
	"context"

	"github.com/LucasBaccaro/fullstack/tutor/topics"
)

type TopicStore interface {
	List(ctx context.Context) ([]topics.Topic, error)
	ListCompleted(ctx context.Context, userID string) ([]topics.Topic, error)
	Complete(ctx context.Context, userID string, topicID int64) error
}

type MessageResponse struct {
	Message string `json:"message"`
}
