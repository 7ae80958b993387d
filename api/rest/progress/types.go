package progress

import (
	"context"
	"time"

	"github.com/LucasBaccaro/fullstack/tutor/progress"
)

type LogStore interface {
	List(ctx context.Context, userID string) ([]progress.Log, error)
	Create(ctx context.Context, userID string, in progress.NewLog) (*progress.Log, error)
}

// text fields are pointers so `required` checks presence; an empty string
// from the model is still a valid value
type CreateProgressRequest struct {
	// accepted for compatibility; the owner is always the authenticated caller
	UserID          *string               `json:"user_id,omitempty"`
	SessionDate     time.Time             `json:"session_date" binding:"required"`
	DurationMinutes int                   `json:"duration_minutes" binding:"required,gt=0"`
	TopicsDiscussed []string              `json:"topics_discussed"`
	NewVocabulary   []string              `json:"new_vocabulary"`
	GrammarPoints   []GrammarPointRequest `json:"grammar_points" binding:"dive"`
	AISummary       *string               `json:"ai_summary" binding:"required"`
	SuggestedLevel  *string               `json:"suggested_level" binding:"required"`
}

type GrammarPointRequest struct {
	Point    *string  `json:"point" binding:"required"`
	Examples []string `json:"examples"`
	Status   string   `json:"status"`
}

func (r CreateProgressRequest) toNewLog() progress.NewLog {
	var points []progress.GrammarPoint
	if r.GrammarPoints != nil {
		points = make([]progress.GrammarPoint, 0, len(r.GrammarPoints))
	}

	for _, gp := range r.GrammarPoints {
		points = append(points, progress.GrammarPoint{
			Point:    *gp.Point,
			Examples: gp.Examples,
			Status:   gp.Status,
		})
	}

	return progress.NewLog{
		SessionDate:     r.SessionDate,
		DurationMinutes: r.DurationMinutes,
		TopicsDiscussed: r.TopicsDiscussed,
		NewVocabulary:   r.NewVocabulary,
		GrammarPoints:   points,
		AISummary:       *r.AISummary,
		SuggestedLevel:  *r.SuggestedLevel,
	}
}
