package progress

import (
	"time"

	"github.com/LucasBaccaro/fullstack/internal/storage"
)

const DefaultGrammarStatus = "practiced"

type Repository struct {
	db storage.DBTX
}

type GrammarPoint struct {
	Point    string   `json:"point"`
	Examples []string `json:"examples"`
	Status   string   `json:"status"` // e.g. "practiced", "needs_review"
}

// one tutoring session summary. append-only
type Log struct {
	ID              int64          `json:"id"`
	UserID          string         `json:"user_id"`
	SessionDate     time.Time      `json:"session_date"`
	DurationMinutes int            `json:"duration_minutes"`
	TopicsDiscussed []string       `json:"topics_discussed"`
	NewVocabulary   []string       `json:"new_vocabulary"`
	GrammarPoints   []GrammarPoint `json:"grammar_points"`
	AISummary       string         `json:"ai_summary"`
	SuggestedLevel  string         `json:"suggested_level"`
}

// fields a client may supply; the owner always comes from the verified caller
type NewLog struct {
	SessionDate     time.Time
	DurationMinutes int
	TopicsDiscussed []string
	NewVocabulary   []string
	GrammarPoints   []GrammarPoint
	AISummary       string
	SuggestedLevel  string
}
