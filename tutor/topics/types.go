package topics

import (
	"time"

	"github.com/LucasBaccaro/fullstack/internal/storage"
)

type Repository struct {
	db storage.DBTX
}

type Topic struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	PromptContext   string    `json:"prompt_context"`
	DifficultyLevel *string   `json:"difficulty_level"`
	CreatedAt       time.Time `json:"created_at"`
}
