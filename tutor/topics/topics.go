package topics

import (
	"context"
	"errors"

	"github.com/LucasBaccaro/fullstack/internal/storage"
)

var (
	ErrNotFound         = errors.New("topic not found")
	ErrAlreadyCompleted = errors.New("topic already completed")
)

func NewRepository(db storage.DBTX) *Repository {
	return &Repository{db: db}
}

// returns every topic; never nil
func (r *Repository) List(ctx context.Context) ([]Topic, error) {
	return r.query(ctx, queryList)
}

// topics the user has completed, most recent first; never nil
func (r *Repository) ListCompleted(ctx context.Context, userID string) ([]Topic, error) {
	return r.query(ctx, queryListCompleted, userID)
}

func (r *Repository) Exists(ctx context.Context, topicID int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, queryExists, topicID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// records a completion. the topic must exist and each (user, topic) pair
// may be recorded only once
func (r *Repository) Complete(ctx context.Context, userID string, topicID int64) error {
	exists, err := r.Exists(ctx, topicID)
	if err != nil {
		return err
	}

	if !exists {
		return ErrNotFound
	}

	if _, err := r.db.Exec(ctx, queryComplete, userID, topicID); err != nil {
		if storage.IsUniqueViolation(err) {
			return ErrAlreadyCompleted
		}

		return err
	}

	return nil
}

func (r *Repository) query(ctx context.Context, sql string, args ...any) ([]Topic, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	topics := []Topic{}

	for rows.Next() {
		var t Topic
		err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.PromptContext,
			&t.DifficultyLevel,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return topics, nil
}
