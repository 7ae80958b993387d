package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/LucasBaccaro/fullstack/internal/storage"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotStored = errors.New("progress log was not stored")
)

func NewRepository(db storage.DBTX) *Repository {
	return &Repository{db: db}
}

// the user's logs, newest session first; never nil
func (r *Repository) List(ctx context.Context, userID string) ([]Log, error) {
	rows, err := r.db.Query(ctx, queryList, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	logs := []Log{}

	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// stores a log owned by userID. session_date is written and returned in UTC
func (r *Repository) Create(ctx context.Context, userID string, in NewLog) (*Log, error) {
	sessionDate := in.SessionDate
	if sessionDate.IsZero() {
		sessionDate = time.Now()
	}

	grammarPoints := normalizeGrammarPoints(in.GrammarPoints)

	grammarJSON, err := json.Marshal(grammarPoints)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal grammar points: %w", err)
	}

	row := r.db.QueryRow(
		ctx,
		queryCreate,
		userID,
		sessionDate.UTC(),
		in.DurationMinutes,
		nonNil(in.TopicsDiscussed),
		nonNil(in.NewVocabulary),
		string(grammarJSON),
		in.AISummary,
		in.SuggestedLevel,
	)

	log, err := scanLog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotStored
	}

	if err != nil {
		return nil, err
	}

	return log, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (*Log, error) {
	var (
		log        Log
		grammarRaw []byte
	)

	err := row.Scan(
		&log.ID,
		&log.UserID,
		&log.SessionDate,
		&log.DurationMinutes,
		&log.TopicsDiscussed,
		&log.NewVocabulary,
		&grammarRaw,
		&log.AISummary,
		&log.SuggestedLevel,
	)
	if err != nil {
		return nil, err
	}

	log.GrammarPoints = []GrammarPoint{}
	if len(grammarRaw) > 0 {
		if err := json.Unmarshal(grammarRaw, &log.GrammarPoints); err != nil {
			return nil, fmt.Errorf("failed to decode grammar points: %w", err)
		}
	}

	log.SessionDate = log.SessionDate.UTC()
	log.TopicsDiscussed = nonNil(log.TopicsDiscussed)
	log.NewVocabulary = nonNil(log.NewVocabulary)
	log.GrammarPoints = normalizeGrammarPoints(log.GrammarPoints)

	return &log, nil
}

func normalizeGrammarPoints(points []GrammarPoint) []GrammarPoint {
	out := make([]GrammarPoint, 0, len(points))

	for _, p := range points {
		if p.Status == "" {
			p.Status = DefaultGrammarStatus
		}
		p.Examples = nonNil(p.Examples)
		out = append(out, p)
	}

	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
