package progress

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "3f1c7a52-7d2b-4d7e-9b1a-2c5e8f0a6b11"

var logColumns = []string{
	"id", "user_id", "session_date", "duration_minutes", "topics_discussed",
	"new_vocabulary", "grammar_points", "ai_summary", "suggested_level",
}

var buenosAires = time.FixedZone("ART", -3*60*60)

func newMockRepository(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewRepository(mock), mock
}

func TestList_OrderAndUTC(t *testing.T) {
	repo, mock := newMockRepository(t)

	newer := time.Date(2025, 3, 2, 9, 0, 0, 0, buenosAires)
	older := time.Date(2025, 3, 1, 9, 0, 0, 0, buenosAires)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY session_date DESC")).
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows(logColumns).
			AddRow(int64(2), testUserID, newer, 20, []string{"travel"}, []string{"boarding pass"},
				[]byte(`[{"point":"Past Simple","examples":["I went"],"status":"needs_review"}]`), "Good job", "B1").
			AddRow(int64(1), testUserID, older, 15, []string(nil), []string(nil), []byte(`[{"point":"Articles"}]`), "Ok", "A2"))

	logs, err := repo.List(context.Background(), testUserID)

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, int64(2), logs[0].ID)
	assert.Equal(t, time.UTC, logs[0].SessionDate.Location())
	assert.Equal(t, 12, logs[0].SessionDate.Hour())
	assert.Equal(t, "needs_review", logs[0].GrammarPoints[0].Status)

	assert.Equal(t, DefaultGrammarStatus, logs[1].GrammarPoints[0].Status, "missing status defaults to practiced")
	assert.NotNil(t, logs[1].TopicsDiscussed)
	assert.NotNil(t, logs[1].GrammarPoints[0].Examples)

	encoded, err := json.Marshal(logs[0])
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"session_date":"2025-03-02T12:00:00Z"`)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM progress_logs")).
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows(logColumns))

	logs, err := repo.List(context.Background(), testUserID)

	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepository(t)

	sessionDate := time.Date(2025, 3, 2, 9, 30, 0, 0, buenosAires)
	stored := sessionDate.UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO progress_logs")).
		WithArgs(
			testUserID,
			pgxmock.AnyArg(),
			25,
			[]string{"food"},
			[]string{},
			`[{"point":"Countable nouns","examples":[],"status":"practiced"}]`,
			"Great session",
			"B1",
		).
		WillReturnRows(pgxmock.NewRows(logColumns).
			AddRow(int64(10), testUserID, stored, 25, []string{"food"}, []string{},
				[]byte(`[{"point":"Countable nouns","examples":[],"status":"practiced"}]`), "Great session", "B1"))

	log, err := repo.Create(context.Background(), testUserID, NewLog{
		SessionDate:     sessionDate,
		DurationMinutes: 25,
		TopicsDiscussed: []string{"food"},
		GrammarPoints:   []GrammarPoint{{Point: "Countable nouns"}},
		AISummary:       "Great session",
		SuggestedLevel:  "B1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), log.ID)
	assert.Equal(t, testUserID, log.UserID)
	assert.True(t, log.SessionDate.Equal(sessionDate))
	assert.Equal(t, time.UTC, log.SessionDate.Location())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_NoRowReturned(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO progress_logs")).
		WillReturnRows(pgxmock.NewRows(logColumns))

	_, err := repo.Create(context.Background(), testUserID, NewLog{
		DurationMinutes: 10,
		AISummary:       "s",
		SuggestedLevel:  "A1",
	})

	assert.ErrorIs(t, err, ErrNotStored)
}

func TestScanLog_BadGrammarJSON(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM progress_logs")).
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows(logColumns).
			AddRow(int64(1), testUserID, time.Now(), 5, []string{}, []string{}, []byte(`{broken`), "s", "A1"))

	_, err := repo.List(context.Background(), testUserID)

	assert.Error(t, err)
}
