package profiles

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "3f1c7a52-7d2b-4d7e-9b1a-2c5e8f0a6b11"

var profileColumns = []string{"id", "name", "profile_picture_url", "english_level"}

func strPtr(s string) *string { return &s }

func newMockRepository(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewRepository(mock), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profiles (id)")).
		WithArgs(testUserID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), testUserID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows(profileColumns).
			AddRow(testUserID, strPtr("Ana"), (*string)(nil), strPtr("B1")))

	profile, err := repo.Get(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, testUserID, profile.ID)
	assert.Equal(t, "Ana", *profile.Name)
	assert.Nil(t, profile.ProfilePictureURL)
	assert.Equal(t, "B1", *profile.EnglishLevel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows(profileColumns))

	_, err := repo.Get(context.Background(), testUserID)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_DatabaseError(t *testing.T) {
	repo, mock := newMockRepository(t)

	dbErr := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
		WithArgs(testUserID).
		WillReturnError(dbErr)

	_, err := repo.Get(context.Background(), testUserID)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestBuildUpdateQuery(t *testing.T) {
	query, args := buildUpdateQuery(testUserID, Patch{
		FieldEnglishLevel: strPtr("C1"),
		FieldName:         nil,
		"id":              strPtr("someone-else"),
	})

	assert.Contains(t, query, "SET name = $1, english_level = $2, updated_at = NOW()")
	assert.Contains(t, query, "WHERE id = $3")
	assert.NotContains(t, query, "someone-else")
	require.Len(t, args, 3)
	assert.Equal(t, (*string)(nil), args[0])
	assert.Equal(t, strPtr("C1"), args[1])
	assert.Equal(t, testUserID, args[2])

	query, args = buildUpdateQuery(testUserID, Patch{"email": strPtr("x")})
	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestUpdate(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE profiles")).
		WithArgs(strPtr("Ana María"), (*string)(nil), testUserID).
		WillReturnRows(pgxmock.NewRows(profileColumns).
			AddRow(testUserID, strPtr("Ana María"), (*string)(nil), strPtr("A2")))

	profile, err := repo.Update(context.Background(), testUserID, Patch{
		FieldName:              strPtr("Ana María"),
		FieldProfilePictureURL: nil,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana María", *profile.Name)
	assert.Nil(t, profile.ProfilePictureURL, "explicit null clears the column")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_EmptyPatch(t *testing.T) {
	repo, mock := newMockRepository(t)

	_, err := repo.Update(context.Background(), testUserID, Patch{"unknown": strPtr("x")})

	assert.ErrorIs(t, err, ErrEmptyPatch)
	assert.NoError(t, mock.ExpectationsWereMet(), "no query should be issued")
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE profiles")).
		WithArgs(strPtr("B2"), testUserID).
		WillReturnRows(pgxmock.NewRows(profileColumns))

	_, err := repo.Update(context.Background(), testUserID, Patch{FieldEnglishLevel: strPtr("B2")})

	assert.ErrorIs(t, err, ErrNotFound)
}
