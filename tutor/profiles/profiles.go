package profiles

import (
	"context"
	"errors"

	"github.com/LucasBaccaro/fullstack/internal/storage"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound   = errors.New("profile not found")
	ErrEmptyPatch = errors.New("no updatable profile fields provided")
)

func NewRepository(db storage.DBTX) *Repository {
	return &Repository{db: db}
}

// inserts an empty profile for a freshly registered account.
// calling it again for the same account is a no-op
func (r *Repository) Create(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, queryCreate, userID)
	return err
}

func (r *Repository) Get(ctx context.Context, userID string) (*Profile, error) {
	var profile Profile

	err := r.db.QueryRow(ctx, queryGet, userID).Scan(
		&profile.ID,
		&profile.Name,
		&profile.ProfilePictureURL,
		&profile.EnglishLevel,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// applies the patchable fields in patch; unknown keys are ignored
func (r *Repository) Update(ctx context.Context, userID string, patch Patch) (*Profile, error) {
	query, args := buildUpdateQuery(userID, patch)
	if query == "" {
		return nil, ErrEmptyPatch
	}

	var profile Profile

	err := r.db.QueryRow(ctx, query, args...).Scan(
		&profile.ID,
		&profile.Name,
		&profile.ProfilePictureURL,
		&profile.EnglishLevel,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &profile, nil
}
