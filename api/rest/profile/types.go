package profile

import (
	"context"

	"github.com/LucasBaccaro/fullstack/tutor/profiles"
)

type ProfileStore interface {
	Get(ctx context.Context, userID string) (*profiles.Profile, error)
	Update(ctx context.Context, userID string, patch profiles.Patch) (*profiles.Profile, error)
}

// documents the PATCH body. the handler reads the raw JSON object so it can
// tell an absent key from an explicit null
type UpdateProfileRequest struct {
	Name              *string `json:"name,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	EnglishLevel      *string `json:"english_level,omitempty"`
}
