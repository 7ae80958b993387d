package profiles

import "github.com/LucasBaccaro/fullstack/internal/storage"

type Repository struct {
	db storage.DBTX
}

type Profile struct {
	ID                string  `json:"id"`
	Name              *string `json:"name"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	EnglishLevel      *string `json:"english_level"`
}

// column -> new value. a nil value clears the column
type Patch map[string]*string

const (
	FieldName              = "name"
	FieldProfilePictureURL = "profile_picture_url"
	FieldEnglishLevel      = "english_level"
)

// the only columns a user may change, in the order they appear in SET
var PatchableFields = []string{FieldName, FieldProfilePictureURL, FieldEnglishLevel}
