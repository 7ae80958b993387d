package profiles

import (
	"fmt"
	"strings"
)

const (
	queryCreate = `
		INSERT INTO profiles (id)
		VALUES ($1)
		ON CONFLICT (id) DO NOTHING
	`

	queryGet = `
		SELECT id, name, profile_picture_url, english_level
		FROM profiles
		WHERE id = $1
	`
)

// builds the UPDATE for the whitelisted columns present in patch.
// column names never come from user input, only from PatchableFields
func buildUpdateQuery(userID string, patch Patch) (string, []any) {
	sets := make([]string, 0, len(PatchableFields))
	args := make([]any, 0, len(PatchableFields)+1)

	for _, field := range PatchableFields {
		value, ok := patch[field]
		if !ok {
			continue
		}

		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", field, len(args)))
	}

	if len(sets) == 0 {
		return "", nil
	}

	args = append(args, userID)

	query := fmt.Sprintf(`
		UPDATE profiles
		SET %s, updated_at = NOW()
		WHERE id = $%d
		RETURNING id, name, profile_picture_url, english_level
	`, strings.Join(sets, ", "), len(args))

	return query, args
}
