package topics

const (
	queryList = `
		SELECT id, title, description, prompt_context, difficulty_level, created_at
		FROM topics
		ORDER BY id
	`

	queryExists = `
		SELECT EXISTS(SELECT 1 FROM topics WHERE id = $1)
	`

	queryComplete = `
		INSERT INTO user_progress (user_id, topic_id)
		VALUES ($1, $2)
	`

	// server-side routine owned by the schema migrations
	queryListCompleted = `
		SELECT id, title, description, prompt_context, difficulty_level, created_at
		FROM get_completed_topics($1)
	`
)
