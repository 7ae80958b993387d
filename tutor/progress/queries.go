package progress

const (
	queryList = `
		SELECT id, user_id, session_date, duration_minutes, topics_discussed, new_vocabulary, grammar_points, ai_summary, suggested_level
		FROM progress_logs
		WHERE user_id = $1
		ORDER BY session_date DESC
	`

	queryCreate = `
		INSERT INTO progress_logs (
			user_id, session_date, duration_minutes, topics_discussed, new_vocabulary, grammar_points, ai_summary, suggested_level
		)
		VALUES ($1, $2, $3, $4::text[], $5::text[], $6::jsonb, $7, $8)
		RETURNING id, user_id, session_date, duration_minutes, topics_discussed, new_vocabulary, grammar_points, ai_summary, suggested_level
	`
)
