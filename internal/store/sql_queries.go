package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, google_id, secret, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, google_id, secret, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password_hash, google_id, secret, created_at
    FROM users
    WHERE user_id = $1;`

	// Find-or-create in one statement. The no-op DO UPDATE makes the conflict
	// row visible to RETURNING, so concurrent first logins for the same
	// google_id all converge on the single inserted record.
	upsertUserByGoogleID = `INSERT INTO users (google_id)
    VALUES ($1)
    ON CONFLICT (google_id) WHERE google_id IS NOT NULL
    DO UPDATE SET google_id = EXCLUDED.google_id
    RETURNING user_id, username, password_hash, google_id, secret, created_at;`

	updateSecret = `UPDATE users
    SET secret = $1
    WHERE user_id = $2;`

	createSession = `INSERT INTO sessions (token, user_id, expires_at)
    VALUES ($1, $2, $3);`

	findSessionByToken = `SELECT token, user_id, expires_at, created_at
    FROM sessions
    WHERE token = $1 AND expires_at > NOW();`

	deleteSession = `DELETE FROM sessions
    WHERE token = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at <= NOW();`
)

// buildListUsersWithSecretsQuery builds the wall-of-secrets SELECT: every
// user whose secret is present. Users who never submitted carry a NULL secret
// and are excluded by the predicate, never rendered as placeholders.
func buildListUsersWithSecretsQuery() (string, []any, error) {
	return sq.Select("user_id", "username", "password_hash", "google_id", "secret", "created_at").
		From("users").
		Where(sq.NotEq{"secret": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
