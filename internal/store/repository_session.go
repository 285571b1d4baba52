package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. The sessions table is the backing store the cookie
// token resolves against; expiry is enforced in the lookup predicate so an
// expired row behaves exactly like a missing one.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createSession, session.Token, session.UserID, session.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Int64("user_id", session.UserID).Msg("error: creating session failed")
		return r.db.classify(err)
	}

	return nil
}

// FindSessionByToken retrieves the live session for the given token.
// Unknown and expired tokens both yield [ErrNoSessionWasFound].
func (r *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findSessionByToken, token)

	var session models.Session
	if err := row.Scan(&session.Token, &session.UserID, &session.ExpiresAt, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionWasFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error: session lookup failed")
		return models.Session{}, r.db.classify(err)
	}

	return session, nil
}

// DeleteSession removes the session row for the given token. Deleting a
// token that no longer exists is not an error: logout must be idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, token); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: deleting session failed")
		return r.db.classify(err)
	}

	return nil
}

// DeleteExpiredSessions removes every session row past its expiry and reports
// how many were removed. The lookup predicate already hides expired rows, so
// this only reclaims space.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredSessions)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error: deleting expired sessions failed")
		return 0, r.db.classify(err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error: reading affected rows failed")
		return 0, r.db.classify(err)
	}

	return removed, nil
}
