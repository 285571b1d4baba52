package store

import (
	"context"

	"github.com/secretwall/secretwall/models"
)

// UserRepository is the persistence boundary for user accounts.
type UserRepository interface {
	// CreateUser persists a locally registered user. Returns
	// [ErrUsernameTaken] when the username is already in use.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up a local account by its unique username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks up a user by its primary key.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpsertUserByGoogleID atomically finds or creates the user owning the
	// given federated identity. At most one record ever exists per google_id.
	UpsertUserByGoogleID(ctx context.Context, googleID string) (models.User, error)

	// UpdateSecret overwrites the user's secret.
	UpdateSecret(ctx context.Context, userID int64, secret string) error

	// ListUsersWithSecrets returns every user whose secret is present,
	// in store-defined order.
	ListUsersWithSecrets(ctx context.Context) ([]models.User, error)
}

// SessionRepository is the persistence boundary for server-side sessions.
type SessionRepository interface {
	// CreateSession persists a new session row.
	CreateSession(ctx context.Context, session models.Session) error

	// FindSessionByToken returns the live session for the token.
	// Expired or unknown tokens yield [ErrNoSessionWasFound].
	FindSessionByToken(ctx context.Context, token string) (models.Session, error)

	// DeleteSession removes the session row. Deleting an unknown token is
	// not an error.
	DeleteSession(ctx context.Context, token string) error

	// DeleteExpiredSessions removes every session past its expiry and
	// reports how many rows were removed.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// ErrorClassificator decides whether a failed database operation hit a
// transient condition (connection loss, deadlock) or a permanent one.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
