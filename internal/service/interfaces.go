package service

import (
	"context"

	"github.com/secretwall/secretwall/models"
)

// AuthService verifies and creates local username/password credentials.
type AuthService interface {
	// RegisterUser creates a new local account from a raw password.
	// The password is hashed before it ever reaches the store.
	RegisterUser(ctx context.Context, username, password string) (models.User, error)

	// Login resolves a username/password pair to the matching user, or
	// [ErrInvalidCredentials].
	Login(ctx context.Context, username, password string) (models.User, error)
}

// FederatedService resolves a federated (Google) authorization result to a
// local user record.
type FederatedService interface {
	// AuthCodeURL returns the provider consent URL carrying a signed state
	// parameter.
	AuthCodeURL(ctx context.Context) (string, error)

	// CompleteExchange verifies the callback state, exchanges the
	// authorization code, and fetches the external profile.
	CompleteExchange(ctx context.Context, state, code string) (models.ExternalProfile, error)

	// FindOrCreate resolves the external identity to a local user,
	// creating the record on first login. Idempotent per external ID.
	FindOrCreate(ctx context.Context, externalID string) (models.User, error)
}

// SessionService owns the session lifecycle: establishing a principal,
// resolving a request's cookie token back to a user, and terminating.
type SessionService interface {
	// Establish creates a server-side session holding the user's id and
	// returns it, token included, for the cookie.
	Establish(ctx context.Context, user models.User) (models.Session, error)

	// Resolve re-loads the full user behind a session token.
	// Returns [ErrAnonymous] when no principal is established.
	Resolve(ctx context.Context, token string) (models.User, error)

	// Terminate destroys the session. Returns [ErrLogout] only when the
	// backing store is unreachable.
	Terminate(ctx context.Context, token string) error
}

// SecretService handles the single per-user secret.
type SecretService interface {
	// SubmitSecret overwrites the user's secret with text, unconditionally.
	SubmitSecret(ctx context.Context, userID int64, text string) error

	// ListSecrets returns one entry per user with a present secret.
	ListSecrets(ctx context.Context) ([]models.SecretEntry, error)
}
