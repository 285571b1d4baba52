package service

import (
	"context"

	"github.com/secretwall/secretwall/models"
)

// mockUserRepository is a hand-rolled store.UserRepository test double.
// Each method delegates to the matching function field, so tests override
// only what they exercise.
type mockUserRepository struct {
	CreateUserFunc           func(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsernameFunc   func(ctx context.Context, username string) (models.User, error)
	FindUserByIDFunc         func(ctx context.Context, userID int64) (models.User, error)
	UpsertUserByGoogleIDFunc func(ctx context.Context, googleID string) (models.User, error)
	UpdateSecretFunc         func(ctx context.Context, userID int64, secret string) error
	ListUsersWithSecretsFunc func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.CreateUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.FindUserByUsernameFunc(ctx, username)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.FindUserByIDFunc(ctx, userID)
}

func (m *mockUserRepository) UpsertUserByGoogleID(ctx context.Context, googleID string) (models.User, error) {
	return m.UpsertUserByGoogleIDFunc(ctx, googleID)
}

func (m *mockUserRepository) UpdateSecret(ctx context.Context, userID int64, secret string) error {
	return m.UpdateSecretFunc(ctx, userID, secret)
}

func (m *mockUserRepository) ListUsersWithSecrets(ctx context.Context) ([]models.User, error) {
	return m.ListUsersWithSecretsFunc(ctx)
}

// mockSessionRepository is a hand-rolled store.SessionRepository test double.
type mockSessionRepository struct {
	CreateSessionFunc         func(ctx context.Context, session models.Session) error
	FindSessionByTokenFunc    func(ctx context.Context, token string) (models.Session, error)
	DeleteSessionFunc         func(ctx context.Context, token string) error
	DeleteExpiredSessionsFunc func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	return m.CreateSessionFunc(ctx, session)
}

func (m *mockSessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	return m.FindSessionByTokenFunc(ctx, token)
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, token string) error {
	return m.DeleteSessionFunc(ctx, token)
}

func (m *mockSessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	return m.DeleteExpiredSessionsFunc(ctx)
}
