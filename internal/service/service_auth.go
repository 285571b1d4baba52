package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/store"
	"github.com/secretwall/secretwall/models"
)

// authService is the concrete implementation of AuthService.
// It handles local registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// RegisterUser creates a new local account.
//
// It validates that both username and password are non-empty, derives a
// bcrypt hash (which embeds a per-user random salt), and delegates
// persistence to the UserRepository. The raw password never leaves this
// function.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - store.ErrUsernameTaken (wrapped) if the username is already in use.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     sql.NullString{String: username, Valid: true},
		PasswordHash: sql.NullString{String: string(hash), Valid: true},
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing local user.
//
// It validates that both username and password are non-empty, looks up the
// account by username, and compares the stored bcrypt hash against the
// supplied password. bcrypt's comparison is constant-time.
//
// "No such user", "federated-only account", and "wrong password" all
// normalise to ErrInvalidCredentials so the failure mode does not reveal
// which usernames exist.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", username).Msg("login attempt for unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !foundUser.HasLocalCredentials() {
		log.Debug().Str("username", username).Msg("login attempt for account without local credentials")
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash.String), []byte(password)); err != nil {
		log.Debug().
			Int64("id", foundUser.UserID).
			Str("username", username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
