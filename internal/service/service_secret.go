package service

import (
	"context"
	"fmt"

	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/store"
	"github.com/secretwall/secretwall/models"
)

// secretService is the concrete implementation of SecretService.
type secretService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewSecretService constructs a SecretService wired to the given UserRepository.
func NewSecretService(userRepository store.UserRepository, logger *logger.Logger) SecretService {
	return &secretService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// SubmitSecret overwrites the user's secret with text. The text is stored
// as-is: no length or content validation, matching the product behavior.
// Concurrent submissions by the same user race with last-write-wins.
func (s *secretService) SubmitSecret(ctx context.Context, userID int64, text string) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.UpdateSecret(ctx, userID, text); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("submitting secret failed")
		return fmt.Errorf("submitting secret failed: %w", err)
	}

	return nil
}

// ListSecrets returns one entry per user whose secret is present, in
// store-defined order. Users who never submitted do not appear at all.
func (s *secretService) ListSecrets(ctx context.Context) ([]models.SecretEntry, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsersWithSecrets(ctx)
	if err != nil {
		log.Err(err).Msg("listing secrets failed")
		return nil, fmt.Errorf("listing secrets failed: %w", err)
	}

	entries := make([]models.SecretEntry, 0, len(users))
	for _, user := range users {
		if !user.Secret.Valid {
			continue
		}
		entries = append(entries, models.SecretEntry{
			Handle: user.DisplayHandle(),
			Secret: user.Secret.String,
		})
	}

	return entries, nil
}
