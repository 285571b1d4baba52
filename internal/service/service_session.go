package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/secretwall/secretwall/internal/config"
	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/store"
	"github.com/secretwall/secretwall/internal/utils"
	"github.com/secretwall/secretwall/models"
)

// sessionService is the concrete implementation of SessionService. Sessions
// live server-side in the SessionRepository; the client only ever holds the
// opaque token.
type sessionService struct {
	sessionRepository store.SessionRepository
	userRepository    store.UserRepository

	tokenGenerator *utils.UUIDGenerator
	ttl            time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService with the session lifetime
// taken from cfg.
func NewSessionService(sessionRepository store.SessionRepository, userRepository store.UserRepository, cfg config.Session, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		userRepository:    userRepository,
		tokenGenerator:    utils.NewUUIDGenerator(),
		ttl:               cfg.TTL,
		logger:            logger,
	}
}

// Establish creates a new server-side session holding the user's id and
// returns it for the cookie. The stored reference is minimal: just the id,
// re-loaded into a full user on every resolution.
func (s *sessionService) Establish(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	session := models.Session{
		Token:     s.tokenGenerator.Generate(),
		UserID:    user.UserID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("establishing session failed")
		return models.Session{}, fmt.Errorf("establishing session failed: %w", err)
	}

	return session, nil
}

// Resolve re-loads the full user behind a session token.
//
// Missing token, unknown or expired session, and a stale user reference all
// resolve to ErrAnonymous: an unauthenticated request is a normal state, not
// a failure. Store outages still surface as errors.
func (s *sessionService) Resolve(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrAnonymous
	}

	session, err := s.sessionRepository.FindSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNoSessionWasFound) {
			return models.User{}, ErrAnonymous
		}

		log.Err(err).Msg("session lookup failed")
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	// the lookup predicate already hides expired rows; this guards against a
	// store that does not
	if session.Expired(time.Now()) {
		return models.User{}, ErrAnonymous
	}

	user, err := s.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// stale reference: the user behind the session is gone
			log.Debug().Int64("user_id", session.UserID).Msg("session references deleted user")
			return models.User{}, ErrAnonymous
		}

		log.Err(err).Int64("user_id", session.UserID).Msg("principal lookup failed")
		return models.User{}, fmt.Errorf("principal lookup failed: %w", err)
	}

	return user, nil
}

// Terminate destroys the session behind the token. Terminating an unknown
// token succeeds; only an unreachable backing store yields ErrLogout.
func (s *sessionService) Terminate(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return nil
	}

	if err := s.sessionRepository.DeleteSession(ctx, token); err != nil {
		log.Err(err).Msg("terminating session failed")
		return fmt.Errorf("%w: %w", ErrLogout, err)
	}

	return nil
}
