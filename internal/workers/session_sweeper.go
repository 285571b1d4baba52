package workers

import (
	"context"
	"time"

	"github.com/secretwall/secretwall/internal/logger"
	"github.com/secretwall/secretwall/internal/store"
)

// DefaultSweepInterval is how often the sweeper reclaims expired session rows.
const DefaultSweepInterval = time.Hour

// SessionSweeper periodically deletes expired session rows. The session
// lookup already hides expired rows behind its predicate, so the sweeper is
// purely about keeping the table from growing without bound.
type SessionSweeper struct {
	sessionRepository store.SessionRepository

	interval time.Duration

	logger *logger.Logger
}

func NewSessionSweeper(sessionRepository store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &SessionSweeper{
		sessionRepository: sessionRepository,
		interval:          interval,
		logger:            logger,
	}
}

// Run sweeps on every tick until ctx is cancelled. A failed sweep is logged
// and retried on the next tick.
func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	removed, err := s.sessionRepository.DeleteExpiredSessions(ctx)
	if err != nil {
		s.logger.Err(err).Msg("sweeping expired sessions failed")
		return
	}

	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("expired sessions removed")
	}
}
