package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type tokenPurger interface {
	PurgeExpiredTokens(ctx context.Context) (int, error)
}

// Scheduler periodically drops used and expired password-reset tokens from
// the store.
type Scheduler struct {
	authService tokenPurger
	interval    time.Duration
	logger      logger.Logger
}

func New(
	authService tokenPurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		authService: authService,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	purged, err := s.authService.PurgeExpiredTokens(ctx)
	if err != nil {
		s.logger.Error("failed to purge reset tokens",
			logger.String("error", err.Error()),
		)
		return
	}

	if purged > 0 {
		s.logger.Info("expired reset tokens purged",
			logger.Int("count", purged),
		)
	}
}
