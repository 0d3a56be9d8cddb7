// Package scheduler periodically returns copies held by overdue reservations.
package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/LibraryBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationReleaser interface {
	ReleaseExpired(ctx context.Context) ([]domain.Reservation, error)
}

type Scheduler struct {
	releaser reservationReleaser
	interval time.Duration
	logger   logger.Logger
}

func New(
	releaser reservationReleaser,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		releaser: releaser,
		interval: interval,
		logger:   logger,
	}
}

// Start runs the sweep every interval until ctx is done.
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
	released, err := s.releaser.ReleaseExpired(ctx)
	if err != nil {
		s.logger.Error("failed to release expired reservations",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range released {
		s.logger.Info("reservation expired",
			logger.String("reservation_id", r.ID),
			logger.String("user_id", r.UserID),
			logger.String("book_id", r.BookID),
			logger.String("end_date", r.EndDate.Format(time.RFC3339)),
		)
	}
}
