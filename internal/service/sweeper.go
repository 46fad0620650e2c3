package service

import (
	"context"
	"time"

	"github.com/Esw4r/surplus-sync/internal/domain"
)

// SweepExpired purges every donation past its expiry deadline, regardless of
// status, and broadcasts one REMOVED event per purged row. It returns the
// number of rows removed.
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	now := s.now()
	ids, err := s.repo.DeleteExpiredBefore(ctx, now)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.events.Broadcast(domain.RemovedEvent(id, domain.RemovalExpired))
	}
	if len(ids) > 0 {
		s.logger.Info().Int("count", len(ids)).Msg("expired donations swept")
	}
	return len(ids), nil
}

// RunSweeper sweeps on a fixed interval until ctx is done. Store failures
// are logged and the loop keeps going; the next tick retries.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepExpired(ctx); err != nil {
				s.logger.Error().Err(err).Msg("sweep failed")
			}
		}
	}
}
