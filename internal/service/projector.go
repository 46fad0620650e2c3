package service

import (
	"context"

	"github.com/Esw4r/surplus-sync/internal/domain"
)

// ListAvailable returns AVAILABLE donations ordered by soonest expiry first.
// The ordering drives the dispatcher's urgency display.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Donation, error) {
	return s.repo.ListByStatus(ctx, domain.StatusAvailable)
}

// MapMarkers projects every AVAILABLE donation into its marker view,
// preserving the soonest-expiry-first ordering of ListAvailable.
func (s *Service) MapMarkers(ctx context.Context) ([]domain.MarkerView, error) {
	donations, err := s.repo.ListByStatus(ctx, domain.StatusAvailable)
	if err != nil {
		return nil, err
	}
	now := s.now()
	markers := make([]domain.MarkerView, 0, len(donations))
	for _, d := range donations {
		markers = append(markers, domain.ProjectMarker(d, now))
	}
	return markers, nil
}
