package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Esw4r/surplus-sync/internal/domain"
)

// EventSink receives domain events after a successful store write. Fan-out
// is fire-and-forget; the sink never reports per-observer delivery back.
type EventSink interface {
	Broadcast(event domain.Event)
}

// Service owns the donation lifecycle: it is the single component allowed to
// mutate donation state, and every accepted mutation produces exactly one
// domain event.
type Service struct {
	repo          domain.DonationRepository
	events        EventSink
	logger        zerolog.Logger
	maxQuantityKg float64
	now           func() time.Time
}

// New wires the lifecycle controller to its store and event sink.
func New(repo domain.DonationRepository, events EventSink, logger zerolog.Logger, maxQuantityKg float64) *Service {
	return &Service{
		repo:          repo,
		events:        events,
		logger:        logger,
		maxQuantityKg: maxQuantityKg,
		now:           time.Now,
	}
}
