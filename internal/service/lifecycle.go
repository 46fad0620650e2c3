package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Esw4r/surplus-sync/internal/domain"
)

// CreateDonation validates the input, writes the listing with status
// AVAILABLE, and broadcasts NEW_DONATION. The event is emitted only after
// the store write returns; observers must never learn about an entity they
// cannot read back.
func (s *Service) CreateDonation(ctx context.Context, in domain.CreateInput) (domain.Donation, error) {
	now := s.now()
	if err := in.Validate(s.maxQuantityKg, now); err != nil {
		return domain.Donation{}, err
	}
	d := domain.Donation{
		DonorName:   in.DonorName,
		DonorPhone:  in.DonorPhone,
		FoodType:    in.FoodType,
		QuantityKg:  in.QuantityKg,
		Description: in.Description,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Address:     in.Address,
		Status:      domain.StatusAvailable,
		ExpiresAt:   in.ExpiresAt,
	}
	stored, err := s.repo.Insert(ctx, d)
	if err != nil {
		return domain.Donation{}, err
	}
	s.events.Broadcast(domain.NewDonationEvent(stored))
	s.logger.Info().Int64("donation_id", stored.ID).Str("food_type", string(stored.FoodType)).Msg("donation created")
	return stored, nil
}

// SetStatus applies a lifecycle transition. Illegal edges, including
// self-edges and edges out of a terminal state, fail with
// domain.ErrIllegalTransition and leave the row untouched. STATUS_UPDATE is
// broadcast only when the store write succeeds.
func (s *Service) SetStatus(ctx context.Context, id int64, next domain.Status, volunteerID *int64) (domain.Donation, error) {
	if !next.Valid() {
		var v domain.ValidationError
		v.Add("status", "unknown status value")
		return domain.Donation{}, &v
	}
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Donation{}, err
	}
	if !domain.CanTransition(d.Status, next) {
		return domain.Donation{}, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, d.Status, next)
	}
	if next == domain.StatusAssigned && volunteerID == nil {
		var v domain.ValidationError
		v.Add("assigned_volunteer_id", "required when assigning a donation")
		return domain.Donation{}, &v
	}
	from := d.Status
	var assignedAt *time.Time
	if next == domain.StatusAssigned {
		at := s.now()
		assignedAt = &at
	} else {
		volunteerID = nil
	}
	if err := s.repo.UpdateStatus(ctx, id, from, next, volunteerID, assignedAt); err != nil {
		// A concurrent sweep wins the race: the transition observes
		// NotFound rather than partially applying.
		return domain.Donation{}, err
	}
	d.Status = next
	if volunteerID != nil {
		d.AssignedVolunteerID = volunteerID
		d.AssignedAt = assignedAt
	}
	s.events.Broadcast(domain.StatusUpdateEvent(id, from, next, d.AssignedVolunteerID))
	s.logger.Info().Int64("donation_id", id).Str("from", string(from)).Str("to", string(next)).Msg("donation status changed")
	return d, nil
}

// GetDonation loads a single donation.
func (s *Service) GetDonation(ctx context.Context, id int64) (domain.Donation, error) {
	return s.repo.GetByID(ctx, id)
}

// ListDonations returns donations newest first with offset pagination.
func (s *Service) ListDonations(ctx context.Context, limit, offset int) ([]domain.Donation, error) {
	return s.repo.List(ctx, limit, offset)
}
