package domain

import (
	"context"
	"time"
)

// DonationRepository handles donation persistence.
type DonationRepository interface {
	// Insert stores a new donation and returns it with the assigned id.
	Insert(ctx context.Context, d Donation) (Donation, error)
	// GetByID returns ErrNotFound when the id is absent.
	GetByID(ctx context.Context, id int64) (Donation, error)
	// List returns donations in creation order with offset pagination.
	List(ctx context.Context, limit, offset int) ([]Donation, error)
	// ListByStatus returns donations in the given status ordered by
	// soonest expiry first.
	ListByStatus(ctx context.Context, status Status) ([]Donation, error)
	// UpdateStatus applies a transition only if the row is still in the
	// expected status; a concurrent sweep or transition yields ErrNotFound.
	UpdateStatus(ctx context.Context, id int64, from, to Status, volunteerID *int64, assignedAt *time.Time) error
	// DeleteExpiredBefore removes every donation whose expiry is strictly
	// before t, regardless of status, and returns the removed ids.
	DeleteExpiredBefore(ctx context.Context, t time.Time) ([]int64, error)
}
