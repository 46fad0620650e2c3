package domain

import "time"

// EventKind tags the wire envelope broadcast to map clients.
type EventKind string

const (
	EventNewDonation  EventKind = "NEW_DONATION"
	EventStatusUpdate EventKind = "STATUS_UPDATE"
	EventRemoved      EventKind = "REMOVED"
)

// RemovalReason says why a donation disappeared from the map. The server
// currently only emits "expired"; cancellation keeps the row and is
// announced as STATUS_UPDATE. "cancelled" is part of the wire contract so
// clients handle both.
type RemovalReason string

const (
	RemovalExpired   RemovalReason = "expired"
	RemovalCancelled RemovalReason = "cancelled"
)

// Event is an immutable record of a donation lifecycle change. It is
// constructed once and broadcast verbatim to every observer.
type Event struct {
	Kind EventKind `json:"event"`
	Data any       `json:"data"`
}

// DonationSummary is the map-client view of a freshly created donation.
type DonationSummary struct {
	ID         int64     `json:"id"`
	DonorName  string    `json:"donor_name"`
	FoodType   FoodType  `json:"food_type"`
	QuantityKg float64   `json:"quantity_kg"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Address    string    `json:"address"`
	Status     Status    `json:"status"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Summary projects the broadcastable subset of a donation.
func (d Donation) Summary() DonationSummary {
	return DonationSummary{
		ID:         d.ID,
		DonorName:  d.DonorName,
		FoodType:   d.FoodType,
		QuantityKg: d.QuantityKg,
		Latitude:   d.Latitude,
		Longitude:  d.Longitude,
		Address:    d.Address,
		Status:     d.Status,
		ExpiresAt:  d.ExpiresAt,
	}
}

// StatusChange is the STATUS_UPDATE payload. Old status is included so
// clients can reconcile optimistic UI state.
type StatusChange struct {
	ID                  int64  `json:"id"`
	OldStatus           Status `json:"old_status"`
	Status              Status `json:"status"`
	AssignedVolunteerID *int64 `json:"assigned_volunteer_id,omitempty"`
}

// Removal is the REMOVED payload.
type Removal struct {
	ID     int64         `json:"id"`
	Reason RemovalReason `json:"reason"`
}

// NewDonationEvent announces a created listing.
func NewDonationEvent(d Donation) Event {
	return Event{Kind: EventNewDonation, Data: d.Summary()}
}

// StatusUpdateEvent announces an accepted transition.
func StatusUpdateEvent(id int64, old, next Status, volunteerID *int64) Event {
	return Event{Kind: EventStatusUpdate, Data: StatusChange{
		ID:                  id,
		OldStatus:           old,
		Status:              next,
		AssignedVolunteerID: volunteerID,
	}}
}

// RemovedEvent announces a purged listing.
func RemovedEvent(id int64, reason RemovalReason) Event {
	return Event{Kind: EventRemoved, Data: Removal{ID: id, Reason: reason}}
}
