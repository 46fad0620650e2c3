package domain

import (
	"math"
	"time"
)

// MarkerView is the lightweight, display-oriented projection of a donation
// used to render map markers. It is derived on demand and never persisted.
type MarkerView struct {
	ID                   int64     `json:"id"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	FoodType             FoodType  `json:"food_type"`
	QuantityKg           float64   `json:"quantity_kg"`
	Status               Status    `json:"status"`
	DonorName            string    `json:"donor_name"`
	ExpiresAt            time.Time `json:"expires_at"`
	TimeUntilExpiryHours float64   `json:"time_until_expiry_hours"`
}

// ProjectMarker derives a marker from a donation at the given instant.
// Remaining life is clamped to zero; an expired-but-not-yet-swept listing
// must never surface a negative duration.
func ProjectMarker(d Donation, now time.Time) MarkerView {
	remaining := d.ExpiresAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return MarkerView{
		ID:                   d.ID,
		Latitude:             d.Latitude,
		Longitude:            d.Longitude,
		FoodType:             d.FoodType,
		QuantityKg:           d.QuantityKg,
		Status:               d.Status,
		DonorName:            d.DonorName,
		ExpiresAt:            d.ExpiresAt,
		TimeUntilExpiryHours: math.Round(remaining.Hours()*10) / 10,
	}
}
