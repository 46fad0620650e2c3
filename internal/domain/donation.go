package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FoodType classifies what kind of food a donation contains.
type FoodType string

const (
	FoodVeg    FoodType = "VEG"
	FoodNonVeg FoodType = "NON_VEG"
	FoodVegan  FoodType = "VEGAN"
	FoodMixed  FoodType = "MIXED"
)

// Valid reports whether the food type is one of the known values.
func (f FoodType) Valid() bool {
	switch f {
	case FoodVeg, FoodNonVeg, FoodVegan, FoodMixed:
		return true
	}
	return false
}

// Status is the lifecycle state of a donation.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusAssigned  Status = "ASSIGNED"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed out of s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// transitions is the single source of truth for legal status edges.
// Self-edges are illegal, as is any edge out of a terminal state.
var transitions = map[Status][]Status{
	StatusAvailable: {StatusAssigned, StatusCancelled},
	StatusAssigned:  {StatusInTransit, StatusCancelled},
	StatusInTransit: {StatusDelivered, StatusCancelled},
}

// CanTransition reports whether moving from -> to is a legal edge.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Donation is a surplus-food listing published by a donor.
type Donation struct {
	ID                  int64
	DonorName           string
	DonorPhone          string
	FoodType            FoodType
	QuantityKg          float64
	Description         string
	Latitude            float64
	Longitude           float64
	Address             string
	Status              Status
	CreatedAt           time.Time
	ExpiresAt           time.Time
	AssignedVolunteerID *int64
	AssignedAt          *time.Time
}

// Expired reports whether the donation is past its deadline at now.
func (d Donation) Expired(now time.Time) bool {
	return d.ExpiresAt.Before(now)
}

// CreateInput carries the donor-facing fields for a new donation.
type CreateInput struct {
	DonorName   string    `json:"donor_name"`
	DonorPhone  string    `json:"donor_phone"`
	FoodType    FoodType  `json:"food_type"`
	QuantityKg  float64   `json:"quantity_kg"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     string    `json:"address"`
	ExpiresAt   time.Time `json:"expires_at"`
}

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{9,14}$`)

// Validate checks the input against the listing rules. maxQuantityKg is the
// configured cap on a single listing. now anchors the expiry check.
func (in CreateInput) Validate(maxQuantityKg float64, now time.Time) error {
	var v ValidationError
	name := strings.TrimSpace(in.DonorName)
	if len(name) < 2 || len(name) > 100 {
		v.Add("donor_name", "must be between 2 and 100 characters")
	}
	if !phonePattern.MatchString(strings.TrimSpace(in.DonorPhone)) {
		v.Add("donor_phone", "must be a valid phone number")
	}
	if !in.FoodType.Valid() {
		v.Add("food_type", "must be one of VEG, NON_VEG, VEGAN, MIXED")
	}
	if in.QuantityKg <= 0 || in.QuantityKg > maxQuantityKg {
		v.Add("quantity_kg", fmt.Sprintf("must be positive and at most %g", maxQuantityKg))
	}
	if len(in.Description) > 500 {
		v.Add("description", "must be at most 500 characters")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		v.Add("latitude", "must be between -90 and 90")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		v.Add("longitude", "must be between -180 and 180")
	}
	if addr := strings.TrimSpace(in.Address); len(addr) < 10 || len(addr) > 300 {
		v.Add("address", "must be between 10 and 300 characters")
	}
	if !in.ExpiresAt.After(now) {
		v.Add("expires_at", "must be in the future")
	}
	if len(v.Fields) > 0 {
		return &v
	}
	return nil
}
