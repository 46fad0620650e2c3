package domain

import (
	"strings"
	"testing"
	"time"
)

func TestCanTransitionOnlyLegalEdges(t *testing.T) {
	legal := map[[2]Status]bool{
		{StatusAvailable, StatusAssigned}:  true,
		{StatusAssigned, StatusInTransit}:  true,
		{StatusInTransit, StatusDelivered}: true,
		{StatusAvailable, StatusCancelled}: true,
		{StatusAssigned, StatusCancelled}:  true,
		{StatusInTransit, StatusCancelled}: true,
	}
	all := []Status{StatusAvailable, StatusAssigned, StatusInTransit, StatusDelivered, StatusCancelled}
	for _, from := range all {
		for _, to := range all {
			want := legal[[2]Status{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	all := []Status{StatusAvailable, StatusAssigned, StatusInTransit, StatusDelivered, StatusCancelled}
	for _, terminal := range []Status{StatusDelivered, StatusCancelled} {
		if !terminal.Terminal() {
			t.Errorf("%s should be terminal", terminal)
		}
		for _, to := range all {
			if CanTransition(terminal, to) {
				t.Errorf("terminal state %s must not transition to %s", terminal, to)
			}
		}
	}
}

func validInput(now time.Time) CreateInput {
	return CreateInput{
		DonorName:  "Raj's Restaurant",
		DonorPhone: "+919876543210",
		FoodType:   FoodVeg,
		QuantityKg: 15.5,
		Latitude:   13.0827,
		Longitude:  80.2707,
		Address:    "123 Marina Beach Road, Chennai",
		ExpiresAt:  now.Add(2 * time.Hour),
	}
}

func TestCreateInputValidateAccepted(t *testing.T) {
	now := time.Now()
	if err := validInput(now).Validate(500, now); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestCreateInputValidateRejections(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
	}{
		{"short name", func(in *CreateInput) { in.DonorName = "x" }, "donor_name"},
		{"bad phone", func(in *CreateInput) { in.DonorPhone = "12" }, "donor_phone"},
		{"unknown food type", func(in *CreateInput) { in.FoodType = "PIZZA" }, "food_type"},
		{"zero quantity", func(in *CreateInput) { in.QuantityKg = 0 }, "quantity_kg"},
		{"over cap", func(in *CreateInput) { in.QuantityKg = 501 }, "quantity_kg"},
		{"long description", func(in *CreateInput) { in.Description = strings.Repeat("a", 501) }, "description"},
		{"latitude out of range", func(in *CreateInput) { in.Latitude = 91 }, "latitude"},
		{"longitude out of range", func(in *CreateInput) { in.Longitude = -181 }, "longitude"},
		{"short address", func(in *CreateInput) { in.Address = "nowhere" }, "address"},
		{"expiry in the past", func(in *CreateInput) { in.ExpiresAt = now.Add(-time.Minute) }, "expires_at"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput(now)
			tc.mutate(&in)
			err := in.Validate(500, now)
			if err == nil {
				t.Fatal("expected validation error")
			}
			v, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			found := false
			for _, f := range v.Fields {
				if f.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a violation on %q, got %v", tc.field, v.Fields)
			}
		})
	}
}
