package service

import (
	"context"
	"testing"
	"time"

	"github.com/Esw4r/surplus-sync/internal/domain"
)

func TestListAvailableSoonestExpiryFirst(t *testing.T) {
	now := time.Date(2026, 1, 25, 12, 0, 0, 0, time.UTC)
	repo := newMemRepo()
	sink := &recordingSink{}
	svc := newTestService(repo, sink, now)

	// Created out of expiry order on purpose.
	for _, expiresIn := range []time.Duration{5 * time.Hour, time.Hour, 3 * time.Hour} {
		if _, err := svc.CreateDonation(context.Background(), testInput(now, expiresIn)); err != nil {
			t.Fatalf("CreateDonation: %v", err)
		}
	}
	// An assigned donation must not show up as available.
	d, _ := svc.CreateDonation(context.Background(), testInput(now, 30*time.Minute))
	volunteer := int64(1)
	if _, err := svc.SetStatus(context.Background(), d.ID, domain.StatusAssigned, &volunteer); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	items, err := svc.ListAvailable(context.Background())
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d available, want 3", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].ExpiresAt.Before(items[i-1].ExpiresAt) {
			t.Errorf("items out of order at %d: %v before %v", i, items[i].ExpiresAt, items[i-1].ExpiresAt)
		}
	}
}

func TestMapMarkersMirrorsAvailableOrdering(t *testing.T) {
	now := time.Date(2026, 1, 25, 12, 0, 0, 0, time.UTC)
	repo := newMemRepo()
	sink := &recordingSink{}
	svc := newTestService(repo, sink, now)

	for _, expiresIn := range []time.Duration{4 * time.Hour, 90 * time.Minute} {
		if _, err := svc.CreateDonation(context.Background(), testInput(now, expiresIn)); err != nil {
			t.Fatalf("CreateDonation: %v", err)
		}
	}

	markers, err := svc.MapMarkers(context.Background())
	if err != nil {
		t.Fatalf("MapMarkers: %v", err)
	}
	if len(markers) != 2 {
		t.Fatalf("got %d markers, want 2", len(markers))
	}
	if markers[0].TimeUntilExpiryHours != 1.5 {
		t.Errorf("first marker remaining = %v, want 1.5", markers[0].TimeUntilExpiryHours)
	}
	if markers[1].TimeUntilExpiryHours != 4 {
		t.Errorf("second marker remaining = %v, want 4", markers[1].TimeUntilExpiryHours)
	}
}
