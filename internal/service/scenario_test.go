package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Esw4r/surplus-sync/internal/domain"
)

// Walks one donation through publish, dispatch, a rejected rollback, and
// expiry, checking the map view and the event stream at each step.
func TestDonationLifecycleEndToEnd(t *testing.T) {
	start := time.Date(2026, 1, 25, 12, 0, 0, 0, time.UTC)
	repo := newMemRepo()
	sink := &recordingSink{}
	svc := newTestService(repo, sink, start)
	ctx := context.Background()

	d, err := svc.CreateDonation(ctx, testInput(start, 2*time.Hour))
	if err != nil {
		t.Fatalf("CreateDonation: %v", err)
	}

	available, err := svc.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(available) != 1 || available[0].ID != d.ID {
		t.Fatalf("available = %+v, want the new donation", available)
	}

	volunteer := int64(42)
	if _, err := svc.SetStatus(ctx, d.ID, domain.StatusAssigned, &volunteer); err != nil {
		t.Fatalf("assign: %v", err)
	}

	// Once dispatched the listing cannot go back on the map.
	if _, err := svc.SetStatus(ctx, d.ID, domain.StatusAvailable, nil); !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("ASSIGNED -> AVAILABLE should be illegal, got %v", err)
	}

	available, err = svc.ListAvailable(ctx)
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(available) != 0 {
		t.Fatalf("assigned donation still listed as available: %+v", available)
	}

	// Expiry removes the row even though it is ASSIGNED, not AVAILABLE.
	svc.now = func() time.Time { return start.Add(3 * time.Hour) }
	removed, err := svc.SweepExpired(ctx)
	if err != nil {
		t.Fatalf("SweepExpired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}

	events := sink.all()
	if len(events) != 3 {
		t.Fatalf("got %d events, want create/assign/remove", len(events))
	}
	wantKinds := []domain.EventKind{domain.EventNewDonation, domain.EventStatusUpdate, domain.EventRemoved}
	for i, want := range wantKinds {
		if events[i].Kind != want {
			t.Errorf("event %d kind = %s, want %s", i, events[i].Kind, want)
		}
	}
	removal := events[2].Data.(domain.Removal)
	if removal.ID != d.ID || removal.Reason != domain.RemovalExpired {
		t.Errorf("removal = %+v", removal)
	}

	if _, err := svc.GetDonation(ctx, d.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("swept donation still readable: %v", err)
	}
}
