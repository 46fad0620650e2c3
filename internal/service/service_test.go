package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Esw4r/surplus-sync/internal/domain"
)

// memRepo is an in-memory domain.DonationRepository for lifecycle tests.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Donation
	fail   error
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[int64]domain.Donation)}
}

func (r *memRepo) Insert(_ context.Context, d domain.Donation) (domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return domain.Donation{}, r.fail
	}
	r.nextID++
	d.ID = r.nextID
	d.CreatedAt = time.Now()
	r.rows[d.ID] = d
	return d, nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return domain.Donation{}, r.fail
	}
	d, ok := r.rows[id]
	if !ok {
		return domain.Donation{}, domain.ErrNotFound
	}
	return d, nil
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	items := make([]domain.Donation, 0, len(r.rows))
	for _, d := range r.rows {
		items = append(items, d)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if offset > len(items) {
		offset = len(items)
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *memRepo) ListByStatus(_ context.Context, status domain.Status) ([]domain.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	var items []domain.Donation
	for _, d := range r.rows {
		if d.Status == status {
			items = append(items, d)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ExpiresAt.Before(items[j].ExpiresAt) })
	return items, nil
}

func (r *memRepo) UpdateStatus(_ context.Context, id int64, from, to domain.Status, volunteerID *int64, assignedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	d, ok := r.rows[id]
	if !ok || d.Status != from {
		return domain.ErrNotFound
	}
	d.Status = to
	if volunteerID != nil {
		d.AssignedVolunteerID = volunteerID
		d.AssignedAt = assignedAt
	}
	r.rows[id] = d
	return nil
}

func (r *memRepo) DeleteExpiredBefore(_ context.Context, t time.Time) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	var ids []int64
	for id, d := range r.rows {
		if d.ExpiresAt.Before(t) {
			ids = append(ids, id)
			delete(r.rows, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// recordingSink captures broadcast events in order.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.Event
}

func (s *recordingSink) Broadcast(event domain.Event) {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
}

func (s *recordingSink) all() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...)
}

func newTestService(repo *memRepo, sink *recordingSink, now time.Time) *Service {
	svc := New(repo, sink, zerolog.Nop(), 500)
	svc.now = func() time.Time { return now }
	return svc
}

func testInput(now time.Time, expiresIn time.Duration) domain.CreateInput {
	return domain.CreateInput{
		DonorName:  "Raj's Restaurant",
		DonorPhone: "+919876543210",
		FoodType:   domain.FoodVeg,
		QuantityKg: 15.5,
		Latitude:   13.0827,
		Longitude:  80.2707,
		Address:    "123 Marina Beach Road, Chennai",
		ExpiresAt:  now.Add(expiresIn),
	}
}
