package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Esw4r/surplus-sync/internal/domain"
	"github.com/Esw4r/surplus-sync/internal/infra"
	"github.com/Esw4r/surplus-sync/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository on PostgreSQL.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// Insert stores a new donation row and fills in the generated id and
// creation timestamp.
func (r *DonationRepositoryPG) Insert(ctx context.Context, d domain.Donation) (domain.Donation, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		d.DonorName, d.DonorPhone, string(d.FoodType), d.QuantityKg, d.Description,
		d.Latitude, d.Longitude, d.Address, string(d.Status), d.ExpiresAt)
	if err := row.Scan(&d.ID, &d.CreatedAt); err != nil {
		return domain.Donation{}, storeErr("insert donation", err)
	}
	return d, nil
}

// GetByID returns domain.ErrNotFound when the id is absent.
func (r *DonationRepositoryPG) GetByID(ctx context.Context, id int64) (domain.Donation, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QGetDonation, id)
	d, err := scanDonation(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Donation{}, domain.ErrNotFound
		}
		return domain.Donation{}, storeErr("get donation", err)
	}
	return d, nil
}

// List returns donations newest first with offset pagination.
func (r *DonationRepositoryPG) List(ctx context.Context, limit, offset int) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonations, limit, offset)
	if err != nil {
		return nil, storeErr("list donations", err)
	}
	return collectDonations(rows)
}

// ListByStatus returns donations in the given status ordered by soonest
// expiry first. The ordering is part of the contract, not a hint.
func (r *DonationRepositoryPG) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsByStatus, string(status))
	if err != nil {
		return nil, storeErr("list donations by status", err)
	}
	return collectDonations(rows)
}

// UpdateStatus applies a transition with a compare-and-set on the current
// status. A row that was concurrently swept or transitioned reports
// domain.ErrNotFound.
func (r *DonationRepositoryPG) UpdateStatus(ctx context.Context, id int64, from, to domain.Status, volunteerID *int64, assignedAt *time.Time) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateDonationStatus,
		id, string(from), string(to), volunteerID, assignedAt)
	if err != nil {
		return storeErr("update donation status", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteExpiredBefore removes every row expiring strictly before t and
// returns the removed ids.
func (r *DonationRepositoryPG) DeleteExpiredBefore(ctx context.Context, t time.Time) ([]int64, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QDeleteExpiredDonations, t)
	if err != nil {
		return nil, storeErr("delete expired donations", err)
	}
	defer rows.Close()
	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, storeErr("scan expired donation id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate expired donations", err)
	}
	return ids, nil
}

// Ping verifies database connectivity for health reporting.
func (r *DonationRepositoryPG) Ping(ctx context.Context) error {
	var one int
	if err := r.sql.QueryRow(ctx, sqlinline.QHealthCheck).Scan(&one); err != nil {
		return storeErr("ping", err)
	}
	return nil
}

func scanDonation(scan func(dest ...any) error) (domain.Donation, error) {
	var (
		d        domain.Donation
		foodType string
		status   string
	)
	err := scan(&d.ID, &d.DonorName, &d.DonorPhone, &foodType, &d.QuantityKg,
		&d.Description, &d.Latitude, &d.Longitude, &d.Address, &status,
		&d.CreatedAt, &d.ExpiresAt, &d.AssignedVolunteerID, &d.AssignedAt)
	if err != nil {
		return domain.Donation{}, err
	}
	d.FoodType = domain.FoodType(foodType)
	d.Status = domain.Status(status)
	return d, nil
}

func collectDonations(rows pgx.Rows) ([]domain.Donation, error) {
	defer rows.Close()
	var items []domain.Donation
	for rows.Next() {
		d, err := scanDonation(rows.Scan)
		if err != nil {
			return nil, storeErr("scan donation", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate donations", err)
	}
	return items, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}
