package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"
)

const donationColumns = `d.id, d.donor_id, u.full_name, d.title, d.description, d.category, d.quantity, d.condition,
	d.pickup_available, d.delivery_available, d.status, d.approved_by, d.approved_on, d.created_on, d.updated_on`

type donationRepository struct {
	q DBTX
}

func NewDonationRepository(q DBTX) repository.DonationRepository {
	return &donationRepository{q: q}
}

func (r *donationRepository) Create(ctx context.Context, d *domain.Donation) error {
	query := `INSERT INTO donations (id, donor_id, title, description, category, quantity, condition,
	          pickup_available, delivery_available, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now().UTC()
	d.CreatedOn = now
	d.UpdatedOn = now
	_, err := r.q.ExecContext(ctx, query, d.ID, d.DonorID, d.Title, d.Description, d.Category, d.Quantity,
		d.Condition, d.PickupAvailable, d.DeliveryAvailable, d.Status, d.CreatedOn, d.UpdatedOn)
	return err
}

func (r *donationRepository) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations d JOIN users u ON u.id = d.donor_id WHERE d.id = $1`
	return scanDonation(r.q.QueryRowContext(ctx, query, id))
}

// GetByIDForUpdate locks the donation row for the rest of the transaction.
// The joinless query keeps FOR UPDATE valid.
func (r *donationRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Donation, error) {
	query := `SELECT id, donor_id, '', title, description, category, quantity, condition,
	          pickup_available, delivery_available, status, approved_by, approved_on, created_on, updated_on
	          FROM donations WHERE id = $1 FOR UPDATE`
	return scanDonation(r.q.QueryRowContext(ctx, query, id))
}

func (r *donationRepository) Update(ctx context.Context, d *domain.Donation) error {
	query := `UPDATE donations SET title=$1, description=$2, category=$3, quantity=$4, condition=$5,
	          pickup_available=$6, delivery_available=$7, status=$8, approved_by=$9, approved_on=$10, updated_on=$11
	          WHERE id=$12`
	d.UpdatedOn = time.Now().UTC()
	res, err := r.q.ExecContext(ctx, query, d.Title, d.Description, d.Category, d.Quantity, d.Condition,
		d.PickupAvailable, d.DeliveryAvailable, d.Status, d.ApprovedBy, d.ApprovedOn, d.UpdatedOn, d.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "donation")
}

func (r *donationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM donations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "donation")
}

func (r *donationRepository) List(ctx context.Context, f repository.DonationFilter) ([]domain.Donation, int32, error) {
	query := `SELECT ` + donationColumns + ` FROM donations d JOIN users u ON u.id = d.donor_id WHERE 1=1`
	var args []any
	if f.DonorID != "" {
		args = append(args, f.DonorID)
		query += fmt.Sprintf(" AND d.donor_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND d.status = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND d.category = $%d", len(args))
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.q.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(f.Page, f.PageSize)
	args = append(args, pageSize, (page-1)*pageSize)
	query += fmt.Sprintf(" ORDER BY d.created_on DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		d, err := scanDonationRow(rows)
		if err != nil {
			return nil, 0, err
		}
		donations = append(donations, *d)
	}
	return donations, count, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDonationFields(s rowScanner) (*domain.Donation, error) {
	d := &domain.Donation{}
	err := s.Scan(&d.ID, &d.DonorID, &d.DonorName, &d.Title, &d.Description, &d.Category, &d.Quantity,
		&d.Condition, &d.PickupAvailable, &d.DeliveryAvailable, &d.Status, &d.ApprovedBy, &d.ApprovedOn,
		&d.CreatedOn, &d.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func scanDonation(row *sql.Row) (*domain.Donation, error) {
	d, err := scanDonationFields(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("donation: %w", domain.ErrNotFound)
	}
	return d, err
}

func scanDonationRow(rows *sql.Rows) (*domain.Donation, error) {
	return scanDonationFields(rows)
}

func requireRowAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}
	return nil
}

func normalizePage(page, pageSize int32) (int32, int32) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
