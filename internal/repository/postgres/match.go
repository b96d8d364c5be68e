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

const matchColumns = `id, donation_id, request_id, matched_by, status, delivery_status, notes, completed_on, created_on, updated_on`

type matchRepository struct {
	q DBTX
}

func NewMatchRepository(q DBTX) repository.MatchRepository {
	return &matchRepository{q: q}
}

func (r *matchRepository) Create(ctx context.Context, m *domain.Match) error {
	query := `INSERT INTO matches (id, donation_id, request_id, matched_by, status, delivery_status, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now().UTC()
	m.CreatedOn = now
	m.UpdatedOn = now
	_, err := r.q.ExecContext(ctx, query, m.ID, m.DonationID, m.RequestID, m.MatchedBy, m.Status,
		m.DeliveryStatus, m.Notes, m.CreatedOn, m.UpdatedOn)
	return err
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	m := &domain.Match{}
	err := r.q.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.DonationID, &m.RequestID, &m.MatchedBy,
		&m.Status, &m.DeliveryStatus, &m.Notes, &m.CompletedOn, &m.CreatedOn, &m.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("match: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *matchRepository) Update(ctx context.Context, m *domain.Match) error {
	query := `UPDATE matches SET status=$1, delivery_status=$2, notes=$3, completed_on=$4, updated_on=$5 WHERE id=$6`
	m.UpdatedOn = time.Now().UTC()
	res, err := r.q.ExecContext(ctx, query, m.Status, m.DeliveryStatus, m.Notes, m.CompletedOn, m.UpdatedOn, m.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "match")
}

func (r *matchRepository) List(ctx context.Context, f repository.MatchFilter) ([]domain.Match, int32, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE 1=1`
	var args []any
	if f.UserID != "" {
		args = append(args, f.UserID)
		query += fmt.Sprintf(` AND (donation_id IN (SELECT id FROM donations WHERE donor_id = $%d)
		        OR request_id IN (SELECT id FROM requests WHERE recipient_id = $%d))`, len(args), len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.q.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(f.Page, f.PageSize)
	args = append(args, pageSize, (page-1)*pageSize)
	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(&m.ID, &m.DonationID, &m.RequestID, &m.MatchedBy, &m.Status, &m.DeliveryStatus,
			&m.Notes, &m.CompletedOn, &m.CreatedOn, &m.UpdatedOn); err != nil {
			return nil, 0, err
		}
		matches = append(matches, m)
	}
	return matches, count, rows.Err()
}

func (r *matchRepository) ExistsActiveForDonation(ctx context.Context, donationID string) (bool, error) {
	return r.existsActive(ctx, "donation_id", donationID)
}

func (r *matchRepository) ExistsActiveForRequest(ctx context.Context, requestID string) (bool, error) {
	return r.existsActive(ctx, "request_id", requestID)
}

func (r *matchRepository) existsActive(ctx context.Context, column, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM matches WHERE %s = $1 AND status <> $2)`, column)
	var exists bool
	err := r.q.QueryRowContext(ctx, query, id, domain.MatchStatusCancelled).Scan(&exists)
	return exists, err
}
