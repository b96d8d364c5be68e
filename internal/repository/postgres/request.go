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

const requestColumns = `r.id, r.recipient_id, u.full_name, r.title, r.description, r.category, r.quantity,
	r.urgency, r.family_size, r.situation, r.status, r.approved_by, r.approved_on, r.created_on, r.updated_on`

type requestRepository struct {
	q DBTX
}

func NewRequestRepository(q DBTX) repository.RequestRepository {
	return &requestRepository{q: q}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	query := `INSERT INTO requests (id, recipient_id, title, description, category, quantity, urgency,
	          family_size, situation, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	now := time.Now().UTC()
	req.CreatedOn = now
	req.UpdatedOn = now
	_, err := r.q.ExecContext(ctx, query, req.ID, req.RecipientID, req.Title, req.Description, req.Category,
		req.Quantity, req.Urgency, req.FamilySize, req.Situation, req.Status, req.CreatedOn, req.UpdatedOn)
	return err
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests r JOIN users u ON u.id = r.recipient_id WHERE r.id = $1`
	return scanRequest(r.q.QueryRowContext(ctx, query, id))
}

// GetByIDForUpdate locks the request row for the rest of the transaction.
func (r *requestRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Request, error) {
	query := `SELECT id, recipient_id, '', title, description, category, quantity,
	          urgency, family_size, situation, status, approved_by, approved_on, created_on, updated_on
	          FROM requests WHERE id = $1 FOR UPDATE`
	return scanRequest(r.q.QueryRowContext(ctx, query, id))
}

func (r *requestRepository) Update(ctx context.Context, req *domain.Request) error {
	query := `UPDATE requests SET title=$1, description=$2, category=$3, quantity=$4, urgency=$5,
	          family_size=$6, situation=$7, status=$8, approved_by=$9, approved_on=$10, updated_on=$11
	          WHERE id=$12`
	req.UpdatedOn = time.Now().UTC()
	res, err := r.q.ExecContext(ctx, query, req.Title, req.Description, req.Category, req.Quantity, req.Urgency,
		req.FamilySize, req.Situation, req.Status, req.ApprovedBy, req.ApprovedOn, req.UpdatedOn, req.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "request")
}

func (r *requestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "request")
}

func (r *requestRepository) List(ctx context.Context, f repository.RequestFilter) ([]domain.Request, int32, error) {
	query := `SELECT ` + requestColumns + ` FROM requests r JOIN users u ON u.id = r.recipient_id WHERE 1=1`
	var args []any
	if f.RecipientID != "" {
		args = append(args, f.RecipientID)
		query += fmt.Sprintf(" AND r.recipient_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND r.category = $%d", len(args))
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.q.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	page, pageSize := normalizePage(f.Page, f.PageSize)
	args = append(args, pageSize, (page-1)*pageSize)
	query += fmt.Sprintf(" ORDER BY r.created_on DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		req, err := scanRequestFields(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, *req)
	}
	return requests, count, rows.Err()
}

func scanRequestFields(s rowScanner) (*domain.Request, error) {
	req := &domain.Request{}
	err := s.Scan(&req.ID, &req.RecipientID, &req.RecipientName, &req.Title, &req.Description, &req.Category,
		&req.Quantity, &req.Urgency, &req.FamilySize, &req.Situation, &req.Status, &req.ApprovedBy,
		&req.ApprovedOn, &req.CreatedOn, &req.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return req, nil
}

func scanRequest(row *sql.Row) (*domain.Request, error) {
	req, err := scanRequestFields(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("request: %w", domain.ErrNotFound)
	}
	return req, err
}
