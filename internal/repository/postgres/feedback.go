package postgres

import (
	"context"
	"time"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"
)

type feedbackRepository struct {
	q DBTX
}

func NewFeedbackRepository(q DBTX) repository.FeedbackRepository {
	return &feedbackRepository{q: q}
}

func (r *feedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	query := `INSERT INTO feedback (id, user_id, match_id, rating, comment, is_public, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	f.CreatedOn = time.Now().UTC()
	_, err := r.q.ExecContext(ctx, query, f.ID, f.UserID, f.MatchID, f.Rating, f.Comment, f.IsPublic, f.CreatedOn)
	return err
}

func (r *feedbackRepository) ListPublic(ctx context.Context, page, pageSize int32) ([]domain.Feedback, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM feedback WHERE is_public = TRUE`
	if err := r.q.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	query := `SELECT f.id, f.user_id, u.full_name, u.role, f.match_id, f.rating, f.comment, f.is_public, f.created_on
	          FROM feedback f JOIN users u ON u.id = f.user_id
	          WHERE f.is_public = TRUE ORDER BY f.created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.UserName, &f.UserRole, &f.MatchID, &f.Rating,
			&f.Comment, &f.IsPublic, &f.CreatedOn); err != nil {
			return nil, 0, err
		}
		entries = append(entries, f)
	}
	return entries, count, rows.Err()
}
