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

const messageColumns = `m.id, m.sender_id, s.full_name, m.recipient_id, r.full_name, m.subject, m.content, m.is_read, m.created_on`

const messageJoin = ` FROM messages m
	JOIN users s ON s.id = m.sender_id
	JOIN users r ON r.id = m.recipient_id`

type messageRepository struct {
	q DBTX
}

func NewMessageRepository(q DBTX) repository.MessageRepository {
	return &messageRepository{q: q}
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, sender_id, recipient_id, subject, content, is_read, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	m.CreatedOn = time.Now().UTC()
	_, err := r.q.ExecContext(ctx, query, m.ID, m.SenderID, m.RecipientID, m.Subject, m.Content, m.IsRead, m.CreatedOn)
	return err
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	query := `SELECT ` + messageColumns + messageJoin + ` WHERE m.id = $1`
	m := &domain.Message{}
	err := r.q.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.SenderID, &m.SenderName, &m.RecipientID,
		&m.RecipientName, &m.Subject, &m.Content, &m.IsRead, &m.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("message: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *messageRepository) ListInbox(ctx context.Context, recipientID string, page, pageSize int32) ([]domain.Message, int32, error) {
	return r.list(ctx, "m.recipient_id", recipientID, page, pageSize)
}

func (r *messageRepository) ListSent(ctx context.Context, senderID string, page, pageSize int32) ([]domain.Message, int32, error) {
	return r.list(ctx, "m.sender_id", senderID, page, pageSize)
}

func (r *messageRepository) list(ctx context.Context, column, userID string, page, pageSize int32) ([]domain.Message, int32, error) {
	var count int32
	countQuery := `SELECT count(*)` + messageJoin + ` WHERE ` + column + ` = $1`
	if err := r.q.QueryRowContext(ctx, countQuery, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	page, pageSize = normalizePage(page, pageSize)
	query := `SELECT ` + messageColumns + messageJoin + ` WHERE ` + column + ` = $1
	          ORDER BY m.created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.QueryContext(ctx, query, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.SenderName, &m.RecipientID, &m.RecipientName,
			&m.Subject, &m.Content, &m.IsRead, &m.CreatedOn); err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	return messages, count, rows.Err()
}

func (r *messageRepository) MarkAsRead(ctx context.Context, id, recipientID string) error {
	query := `UPDATE messages SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`
	res, err := r.q.ExecContext(ctx, query, id, recipientID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "message")
}
