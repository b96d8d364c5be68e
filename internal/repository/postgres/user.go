package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"

	"github.com/lib/pq"
)

type userRepository struct {
	q DBTX
}

func NewUserRepository(q DBTX) repository.UserRepository {
	return &userRepository{q: q}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, email, password_hash, full_name, role, phone, city, verified, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	u.CreatedOn = time.Now().UTC()
	_, err := r.q.ExecContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.FullName, u.Role, u.Phone, u.City, u.Verified, u.CreatedOn)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, full_name, role, phone, city, verified, created_on FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, full_name, role, phone, city, verified, created_on FROM users WHERE email = $1`
	return r.scanOne(r.q.QueryRowContext(ctx, query, email))
}

func (r *userRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	query := `SELECT id, email, password_hash, full_name, role, phone, city, verified, created_on
	          FROM users WHERE role = $1 ORDER BY created_on`
	rows, err := r.q.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.Phone, &u.City, &u.Verified, &u.CreatedOn); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.Phone, &u.City, &u.Verified, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
