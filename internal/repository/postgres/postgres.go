package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"givehope-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx, so the
// same repository code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB // nil when this store is transaction-scoped

	users     repository.UserRepository
	donations repository.DonationRepository
	requests  repository.RequestRepository
	matches   repository.MatchRepository
	messages  repository.MessageRepository
	feedback  repository.FeedbackRepository
	stats     repository.StatsRepository
}

func NewStore(db *sql.DB) *Store {
	s := newStore(db)
	s.db = db
	return s
}

func newStore(q DBTX) *Store {
	return &Store{
		users:     NewUserRepository(q),
		donations: NewDonationRepository(q),
		requests:  NewRequestRepository(q),
		matches:   NewMatchRepository(q),
		messages:  NewMessageRepository(q),
		feedback:  NewFeedbackRepository(q),
		stats:     NewStatsRepository(q),
	}
}

func (s *Store) Users() repository.UserRepository         { return s.users }
func (s *Store) Donations() repository.DonationRepository { return s.donations }
func (s *Store) Requests() repository.RequestRepository   { return s.requests }
func (s *Store) Matches() repository.MatchRepository      { return s.matches }
func (s *Store) Messages() repository.MessageRepository   { return s.messages }
func (s *Store) Feedback() repository.FeedbackRepository  { return s.feedback }
func (s *Store) Stats() repository.StatsRepository        { return s.stats }

// Transactionally runs fn against a transaction-scoped store. A store that
// is already transaction-scoped reuses its transaction, so nested calls
// compose into one commit.
func (s *Store) Transactionally(ctx context.Context, fn func(repository.Store) error) error {
	if s.db == nil {
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(newStore(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
