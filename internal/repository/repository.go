package repository

import (
	"context"

	"givehope-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}

// DonationFilter narrows donation listings. Zero values mean "no filter".
type DonationFilter struct {
	DonorID  string
	Status   domain.DonationStatus
	Category domain.ItemCategory
	Page     int32
	PageSize int32
}

type DonationRepository interface {
	Create(ctx context.Context, d *domain.Donation) error
	GetByID(ctx context.Context, id string) (*domain.Donation, error)
	// GetByIDForUpdate locks the row until the surrounding transaction
	// ends. Call it only inside Store.Transactionally.
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Donation, error)
	Update(ctx context.Context, d *domain.Donation) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter DonationFilter) ([]domain.Donation, int32, error)
}

// RequestFilter narrows request listings. Zero values mean "no filter".
type RequestFilter struct {
	RecipientID string
	Status      domain.RequestStatus
	Category    domain.ItemCategory
	Page        int32
	PageSize    int32
}

type RequestRepository interface {
	Create(ctx context.Context, r *domain.Request) error
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Request, error)
	Update(ctx context.Context, r *domain.Request) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter RequestFilter) ([]domain.Request, int32, error)
}

// MatchFilter narrows match listings. UserID matches either side of the
// pairing through the linked donation and request.
type MatchFilter struct {
	UserID   string
	Status   domain.MatchStatus
	Page     int32
	PageSize int32
}

type MatchRepository interface {
	Create(ctx context.Context, m *domain.Match) error
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	Update(ctx context.Context, m *domain.Match) error
	List(ctx context.Context, filter MatchFilter) ([]domain.Match, int32, error)
	// ExistsActiveForDonation reports whether the donation is linked to a
	// non-cancelled match.
	ExistsActiveForDonation(ctx context.Context, donationID string) (bool, error)
	ExistsActiveForRequest(ctx context.Context, requestID string) (bool, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	ListInbox(ctx context.Context, recipientID string, page, pageSize int32) ([]domain.Message, int32, error)
	ListSent(ctx context.Context, senderID string, page, pageSize int32) ([]domain.Message, int32, error)
	MarkAsRead(ctx context.Context, id, recipientID string) error
}

type FeedbackRepository interface {
	Create(ctx context.Context, f *domain.Feedback) error
	ListPublic(ctx context.Context, page, pageSize int32) ([]domain.Feedback, int32, error)
}

type StatsRepository interface {
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}

// Store aggregates the repositories and provides transactional execution.
// Inside Transactionally the callback receives a Store whose repositories
// share one database transaction; the whole callback commits or rolls back
// as a unit.
type Store interface {
	Users() UserRepository
	Donations() DonationRepository
	Requests() RequestRepository
	Matches() MatchRepository
	Messages() MessageRepository
	Feedback() FeedbackRepository
	Stats() StatsRepository
	Transactionally(ctx context.Context, fn func(Store) error) error
}
