package service

import (
	"context"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"
)

// Actor is the caller identity every operation receives explicitly. There
// is no ambient "current user"; handlers build an Actor from the verified
// token and pass it down.
type Actor struct {
	ID   string
	Role domain.Role
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     domain.Role
	Phone    string
	City     string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type DonationInput struct {
	Title             string
	Description       string
	Category          domain.ItemCategory
	Quantity          int32
	Condition         domain.ItemCondition
	PickupAvailable   bool
	DeliveryAvailable bool
}

type DonationService interface {
	CreateDonation(ctx context.Context, actor Actor, input DonationInput) (*domain.Donation, error)
	GetDonation(ctx context.Context, actor Actor, id string) (*domain.Donation, error)
	UpdateDonation(ctx context.Context, actor Actor, id string, input DonationInput) (*domain.Donation, error)
	DeleteDonation(ctx context.Context, actor Actor, id string) error
	ListDonations(ctx context.Context, actor Actor, filter repository.DonationFilter) ([]domain.Donation, int32, error)
}

type RequestInput struct {
	Title       string
	Description string
	Category    domain.ItemCategory
	Quantity    int32
	Urgency     domain.UrgencyLevel
	FamilySize  int32
	Situation   string
}

type RequestService interface {
	CreateRequest(ctx context.Context, actor Actor, input RequestInput) (*domain.Request, error)
	GetRequest(ctx context.Context, actor Actor, id string) (*domain.Request, error)
	UpdateRequest(ctx context.Context, actor Actor, id string, input RequestInput) (*domain.Request, error)
	DeleteRequest(ctx context.Context, actor Actor, id string) error
	ListRequests(ctx context.Context, actor Actor, filter repository.RequestFilter) ([]domain.Request, int32, error)
}

// PendingApprovals is the NGO admin's review queue.
type PendingApprovals struct {
	Donations []domain.Donation `json:"donations"`
	Requests  []domain.Request  `json:"requests"`
}

// MatchingPool holds the two columns of the matching view: approved
// donations and approved requests not currently linked to an active match.
type MatchingPool struct {
	Donations []domain.Donation `json:"donations"`
	Requests  []domain.Request  `json:"requests"`
}

type AdminService interface {
	ApproveDonation(ctx context.Context, actor Actor, donationID string) (*domain.Donation, error)
	RejectDonation(ctx context.Context, actor Actor, donationID, reason string) (*domain.Donation, error)
	ApproveRequest(ctx context.Context, actor Actor, requestID string) (*domain.Request, error)
	RejectRequest(ctx context.Context, actor Actor, requestID, reason string) (*domain.Request, error)
	PendingApprovals(ctx context.Context, actor Actor) (*PendingApprovals, error)
	ApprovedPool(ctx context.Context, actor Actor) (*MatchingPool, error)
	Statistics(ctx context.Context, actor Actor) (*domain.Statistics, error)
}

type MatchService interface {
	CreateMatch(ctx context.Context, actor Actor, donationID, requestID, notes string) (*domain.Match, error)
	GetMatch(ctx context.Context, actor Actor, id string) (*domain.Match, error)
	ListMatches(ctx context.Context, actor Actor, filter repository.MatchFilter) ([]domain.Match, int32, error)
	AdvanceDelivery(ctx context.Context, actor Actor, matchID string, next domain.DeliveryStatus) (*domain.Match, error)
	CancelMatch(ctx context.Context, actor Actor, matchID string) (*domain.Match, error)
}

type MessageService interface {
	SendMessage(ctx context.Context, actor Actor, recipientID, subject, content string) (*domain.Message, error)
	Inbox(ctx context.Context, actor Actor, page, pageSize int32) ([]domain.Message, int32, error)
	Sent(ctx context.Context, actor Actor, page, pageSize int32) ([]domain.Message, int32, error)
	MarkAsRead(ctx context.Context, actor Actor, messageID string) error
}

type FeedbackService interface {
	SubmitFeedback(ctx context.Context, actor Actor, matchID *string, rating int32, comment string, isPublic bool) (*domain.Feedback, error)
	ListPublicFeedback(ctx context.Context, page, pageSize int32) ([]domain.Feedback, int32, error)
}

type EmailService interface {
	SendDonationDecision(ctx context.Context, donorEmail, donorName, title string, approved bool, reason string) error
	SendRequestDecision(ctx context.Context, recipientEmail, recipientName, title string, approved bool, reason string) error
	SendMatchCreated(ctx context.Context, email, name, donationTitle, requestTitle string) error
	SendDeliveryCompleted(ctx context.Context, email, name, donationTitle string) error
	SendPendingApprovalsReminder(ctx context.Context, adminEmail string, pendingDonations, pendingRequests int) error
	SendWeeklyDigest(ctx context.Context, adminEmail string, stats *domain.Statistics) error
}
