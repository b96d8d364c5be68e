package service

import (
	"context"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockDonationRepo
type MockDonationRepo struct {
	mock.Mock
}

func (m *MockDonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDonationRepo) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}
func (m *MockDonationRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}
func (m *MockDonationRepo) Update(ctx context.Context, d *domain.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDonationRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockDonationRepo) List(ctx context.Context, filter repository.DonationFilter) ([]domain.Donation, int32, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Donation), int32(args.Int(1)), args.Error(2)
}

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, r *domain.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) Update(ctx context.Context, r *domain.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRequestRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRequestRepo) List(ctx context.Context, filter repository.RequestFilter) ([]domain.Request, int32, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Request), int32(args.Int(1)), args.Error(2)
}

// MockMatchRepo
type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) Create(ctx context.Context, match *domain.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}
func (m *MockMatchRepo) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}
func (m *MockMatchRepo) Update(ctx context.Context, match *domain.Match) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}
func (m *MockMatchRepo) List(ctx context.Context, filter repository.MatchFilter) ([]domain.Match, int32, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Match), int32(args.Int(1)), args.Error(2)
}
func (m *MockMatchRepo) ExistsActiveForDonation(ctx context.Context, donationID string) (bool, error) {
	args := m.Called(ctx, donationID)
	return args.Bool(0), args.Error(1)
}
func (m *MockMatchRepo) ExistsActiveForRequest(ctx context.Context, requestID string) (bool, error) {
	args := m.Called(ctx, requestID)
	return args.Bool(0), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockMessageRepo
type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockMessageRepo) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}
func (m *MockMessageRepo) ListInbox(ctx context.Context, recipientID string, page, pageSize int32) ([]domain.Message, int32, error) {
	args := m.Called(ctx, recipientID, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Message), int32(args.Int(1)), args.Error(2)
}
func (m *MockMessageRepo) ListSent(ctx context.Context, senderID string, page, pageSize int32) ([]domain.Message, int32, error) {
	args := m.Called(ctx, senderID, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Message), int32(args.Int(1)), args.Error(2)
}
func (m *MockMessageRepo) MarkAsRead(ctx context.Context, id, recipientID string) error {
	args := m.Called(ctx, id, recipientID)
	return args.Error(0)
}

// MockFeedbackRepo
type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, f *domain.Feedback) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}
func (m *MockFeedbackRepo) ListPublic(ctx context.Context, page, pageSize int32) ([]domain.Feedback, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Feedback), int32(args.Int(1)), args.Error(2)
}

// MockStatsRepo
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendDonationDecision(ctx context.Context, donorEmail, donorName, title string, approved bool, reason string) error {
	args := m.Called(ctx, donorEmail, donorName, title, approved, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendRequestDecision(ctx context.Context, recipientEmail, recipientName, title string, approved bool, reason string) error {
	args := m.Called(ctx, recipientEmail, recipientName, title, approved, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendMatchCreated(ctx context.Context, email, name, donationTitle, requestTitle string) error {
	args := m.Called(ctx, email, name, donationTitle, requestTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendDeliveryCompleted(ctx context.Context, email, name, donationTitle string) error {
	args := m.Called(ctx, email, name, donationTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingApprovalsReminder(ctx context.Context, adminEmail string, pendingDonations, pendingRequests int) error {
	args := m.Called(ctx, adminEmail, pendingDonations, pendingRequests)
	return args.Error(0)
}
func (m *MockEmailService) SendWeeklyDigest(ctx context.Context, adminEmail string, stats *domain.Statistics) error {
	args := m.Called(ctx, adminEmail, stats)
	return args.Error(0)
}

// mockStore aggregates the repo mocks. Transactionally runs the callback
// against the same store so tests observe every call made inside the
// transaction.
type mockStore struct {
	donations *MockDonationRepo
	requests  *MockRequestRepo
	matches   *MockMatchRepo
	users     *MockUserRepo
	messages  *MockMessageRepo
	feedback  *MockFeedbackRepo
	stats     *MockStatsRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		donations: new(MockDonationRepo),
		requests:  new(MockRequestRepo),
		matches:   new(MockMatchRepo),
		users:     new(MockUserRepo),
		messages:  new(MockMessageRepo),
		feedback:  new(MockFeedbackRepo),
		stats:     new(MockStatsRepo),
	}
}

func (s *mockStore) Users() repository.UserRepository         { return s.users }
func (s *mockStore) Donations() repository.DonationRepository { return s.donations }
func (s *mockStore) Requests() repository.RequestRepository   { return s.requests }
func (s *mockStore) Matches() repository.MatchRepository      { return s.matches }
func (s *mockStore) Messages() repository.MessageRepository   { return s.messages }
func (s *mockStore) Feedback() repository.FeedbackRepository  { return s.feedback }
func (s *mockStore) Stats() repository.StatsRepository        { return s.stats }

func (s *mockStore) Transactionally(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
