package service

import (
	"context"
	"testing"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func approvedPair() (*domain.Donation, *domain.Request) {
	d := &domain.Donation{ID: "don-1", DonorID: "donor-1", Title: "Winter coats", Status: domain.DonationStatusApproved}
	r := &domain.Request{ID: "req-1", RecipientID: "rcpt-1", Title: "Warm clothing", Status: domain.RequestStatusApproved}
	return d, r
}

func TestMatchService_CreateMatch(t *testing.T) {
	ctx := context.Background()
	admin := Actor{ID: "admin-1", Role: domain.RoleNGOAdmin}

	t.Run("Success", func(t *testing.T) {
		store := newMockStore()
		emailSvc := new(MockEmailService)
		svc := NewMatchService(store, emailSvc)

		d, r := approvedPair()
		store.donations.On("GetByIDForUpdate", ctx, "don-1").Return(d, nil)
		store.requests.On("GetByIDForUpdate", ctx, "req-1").Return(r, nil)
		store.matches.On("ExistsActiveForDonation", ctx, "don-1").Return(false, nil)
		store.matches.On("ExistsActiveForRequest", ctx, "req-1").Return(false, nil)
		store.matches.On("Create", ctx, mock.AnythingOfType("*domain.Match")).Return(nil)
		store.donations.On("Update", ctx, d).Return(nil)
		store.requests.On("Update", ctx, r).Return(nil)

		// Post-commit notifications
		store.donations.On("GetByID", ctx, "don-1").Return(d, nil)
		store.requests.On("GetByID", ctx, "req-1").Return(r, nil)
		store.users.On("GetByID", ctx, "donor-1").Return(&domain.User{ID: "donor-1", Email: "donor@test.com", FullName: "Donor"}, nil)
		store.users.On("GetByID", ctx, "rcpt-1").Return(&domain.User{ID: "rcpt-1", Email: "rcpt@test.com", FullName: "Recipient"}, nil)
		emailSvc.On("SendMatchCreated", ctx, mock.Anything, mock.Anything, "Winter coats", "Warm clothing").Return(nil)

		m, err := svc.CreateMatch(ctx, admin, "don-1", "req-1", "call before pickup")
		assert.NoError(t, err)
		assert.NotNil(t, m)
		assert.Equal(t, domain.MatchStatusPending, m.Status)
		assert.Equal(t, domain.DeliveryStatusPending, m.DeliveryStatus)
		assert.Equal(t, "admin-1", m.MatchedBy)
		assert.Equal(t, domain.DonationStatusMatched, d.Status)
		assert.Equal(t, domain.RequestStatusMatched, r.Status)
		store.matches.AssertExpectations(t)
		emailSvc.AssertNumberOfCalls(t, "SendMatchCreated", 2)
	})

	t.Run("DonationNotApproved", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		d, r := approvedPair()
		d.Status = domain.DonationStatusPending
		store.donations.On("GetByIDForUpdate", ctx, "don-1").Return(d, nil)
		store.requests.On("GetByIDForUpdate", ctx, "req-1").Return(r, nil)

		m, err := svc.CreateMatch(ctx, admin, "don-1", "req-1", "")
		assert.ErrorIs(t, err, domain.ErrMatchConflict)
		assert.Nil(t, m)
		assert.Equal(t, domain.DonationStatusPending, d.Status)
		assert.Equal(t, domain.RequestStatusApproved, r.Status)
		store.matches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DonationAlreadyMatched", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		d, r := approvedPair()
		store.donations.On("GetByIDForUpdate", ctx, "don-1").Return(d, nil)
		store.requests.On("GetByIDForUpdate", ctx, "req-1").Return(r, nil)
		store.matches.On("ExistsActiveForDonation", ctx, "don-1").Return(true, nil)

		m, err := svc.CreateMatch(ctx, admin, "don-1", "req-1", "")
		assert.ErrorIs(t, err, domain.ErrMatchConflict)
		assert.Nil(t, m)
		assert.Equal(t, domain.DonationStatusApproved, d.Status)
		store.matches.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		m, err := svc.CreateMatch(ctx, Actor{ID: "donor-1", Role: domain.RoleDonor}, "don-1", "req-1", "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Nil(t, m)
	})

	t.Run("DonationNotFound", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		store.donations.On("GetByIDForUpdate", ctx, "missing").Return(nil, domain.ErrNotFound)

		m, err := svc.CreateMatch(ctx, admin, "missing", "req-1", "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, m)
	})
}

func TestMatchService_AdvanceDelivery(t *testing.T) {
	ctx := context.Background()
	admin := Actor{ID: "admin-1", Role: domain.RoleNGOAdmin}

	t.Run("ScheduledConfirmsMatch", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		m := &domain.Match{ID: "m1", DonationID: "don-1", RequestID: "req-1", Status: domain.MatchStatusPending, DeliveryStatus: domain.DeliveryStatusPending}
		store.matches.On("GetByID", ctx, "m1").Return(m, nil)
		store.matches.On("Update", ctx, m).Return(nil)

		got, err := svc.AdvanceDelivery(ctx, admin, "m1", domain.DeliveryStatusScheduled)
		assert.NoError(t, err)
		assert.Equal(t, domain.MatchStatusConfirmed, got.Status)
		assert.Equal(t, domain.DeliveryStatusScheduled, got.DeliveryStatus)
	})

	t.Run("InTransitMovesDonation", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		m := &domain.Match{ID: "m1", DonationID: "don-1", RequestID: "req-1", Status: domain.MatchStatusConfirmed, DeliveryStatus: domain.DeliveryStatusScheduled}
		d := &domain.Donation{ID: "don-1", Status: domain.DonationStatusMatched}
		store.matches.On("GetByID", ctx, "m1").Return(m, nil)
		store.donations.On("GetByIDForUpdate", ctx, "don-1").Return(d, nil)
		store.donations.On("Update", ctx, d).Return(nil)
		store.matches.On("Update", ctx, m).Return(nil)

		got, err := svc.AdvanceDelivery(ctx, admin, "m1", domain.DeliveryStatusInTransit)
		assert.NoError(t, err)
		assert.Equal(t, domain.MatchStatusInProgress, got.Status)
		assert.Equal(t, domain.DonationStatusInTransit, d.Status)
	})

	t.Run("DeliveredCascades", func(t *testing.T) {
		store := newMockStore()
		emailSvc := new(MockEmailService)
		svc := NewMatchService(store, emailSvc)

		m := &domain.Match{ID: "m1", DonationID: "don-1", RequestID: "req-1", Status: domain.MatchStatusInProgress, DeliveryStatus: domain.DeliveryStatusInTransit}
		d := &domain.Donation{ID: "don-1", DonorID: "donor-1", Title: "Winter coats", Status: domain.DonationStatusInTransit}
		r := &domain.Request{ID: "req-1", RecipientID: "rcpt-1", Title: "Warm clothing", Status: domain.RequestStatusMatched}
		store.matches.On("GetByID", ctx, "m1").Return(m, nil)
		store.donations.On("GetByIDForUpdate", ctx, "don-1").Return(d, nil)
		store.requests.On("GetByIDForUpdate", ctx, "req-1").Return(r, nil)
		store.donations.On("Update", ctx, d).Return(nil)
		store.requests.On("Update", ctx, r).Return(nil)
		store.matches.On("Update", ctx, m).Return(nil)

		store.donations.On("GetByID", ctx, "don-1").Return(d, nil)
		store.requests.On("GetByID", ctx, "req-1").Return(r, nil)
		store.users.On("GetByID", ctx, "donor-1").Return(&domain.User{ID: "donor-1", Email: "donor@test.com", FullName: "Donor"}, nil)
		store.users.On("GetByID", ctx, "rcpt-1").Return(&domain.User{ID: "rcpt-1", Email: "rcpt@test.com", FullName: "Recipient"}, nil)
		emailSvc.On("SendDeliveryCompleted", ctx, mock.Anything, mock.Anything, "Winter coats").Return(nil)

		got, err := svc.AdvanceDelivery(ctx, admin, "m1", domain.DeliveryStatusDelivered)
		assert.NoError(t, err)
		assert.Equal(t, domain.MatchStatusCompleted, got.Status)
		assert.NotNil(t, got.CompletedOn)
		assert.Equal(t, domain.DonationStatusDelivered, d.Status)
		assert.Equal(t, domain.RequestStatusFulfilled, r.Status)
		emailSvc.AssertNumberOfCalls(t, "SendDeliveryCompleted", 2)
	})

	t.Run("SkippingStepRejected", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		m := &domain.Match{ID: "m1", DonationID: "don-1", RequestID: "req-1", Status: domain.MatchStatusPending, DeliveryStatus: domain.DeliveryStatusPending}
		store.matches.On("GetByID", ctx, "m1").Return(m, nil)

		got, err := svc.AdvanceDelivery(ctx, admin, "m1", domain.DeliveryStatusDelivered)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Nil(t, got)
		store.matches.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestMatchService_CancelMatch(t *testing.T) {
	ctx := context.Background()
	admin := Actor{ID: "admin-1", Role: domain.RoleNGOAdmin}

	t.Run("ReturnsBothSidesToPool", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		m := &domain.Match{ID: "m1", DonationID: "don-1", RequestID: "req-1", Status: domain.MatchStatusConfirmed, DeliveryStatus: domain.DeliveryStatusScheduled}
		d := &domain.Donation{ID: "don-1", Status: domain.DonationStatusMatched}
		r := &domain.Request{ID: "req-1", Status: domain.RequestStatusMatched}
		store.matches.On("GetByID", ctx, "m1").Return(m, nil)
		store.donations.On("GetByIDForUpdate", ctx, "don-1").Return(d, nil)
		store.requests.On("GetByIDForUpdate", ctx, "req-1").Return(r, nil)
		store.matches.On("Update", ctx, m).Return(nil)
		store.donations.On("Update", ctx, d).Return(nil)
		store.requests.On("Update", ctx, r).Return(nil)

		got, err := svc.CancelMatch(ctx, admin, "m1")
		assert.NoError(t, err)
		assert.Equal(t, domain.MatchStatusCancelled, got.Status)
		assert.Equal(t, domain.DonationStatusApproved, d.Status)
		assert.Equal(t, domain.RequestStatusApproved, r.Status)
	})

	t.Run("InTransitRejected", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		m := &domain.Match{ID: "m1", DonationID: "don-1", RequestID: "req-1", Status: domain.MatchStatusInProgress, DeliveryStatus: domain.DeliveryStatusInTransit}
		store.matches.On("GetByID", ctx, "m1").Return(m, nil)

		got, err := svc.CancelMatch(ctx, admin, "m1")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Nil(t, got)
		store.matches.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestMatchService_ListMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("NonAdminScopedToSelf", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		store.matches.On("List", ctx, repository.MatchFilter{UserID: "donor-1"}).Return([]domain.Match{}, 0, nil)

		_, _, err := svc.ListMatches(ctx, Actor{ID: "donor-1", Role: domain.RoleDonor}, repository.MatchFilter{UserID: "someone-else"})
		assert.NoError(t, err)
		store.matches.AssertExpectations(t)
	})

	t.Run("AdminSeesAll", func(t *testing.T) {
		store := newMockStore()
		svc := NewMatchService(store, new(MockEmailService))

		store.matches.On("List", ctx, repository.MatchFilter{Status: domain.MatchStatusCompleted}).Return([]domain.Match{}, 0, nil)

		_, _, err := svc.ListMatches(ctx, Actor{ID: "admin-1", Role: domain.RoleNGOAdmin}, repository.MatchFilter{Status: domain.MatchStatusCompleted})
		assert.NoError(t, err)
		store.matches.AssertExpectations(t)
	})
}
