package service

import (
	"context"
	"fmt"
	"time"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/logger"
	"givehope-backend/internal/repository"
)

type adminService struct {
	donationRepo repository.DonationRepository
	requestRepo  repository.RequestRepository
	userRepo     repository.UserRepository
	statsRepo    repository.StatsRepository
	emailSvc     EmailService
}

func NewAdminService(
	donationRepo repository.DonationRepository,
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	emailSvc EmailService,
) AdminService {
	return &adminService{
		donationRepo: donationRepo,
		requestRepo:  requestRepo,
		userRepo:     userRepo,
		statsRepo:    statsRepo,
		emailSvc:     emailSvc,
	}
}

func requireAdmin(actor Actor) error {
	if actor.Role != domain.RoleNGOAdmin {
		return fmt.Errorf("requires ngo_admin role: %w", domain.ErrForbidden)
	}
	return nil
}

func (s *adminService) ApproveDonation(ctx context.Context, actor Actor, donationID string) (*domain.Donation, error) {
	return s.decideDonation(ctx, actor, donationID, domain.DonationStatusApproved, "")
}

func (s *adminService) RejectDonation(ctx context.Context, actor Actor, donationID, reason string) (*domain.Donation, error) {
	return s.decideDonation(ctx, actor, donationID, domain.DonationStatusRejected, reason)
}

func (s *adminService) decideDonation(ctx context.Context, actor Actor, donationID string, next domain.DonationStatus, reason string) (*domain.Donation, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	d, err := s.donationRepo.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if err := d.Transition(next); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	d.ApprovedBy = &actor.ID
	d.ApprovedOn = &now
	if err := s.donationRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if donor, err := s.userRepo.GetByID(ctx, d.DonorID); err == nil {
		if err := s.emailSvc.SendDonationDecision(ctx, donor.Email, donor.FullName, d.Title, next == domain.DonationStatusApproved, reason); err != nil {
			logger.Warn("donation decision email failed", "donation_id", d.ID, "error", err)
		}
	}
	return d, nil
}

func (s *adminService) ApproveRequest(ctx context.Context, actor Actor, requestID string) (*domain.Request, error) {
	return s.decideRequest(ctx, actor, requestID, domain.RequestStatusApproved, "")
}

func (s *adminService) RejectRequest(ctx context.Context, actor Actor, requestID, reason string) (*domain.Request, error) {
	return s.decideRequest(ctx, actor, requestID, domain.RequestStatusRejected, reason)
}

func (s *adminService) decideRequest(ctx context.Context, actor Actor, requestID string, next domain.RequestStatus, reason string) (*domain.Request, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	r, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if err := r.Transition(next); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	r.ApprovedBy = &actor.ID
	r.ApprovedOn = &now
	if err := s.requestRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	if recipient, err := s.userRepo.GetByID(ctx, r.RecipientID); err == nil {
		if err := s.emailSvc.SendRequestDecision(ctx, recipient.Email, recipient.FullName, r.Title, next == domain.RequestStatusApproved, reason); err != nil {
			logger.Warn("request decision email failed", "request_id", r.ID, "error", err)
		}
	}
	return r, nil
}

func (s *adminService) PendingApprovals(ctx context.Context, actor Actor) (*PendingApprovals, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	donations, _, err := s.donationRepo.List(ctx, repository.DonationFilter{Status: domain.DonationStatusPending, PageSize: 100})
	if err != nil {
		return nil, err
	}
	requests, _, err := s.requestRepo.List(ctx, repository.RequestFilter{Status: domain.RequestStatusPending, PageSize: 100})
	if err != nil {
		return nil, err
	}
	return &PendingApprovals{Donations: donations, Requests: requests}, nil
}

// ApprovedPool returns both sides of the matching view. An approved status
// already implies "not actively matched": match creation moves both sides
// to matched and cancellation moves them back.
func (s *adminService) ApprovedPool(ctx context.Context, actor Actor) (*MatchingPool, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	donations, _, err := s.donationRepo.List(ctx, repository.DonationFilter{Status: domain.DonationStatusApproved, PageSize: 100})
	if err != nil {
		return nil, err
	}
	requests, _, err := s.requestRepo.List(ctx, repository.RequestFilter{Status: domain.RequestStatusApproved, PageSize: 100})
	if err != nil {
		return nil, err
	}
	return &MatchingPool{Donations: donations, Requests: requests}, nil
}

func (s *adminService) Statistics(ctx context.Context, actor Actor) (*domain.Statistics, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.statsRepo.GetStatistics(ctx)
}
