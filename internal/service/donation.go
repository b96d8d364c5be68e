package service

import (
	"context"
	"fmt"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"

	"github.com/google/uuid"
)

type donationService struct {
	donationRepo repository.DonationRepository
}

func NewDonationService(donationRepo repository.DonationRepository) DonationService {
	return &donationService{donationRepo: donationRepo}
}

func (s *donationService) CreateDonation(ctx context.Context, actor Actor, input DonationInput) (*domain.Donation, error) {
	if actor.Role != domain.RoleDonor {
		return nil, fmt.Errorf("only donors can submit donations: %w", domain.ErrForbidden)
	}
	if err := validateDonationInput(input); err != nil {
		return nil, err
	}

	d := &domain.Donation{
		ID:                uuid.NewString(),
		DonorID:           actor.ID,
		Title:             input.Title,
		Description:       input.Description,
		Category:          input.Category,
		Quantity:          input.Quantity,
		Condition:         input.Condition,
		PickupAvailable:   input.PickupAvailable,
		DeliveryAvailable: input.DeliveryAvailable,
		Status:            domain.DonationStatusPending,
	}
	if err := s.donationRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *donationService) GetDonation(ctx context.Context, actor Actor, id string) (*domain.Donation, error) {
	d, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canSeeDonation(actor, d) {
		return nil, fmt.Errorf("donation %s: %w", id, domain.ErrForbidden)
	}
	return d, nil
}

func (s *donationService) UpdateDonation(ctx context.Context, actor Actor, id string, input DonationInput) (*domain.Donation, error) {
	d, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.DonorID != actor.ID {
		return nil, fmt.Errorf("donation %s: %w", id, domain.ErrForbidden)
	}
	if d.Status != domain.DonationStatusPending {
		return nil, fmt.Errorf("donation %s: edit in state %s: %w", id, d.Status, domain.ErrInvalidTransition)
	}
	if err := validateDonationInput(input); err != nil {
		return nil, err
	}

	d.Title = input.Title
	d.Description = input.Description
	d.Category = input.Category
	d.Quantity = input.Quantity
	d.Condition = input.Condition
	d.PickupAvailable = input.PickupAvailable
	d.DeliveryAvailable = input.DeliveryAvailable
	if err := s.donationRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *donationService) DeleteDonation(ctx context.Context, actor Actor, id string) error {
	d, err := s.donationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d.DonorID != actor.ID {
		return fmt.Errorf("donation %s: %w", id, domain.ErrForbidden)
	}
	if d.Status != domain.DonationStatusPending {
		return fmt.Errorf("donation %s: delete in state %s: %w", id, d.Status, domain.ErrInvalidTransition)
	}
	return s.donationRepo.Delete(ctx, id)
}

func (s *donationService) ListDonations(ctx context.Context, actor Actor, filter repository.DonationFilter) ([]domain.Donation, int32, error) {
	switch actor.Role {
	case domain.RoleDonor:
		// Donors only ever see their own donations.
		filter.DonorID = actor.ID
	case domain.RoleRecipient:
		// Recipients browse the approved catalogue.
		filter.DonorID = ""
		filter.Status = domain.DonationStatusApproved
	case domain.RoleNGOAdmin:
		// Admins see everything, filtered as requested.
	default:
		return nil, 0, fmt.Errorf("unknown role %q: %w", actor.Role, domain.ErrForbidden)
	}
	return s.donationRepo.List(ctx, filter)
}

func canSeeDonation(actor Actor, d *domain.Donation) bool {
	switch actor.Role {
	case domain.RoleNGOAdmin:
		return true
	case domain.RoleDonor:
		return d.DonorID == actor.ID
	case domain.RoleRecipient:
		return d.Status != domain.DonationStatusPending && d.Status != domain.DonationStatusRejected
	}
	return false
}

func validateDonationInput(input DonationInput) error {
	if input.Title == "" {
		return domain.Validationf("title", "is required")
	}
	if input.Quantity < 1 {
		return domain.Validationf("quantity", "must be at least 1")
	}
	if input.Category == "" {
		return domain.Validationf("category", "is required")
	}
	if input.Condition == "" {
		return domain.Validationf("condition", "is required")
	}
	return nil
}
