package service

import (
	"context"
	"fmt"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"

	"github.com/google/uuid"
)

type requestService struct {
	requestRepo repository.RequestRepository
}

func NewRequestService(requestRepo repository.RequestRepository) RequestService {
	return &requestService{requestRepo: requestRepo}
}

func (s *requestService) CreateRequest(ctx context.Context, actor Actor, input RequestInput) (*domain.Request, error) {
	if actor.Role != domain.RoleRecipient {
		return nil, fmt.Errorf("only recipients can submit requests: %w", domain.ErrForbidden)
	}
	if err := validateRequestInput(input); err != nil {
		return nil, err
	}

	r := &domain.Request{
		ID:          uuid.NewString(),
		RecipientID: actor.ID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Urgency:     input.Urgency,
		FamilySize:  input.FamilySize,
		Situation:   input.Situation,
		Status:      domain.RequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *requestService) GetRequest(ctx context.Context, actor Actor, id string) (*domain.Request, error) {
	r, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleNGOAdmin && r.RecipientID != actor.ID {
		return nil, fmt.Errorf("request %s: %w", id, domain.ErrForbidden)
	}
	return r, nil
}

func (s *requestService) UpdateRequest(ctx context.Context, actor Actor, id string, input RequestInput) (*domain.Request, error) {
	r, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.RecipientID != actor.ID {
		return nil, fmt.Errorf("request %s: %w", id, domain.ErrForbidden)
	}
	if r.Status != domain.RequestStatusPending {
		return nil, fmt.Errorf("request %s: edit in state %s: %w", id, r.Status, domain.ErrInvalidTransition)
	}
	if err := validateRequestInput(input); err != nil {
		return nil, err
	}

	r.Title = input.Title
	r.Description = input.Description
	r.Category = input.Category
	r.Quantity = input.Quantity
	r.Urgency = input.Urgency
	r.FamilySize = input.FamilySize
	r.Situation = input.Situation
	if err := s.requestRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *requestService) DeleteRequest(ctx context.Context, actor Actor, id string) error {
	r, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.RecipientID != actor.ID {
		return fmt.Errorf("request %s: %w", id, domain.ErrForbidden)
	}
	if r.Status != domain.RequestStatusPending {
		return fmt.Errorf("request %s: delete in state %s: %w", id, r.Status, domain.ErrInvalidTransition)
	}
	return s.requestRepo.Delete(ctx, id)
}

func (s *requestService) ListRequests(ctx context.Context, actor Actor, filter repository.RequestFilter) ([]domain.Request, int32, error) {
	switch actor.Role {
	case domain.RoleRecipient:
		filter.RecipientID = actor.ID
	case domain.RoleNGOAdmin:
		// Admins see everything, filtered as requested.
	default:
		return nil, 0, fmt.Errorf("requests are visible to recipients and admins: %w", domain.ErrForbidden)
	}
	return s.requestRepo.List(ctx, filter)
}

func validateRequestInput(input RequestInput) error {
	if input.Title == "" {
		return domain.Validationf("title", "is required")
	}
	if input.Quantity < 1 {
		return domain.Validationf("quantity", "must be at least 1")
	}
	if input.Category == "" {
		return domain.Validationf("category", "is required")
	}
	if input.FamilySize < 1 {
		return domain.Validationf("family_size", "must be at least 1")
	}
	switch input.Urgency {
	case domain.UrgencyLow, domain.UrgencyMedium, domain.UrgencyHigh, domain.UrgencyCritical:
	default:
		return domain.Validationf("urgency", "must be low, medium, high or critical")
	}
	return nil
}
