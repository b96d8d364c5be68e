package service

import (
	"context"
	"fmt"
	"time"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/logger"
	"givehope-backend/internal/repository"

	"github.com/google/uuid"
)

type matchService struct {
	store    repository.Store
	emailSvc EmailService
}

func NewMatchService(store repository.Store, emailSvc EmailService) MatchService {
	return &matchService{store: store, emailSvc: emailSvc}
}

// CreateMatch pairs one approved donation with one approved request. The
// whole effect (match row plus both status changes) commits atomically;
// concurrent admins matching the same side serialize on the row locks and
// the loser sees a non-approved status.
func (s *matchService) CreateMatch(ctx context.Context, actor Actor, donationID, requestID, notes string) (*domain.Match, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var match *domain.Match
	err := s.store.Transactionally(ctx, func(tx repository.Store) error {
		d, err := tx.Donations().GetByIDForUpdate(ctx, donationID)
		if err != nil {
			return err
		}
		r, err := tx.Requests().GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if d.Status != domain.DonationStatusApproved {
			return fmt.Errorf("donation %s is %s, not approved: %w", d.ID, d.Status, domain.ErrMatchConflict)
		}
		if r.Status != domain.RequestStatusApproved {
			return fmt.Errorf("request %s is %s, not approved: %w", r.ID, r.Status, domain.ErrMatchConflict)
		}
		if busy, err := tx.Matches().ExistsActiveForDonation(ctx, d.ID); err != nil {
			return err
		} else if busy {
			return fmt.Errorf("donation %s already has an active match: %w", d.ID, domain.ErrMatchConflict)
		}
		if busy, err := tx.Matches().ExistsActiveForRequest(ctx, r.ID); err != nil {
			return err
		} else if busy {
			return fmt.Errorf("request %s already has an active match: %w", r.ID, domain.ErrMatchConflict)
		}

		if err := d.Transition(domain.DonationStatusMatched); err != nil {
			return err
		}
		if err := r.Transition(domain.RequestStatusMatched); err != nil {
			return err
		}

		match = &domain.Match{
			ID:             uuid.NewString(),
			DonationID:     d.ID,
			RequestID:      r.ID,
			MatchedBy:      actor.ID,
			Status:         domain.MatchStatusPending,
			DeliveryStatus: domain.DeliveryStatusPending,
			Notes:          notes,
		}
		if err := tx.Matches().Create(ctx, match); err != nil {
			return err
		}
		if err := tx.Donations().Update(ctx, d); err != nil {
			return err
		}
		return tx.Requests().Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	s.notifyMatchParties(ctx, match, func(email, name, donationTitle, requestTitle string) error {
		return s.emailSvc.SendMatchCreated(ctx, email, name, donationTitle, requestTitle)
	})
	return match, nil
}

func (s *matchService) GetMatch(ctx context.Context, actor Actor, id string) (*domain.Match, error) {
	m, err := s.store.Matches().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleNGOAdmin {
		return m, nil
	}
	ok, err := s.isParticipant(ctx, actor, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("match %s: %w", id, domain.ErrForbidden)
	}
	return m, nil
}

func (s *matchService) ListMatches(ctx context.Context, actor Actor, filter repository.MatchFilter) ([]domain.Match, int32, error) {
	if actor.Role != domain.RoleNGOAdmin {
		// Donors and recipients only see pairings they are part of.
		filter.UserID = actor.ID
	}
	return s.store.Matches().List(ctx, filter)
}

// AdvanceDelivery moves the delivery one step. On reaching delivered it
// cascades, in the same transaction: donation -> delivered, request ->
// fulfilled, match -> completed with completed_on set. The linear step
// check makes the cascade fire exactly once.
func (s *matchService) AdvanceDelivery(ctx context.Context, actor Actor, matchID string, next domain.DeliveryStatus) (*domain.Match, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var match *domain.Match
	err := s.store.Transactionally(ctx, func(tx repository.Store) error {
		m, err := tx.Matches().GetByID(ctx, matchID)
		if err != nil {
			return err
		}
		if err := m.AdvanceDelivery(next); err != nil {
			return err
		}

		switch next {
		case domain.DeliveryStatusInTransit:
			d, err := tx.Donations().GetByIDForUpdate(ctx, m.DonationID)
			if err != nil {
				return err
			}
			if err := d.Transition(domain.DonationStatusInTransit); err != nil {
				return err
			}
			if err := tx.Donations().Update(ctx, d); err != nil {
				return err
			}
		case domain.DeliveryStatusDelivered:
			d, err := tx.Donations().GetByIDForUpdate(ctx, m.DonationID)
			if err != nil {
				return err
			}
			r, err := tx.Requests().GetByIDForUpdate(ctx, m.RequestID)
			if err != nil {
				return err
			}
			if err := d.Transition(domain.DonationStatusDelivered); err != nil {
				return err
			}
			if err := r.Transition(domain.RequestStatusFulfilled); err != nil {
				return err
			}
			now := time.Now().UTC()
			m.CompletedOn = &now
			if err := tx.Donations().Update(ctx, d); err != nil {
				return err
			}
			if err := tx.Requests().Update(ctx, r); err != nil {
				return err
			}
		}

		match = m
		return tx.Matches().Update(ctx, m)
	})
	if err != nil {
		return nil, err
	}

	if next == domain.DeliveryStatusDelivered {
		s.notifyMatchParties(ctx, match, func(email, name, donationTitle, _ string) error {
			return s.emailSvc.SendDeliveryCompleted(ctx, email, name, donationTitle)
		})
	}
	return match, nil
}

// CancelMatch voids a match before the item moves, returning both sides to
// the approved pool.
func (s *matchService) CancelMatch(ctx context.Context, actor Actor, matchID string) (*domain.Match, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var match *domain.Match
	err := s.store.Transactionally(ctx, func(tx repository.Store) error {
		m, err := tx.Matches().GetByID(ctx, matchID)
		if err != nil {
			return err
		}
		if err := m.Cancel(); err != nil {
			return err
		}

		d, err := tx.Donations().GetByIDForUpdate(ctx, m.DonationID)
		if err != nil {
			return err
		}
		r, err := tx.Requests().GetByIDForUpdate(ctx, m.RequestID)
		if err != nil {
			return err
		}
		if err := d.Transition(domain.DonationStatusApproved); err != nil {
			return err
		}
		if err := r.Transition(domain.RequestStatusApproved); err != nil {
			return err
		}

		if err := tx.Matches().Update(ctx, m); err != nil {
			return err
		}
		if err := tx.Donations().Update(ctx, d); err != nil {
			return err
		}
		match = m
		return tx.Requests().Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (s *matchService) isParticipant(ctx context.Context, actor Actor, m *domain.Match) (bool, error) {
	switch actor.Role {
	case domain.RoleDonor:
		d, err := s.store.Donations().GetByID(ctx, m.DonationID)
		if err != nil {
			return false, err
		}
		return d.DonorID == actor.ID, nil
	case domain.RoleRecipient:
		r, err := s.store.Requests().GetByID(ctx, m.RequestID)
		if err != nil {
			return false, err
		}
		return r.RecipientID == actor.ID, nil
	}
	return false, nil
}

// notifyMatchParties emails the donor and recipient behind a match. Email
// failures never fail the operation that triggered them.
func (s *matchService) notifyMatchParties(ctx context.Context, m *domain.Match, send func(email, name, donationTitle, requestTitle string) error) {
	d, err := s.store.Donations().GetByID(ctx, m.DonationID)
	if err != nil {
		logger.Warn("match notification skipped", "match_id", m.ID, "error", err)
		return
	}
	r, err := s.store.Requests().GetByID(ctx, m.RequestID)
	if err != nil {
		logger.Warn("match notification skipped", "match_id", m.ID, "error", err)
		return
	}
	for _, party := range []struct{ userID string }{{d.DonorID}, {r.RecipientID}} {
		u, err := s.store.Users().GetByID(ctx, party.userID)
		if err != nil {
			logger.Warn("match notification skipped", "match_id", m.ID, "user_id", party.userID, "error", err)
			continue
		}
		if err := send(u.Email, u.FullName, d.Title, r.Title); err != nil {
			logger.Warn("match notification failed", "match_id", m.ID, "user_id", u.ID, "error", err)
		}
	}
}
