package service

import (
	"context"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"

	"github.com/google/uuid"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	matchRepo    repository.MatchRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository, matchRepo repository.MatchRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo, matchRepo: matchRepo}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, actor Actor, matchID *string, rating int32, comment string, isPublic bool) (*domain.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.Validationf("rating", "must be between 1 and 5")
	}
	if matchID != nil {
		if _, err := s.matchRepo.GetByID(ctx, *matchID); err != nil {
			return nil, err
		}
	}

	f := &domain.Feedback{
		ID:       uuid.NewString(),
		UserID:   actor.ID,
		MatchID:  matchID,
		Rating:   rating,
		Comment:  comment,
		IsPublic: isPublic,
	}
	if err := s.feedbackRepo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *feedbackService) ListPublicFeedback(ctx context.Context, page, pageSize int32) ([]domain.Feedback, int32, error) {
	return s.feedbackRepo.ListPublic(ctx, page, pageSize)
}
