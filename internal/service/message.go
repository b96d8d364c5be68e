package service

import (
	"context"
	"errors"
	"fmt"

	"givehope-backend/internal/domain"
	"givehope-backend/internal/repository"

	"github.com/google/uuid"
)

type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) MessageService {
	return &messageService{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *messageService) SendMessage(ctx context.Context, actor Actor, recipientID, subject, content string) (*domain.Message, error) {
	if subject == "" {
		return nil, domain.Validationf("subject", "is required")
	}
	if content == "" {
		return nil, domain.Validationf("content", "is required")
	}
	if recipientID == actor.ID {
		return nil, domain.Validationf("recipient_id", "cannot message yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("recipient %s: %w", recipientID, domain.ErrNotFound)
		}
		return nil, err
	}

	m := &domain.Message{
		ID:          uuid.NewString(),
		SenderID:    actor.ID,
		RecipientID: recipientID,
		Subject:     subject,
		Content:     content,
	}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *messageService) Inbox(ctx context.Context, actor Actor, page, pageSize int32) ([]domain.Message, int32, error) {
	return s.messageRepo.ListInbox(ctx, actor.ID, page, pageSize)
}

func (s *messageService) Sent(ctx context.Context, actor Actor, page, pageSize int32) ([]domain.Message, int32, error) {
	return s.messageRepo.ListSent(ctx, actor.ID, page, pageSize)
}

func (s *messageService) MarkAsRead(ctx context.Context, actor Actor, messageID string) error {
	return s.messageRepo.MarkAsRead(ctx, messageID, actor.ID)
}
