package services

import (
	"giglink_backend/internal/models"
	"giglink_backend/internal/repositories"
	"giglink_backend/internal/services/dto"
	"giglink_backend/pkg/apperrors"
)

type MessageService struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
) *MessageService {
	return &MessageService{messageRepo: messageRepo, userRepo: userRepo}
}

func (s *MessageService) Send(senderID string, req *dto.SendMessageRequest) (*models.Message, error) {
	if senderID == req.RecipientID {
		return nil, apperrors.ErrMessageToSelf
	}

	if _, err := s.userRepo.FindByID(req.RecipientID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	msg := &models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	}
	if err := s.messageRepo.Create(msg); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return msg, nil
}

// ListDialog returns the conversation between the caller and otherID in
// chronological order.
func (s *MessageService) ListDialog(callerID, otherID string, limit int) ([]models.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	msgs, err := s.messageRepo.ListBetween(callerID, otherID, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return msgs, nil
}
