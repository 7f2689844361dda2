package services

import (
	"errors"

	"gorm.io/gorm"

	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

type MessageService interface {
	Send(db *gorm.DB, senderID string, req *dto.SendMessageRequest) (*models.Message, error)
	ListByOrder(db *gorm.DB, userID, orderID string, p dto.Pagination) (*dto.PaginatedResponse, error)
	MarkRead(db *gorm.DB, userID, orderID string) (int64, error)
	UnreadCount(db *gorm.DB, userID string) (int64, error)
	ListConversations(db *gorm.DB, userID string, p dto.Pagination) ([]repositories.Conversation, error)
}

type messageService struct {
	messageRepo *repositories.MessageRepository
	orderRepo   *repositories.OrderRepository
}

func NewMessageService(messageRepo *repositories.MessageRepository, orderRepo *repositories.OrderRepository) MessageService {
	return &messageService{messageRepo: messageRepo, orderRepo: orderRepo}
}

func (s *messageService) Send(db *gorm.DB, senderID string, req *dto.SendMessageRequest) (*models.Message, error) {
	order, err := s.orderRepo.GetByID(db, req.OrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !order.IsParticipant(senderID) {
		return nil, apperrors.ErrNotOrderParticipant
	}

	message := &models.Message{
		OrderID:     order.ID,
		SenderID:    senderID,
		RecipientID: order.CounterpartyID(senderID),
		Body:        req.Body,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		FileType:    req.FileType,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

func (s *messageService) ListByOrder(db *gorm.DB, userID, orderID string, p dto.Pagination) (*dto.PaginatedResponse, error) {
	order, err := s.orderRepo.GetByID(db, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !order.IsParticipant(userID) {
		return nil, apperrors.ErrNotOrderParticipant
	}

	messages, total, err := s.messageRepo.ListByOrder(db, orderID, p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(messages, total, p), nil
}

func (s *messageService) MarkRead(db *gorm.DB, userID, orderID string) (int64, error) {
	order, err := s.orderRepo.GetByID(db, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	if !order.IsParticipant(userID) {
		return 0, apperrors.ErrNotOrderParticipant
	}

	n, err := s.messageRepo.MarkRead(db, orderID, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return n, nil
}

func (s *messageService) UnreadCount(db *gorm.DB, userID string) (int64, error) {
	count, err := s.messageRepo.UnreadCount(db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *messageService) ListConversations(db *gorm.DB, userID string, p dto.Pagination) ([]repositories.Conversation, error) {
	conversations, err := s.messageRepo.ListConversations(db, userID, p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return conversations, nil
}
