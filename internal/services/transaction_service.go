package services

import (
	"errors"

	"gorm.io/gorm"

	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

type TransactionService interface {
	ListByOrder(db *gorm.DB, userID, orderID string) ([]models.Transaction, error)
	ListByUser(db *gorm.DB, userID string, p dto.Pagination) (*dto.PaginatedResponse, error)
}

type transactionService struct {
	txRepo    *repositories.TransactionRepository
	orderRepo *repositories.OrderRepository
}

func NewTransactionService(txRepo *repositories.TransactionRepository, orderRepo *repositories.OrderRepository) TransactionService {
	return &transactionService{txRepo: txRepo, orderRepo: orderRepo}
}

func (s *transactionService) ListByOrder(db *gorm.DB, userID, orderID string) ([]models.Transaction, error) {
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

	txs, err := s.txRepo.ListByOrder(db, orderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return txs, nil
}

func (s *transactionService) ListByUser(db *gorm.DB, userID string, p dto.Pagination) (*dto.PaginatedResponse, error) {
	txs, total, err := s.txRepo.ListByUser(db, userID, p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(txs, total, p), nil
}
