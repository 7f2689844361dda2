package services

import (
	"gorm.io/gorm"

	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

type AuditService interface {
	ListByEntity(db *gorm.DB, entityType, entityID string, p dto.Pagination) (*dto.PaginatedResponse, error)
	ListByUser(db *gorm.DB, userID string, p dto.Pagination) (*dto.PaginatedResponse, error)
}

type auditService struct {
	auditRepo *repositories.AuditRepository
}

func NewAuditService(auditRepo *repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) ListByEntity(db *gorm.DB, entityType, entityID string, p dto.Pagination) (*dto.PaginatedResponse, error) {
	entries, total, err := s.auditRepo.ListByEntity(db, entityType, entityID, p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(entries, total, p), nil
}

func (s *auditService) ListByUser(db *gorm.DB, userID string, p dto.Pagination) (*dto.PaginatedResponse, error) {
	entries, total, err := s.auditRepo.ListByUser(db, userID, p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(entries, total, p), nil
}
