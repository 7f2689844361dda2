package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

type GigService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateGigRequest) (*models.Gig, error)
	GetByID(db *gorm.DB, id string) (*models.Gig, error)
	Update(db *gorm.DB, userID, gigID string, req *dto.UpdateGigRequest) (*models.Gig, error)
	Delete(db *gorm.DB, userID, gigID string) error
	List(db *gorm.DB, query *dto.GigListQuery, p dto.Pagination) (*dto.PaginatedResponse, error)
	ListByOwner(db *gorm.DB, userID string, p dto.Pagination) (*dto.PaginatedResponse, error)
}

type gigService struct {
	gigRepo *repositories.GigRepository
}

func NewGigService(gigRepo *repositories.GigRepository) GigService {
	return &gigService{gigRepo: gigRepo}
}

func (s *gigService) Create(db *gorm.DB, userID string, req *dto.CreateGigRequest) (*models.Gig, error) {
	gig := &models.Gig{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		Price:        req.Price,
		DeliveryTime: req.DeliveryTime,
		Requirements: req.Requirements,
		Location:     req.Location,
		Thumbnail:    req.Thumbnail,
		Images:       toJSON(req.Images),
		Tags:         toJSON(req.Tags),
		IsActive:     true,
	}
	if err := s.gigRepo.Create(db, gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *gigService) GetByID(db *gorm.DB, id string) (*models.Gig, error) {
	gig, err := s.gigRepo.GetByIDWithUser(db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *gigService) Update(db *gorm.DB, userID, gigID string, req *dto.UpdateGigRequest) (*models.Gig, error) {
	gig, err := s.gigRepo.GetByID(db, gigID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if gig.UserID != userID {
		return nil, apperrors.ErrNotGigOwner
	}

	if req.Title != nil {
		gig.Title = *req.Title
	}
	if req.Description != nil {
		gig.Description = *req.Description
	}
	if req.Category != nil {
		gig.Category = *req.Category
	}
	if req.Subcategory != nil {
		gig.Subcategory = *req.Subcategory
	}
	if req.Price != nil {
		gig.Price = *req.Price
	}
	if req.DeliveryTime != nil {
		gig.DeliveryTime = *req.DeliveryTime
	}
	if req.Requirements != nil {
		gig.Requirements = *req.Requirements
	}
	if req.Location != nil {
		gig.Location = *req.Location
	}
	if req.Thumbnail != nil {
		gig.Thumbnail = *req.Thumbnail
	}
	if req.Images != nil {
		gig.Images = toJSON(req.Images)
	}
	if req.Tags != nil {
		gig.Tags = toJSON(req.Tags)
	}
	if req.IsActive != nil {
		gig.IsActive = *req.IsActive
	}

	if err := s.gigRepo.Update(db, gig); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return gig, nil
}

func (s *gigService) Delete(db *gorm.DB, userID, gigID string) error {
	gig, err := s.gigRepo.GetByID(db, gigID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound(err)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	if gig.UserID != userID {
		return apperrors.ErrNotGigOwner
	}
	if err := s.gigRepo.Delete(db, gigID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *gigService) List(db *gorm.DB, query *dto.GigListQuery, p dto.Pagination) (*dto.PaginatedResponse, error) {
	filter := repositories.GigFilter{
		Category:  query.Category,
		UserID:    query.UserID,
		MinPrice:  query.MinPrice,
		MaxPrice:  query.MaxPrice,
		MinRating: query.MinRating,
		Search:    query.Search,
		Featured:  query.Featured,
	}
	gigs, total, err := s.gigRepo.List(db, filter, p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(gigs, total, p), nil
}

func (s *gigService) ListByOwner(db *gorm.DB, userID string, p dto.Pagination) (*dto.PaginatedResponse, error) {
	gigs, total, err := s.gigRepo.ListByOwner(db, userID, p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(gigs, total, p), nil
}

func toJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}
