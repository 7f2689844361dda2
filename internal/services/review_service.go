package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"gigflow_backend/internal/logger"
	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*models.Review, error)
	GetByID(db *gorm.DB, id string) (*models.Review, error)
	Update(db *gorm.DB, userID, reviewID string, req *dto.UpdateReviewRequest) (*models.Review, error)
	Delete(db *gorm.DB, userID, reviewID string) error
	ListByGig(db *gorm.DB, gigID string, p dto.Pagination) (*dto.PaginatedResponse, error)
	ListByReviewee(db *gorm.DB, revieweeID string, p dto.Pagination) (*dto.PaginatedResponse, error)
}

type reviewService struct {
	reviewRepo *repositories.ReviewRepository
	orderRepo  *repositories.OrderRepository
	auditRepo  *repositories.AuditRepository
}

func NewReviewService(reviewRepo *repositories.ReviewRepository, orderRepo *repositories.OrderRepository, auditRepo *repositories.AuditRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, orderRepo: orderRepo, auditRepo: auditRepo}
}

func (s *reviewService) Create(db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	order, err := s.orderRepo.GetByID(db, req.OrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if order.BuyerID != reviewerID {
		return nil, apperrors.ErrOnlyBuyerCanReview
	}
	if !order.IsCompleted {
		return nil, apperrors.ErrIncompleteOrder
	}

	exists, err := s.reviewRepo.ExistsForOrder(db, req.OrderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyReviewed
	}

	review := &models.Review{
		GigID:         order.GigID,
		OrderID:       order.ID,
		ReviewerID:    reviewerID,
		RevieweeID:    order.SellerID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		IsPublic:      true,
		IsRecommended: true,
	}
	if req.IsPublic != nil {
		review.IsPublic = *req.IsPublic
	}
	if req.IsRecommended != nil {
		review.IsRecommended = *req.IsRecommended
	}

	// The write and the rating recompute commit together. The unique
	// index on order_id backstops the existence check above.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Create(tx, review); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.recalculate(tx, review.GigID); err != nil {
			return err
		}
		return s.audit(tx, reviewerID, "review.created", review.ID, nil, review)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("review created", "review_id", review.ID, "gig_id", review.GigID, "rating", review.Rating)
	return review, nil
}

func (s *reviewService) GetByID(db *gorm.DB, id string) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return review, nil
}

func (s *reviewService) Update(db *gorm.DB, userID, reviewID string, req *dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(db, reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if review.ReviewerID != userID {
		return nil, apperrors.ErrNotReviewer
	}

	before := *review

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.IsPublic != nil {
		review.IsPublic = *req.IsPublic
	}
	if req.IsRecommended != nil {
		review.IsRecommended = *req.IsRecommended
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Update(tx, review); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.recalculate(tx, review.GigID); err != nil {
			return err
		}
		return s.audit(tx, userID, "review.updated", review.ID, &before, review)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Delete(db *gorm.DB, userID, reviewID string) error {
	review, err := s.reviewRepo.GetByID(db, reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound(err)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	if review.ReviewerID != userID {
		return apperrors.ErrNotReviewer
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Delete(tx, reviewID); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.recalculate(tx, review.GigID); err != nil {
			return err
		}
		return s.audit(tx, userID, "review.deleted", review.ID, review, nil)
	})
	if err != nil {
		return err
	}
	return nil
}


// recalculate refreshes the gig's aggregates inside the caller's
// transaction. A vanished gig is an integrity failure worth surfacing,
// not a silent no-op.
func (s *reviewService) recalculate(tx *gorm.DB, gigID string) error {
	err := s.reviewRepo.RecalculateGigRating(tx, gigID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("gig missing during rating recompute", "gig_id", gigID)
		return apperrors.ErrNotFound(err)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *reviewService) ListByGig(db *gorm.DB, gigID string, p dto.Pagination) (*dto.PaginatedResponse, error) {
	reviews, total, err := s.reviewRepo.ListByGig(db, gigID, p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(reviews, total, p), nil
}

func (s *reviewService) ListByReviewee(db *gorm.DB, revieweeID string, p dto.Pagination) (*dto.PaginatedResponse, error) {
	reviews, total, err := s.reviewRepo.ListByReviewee(db, revieweeID, p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(reviews, total, p), nil
}

func (s *reviewService) audit(tx *gorm.DB, userID, action, entityID string, oldValue, newValue interface{}) error {
	entry := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityType: "review",
		EntityID:   entityID,
	}
	if oldValue != nil {
		entry.OldValues, _ = json.Marshal(oldValue)
	}
	if newValue != nil {
		entry.NewValues, _ = json.Marshal(newValue)
	}
	return s.auditRepo.Create(tx, entry)
}
