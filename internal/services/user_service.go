package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gigflow_backend/internal/logger"
	"gigflow_backend/internal/models"
	"gigflow_backend/internal/repositories"
	"gigflow_backend/internal/services/dto"
	"gigflow_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(db *gorm.DB, id string) (*models.User, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.UserProfile, error)

	// Admin operations
	ListUsers(db *gorm.DB, p dto.Pagination) (*dto.PaginatedResponse, error)
	ChangeRole(db *gorm.DB, adminID, targetID string, role models.UserRole) error
	DeleteUser(db *gorm.DB, adminID, targetID string) error
	SystemStats(db *gorm.DB) (*dto.SystemStatsResponse, error)
}

type userService struct {
	userRepo   *repositories.UserRepository
	gigRepo    *repositories.GigRepository
	orderRepo  *repositories.OrderRepository
	reviewRepo *repositories.ReviewRepository
	txRepo     *repositories.TransactionRepository
	tokenRepo  *repositories.RefreshTokenRepository
}

func NewUserService(
	userRepo *repositories.UserRepository,
	gigRepo *repositories.GigRepository,
	orderRepo *repositories.OrderRepository,
	reviewRepo *repositories.ReviewRepository,
	txRepo *repositories.TransactionRepository,
	tokenRepo *repositories.RefreshTokenRepository,
) UserService {
	return &userService{
		userRepo:   userRepo,
		gigRepo:    gigRepo,
		orderRepo:  orderRepo,
		reviewRepo: reviewRepo,
		txRepo:     txRepo,
		tokenRepo:  tokenRepo,
	}
}

func (s *userService) GetByID(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.GetByIDWithProfile(db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound(err)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.userRepo.GetProfile(db, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = &models.UserProfile{UserID: userID}
	} else if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.Avatar != nil {
		profile.Avatar = *req.Avatar
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Skills != nil {
		profile.Skills = toJSON(req.Skills)
	}
	if req.Languages != nil {
		profile.Languages = toJSON(req.Languages)
	}
	now := time.Now()
	profile.LastActiveAt = &now

	if err := s.userRepo.UpsertProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *userService) ListUsers(db *gorm.DB, p dto.Pagination) (*dto.PaginatedResponse, error) {
	users, total, err := s.userRepo.List(db, p.Limit, p.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(users, total, p), nil
}

func (s *userService) ChangeRole(db *gorm.DB, adminID, targetID string, role models.UserRole) error {
	if adminID == targetID {
		return apperrors.ErrCannotModifySelf
	}
	if _, err := s.userRepo.GetByID(db, targetID); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound(err)
	} else if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateRole(db, targetID, role); err != nil {
		return apperrors.InternalError(err)
	}
	logger.Info("user role changed", "user_id", targetID, "role", role, "admin_id", adminID)
	return nil
}

func (s *userService) DeleteUser(db *gorm.DB, adminID, targetID string) error {
	if adminID == targetID {
		return apperrors.ErrCannotModifySelf
	}
	if _, err := s.userRepo.GetByID(db, targetID); errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound(err)
	} else if err != nil {
		return apperrors.InternalError(err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// Sessions end with the account.
		if err := s.tokenRepo.DeleteByUser(tx, targetID); err != nil {
			return err
		}
		if err := s.userRepo.DeleteProfile(tx, targetID); err != nil {
			return err
		}
		return s.userRepo.Delete(tx, targetID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	logger.Info("user deleted", "user_id", targetID, "admin_id", adminID)
	return nil
}

func (s *userService) SystemStats(db *gorm.DB) (*dto.SystemStatsResponse, error) {
	stats := &dto.SystemStatsResponse{GeneratedAt: time.Now()}

	var err error
	if stats.TotalUsers, err = s.userRepo.CountByRole(db, models.UserRoleUser); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalAdmins, err = s.userRepo.CountByRole(db, models.UserRoleAdmin); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalGigs, err = s.gigRepo.Count(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalOrders, err = s.orderRepo.Count(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.OrdersByStatus = make(map[string]int64, len(models.OrderStatuses))
	for _, status := range models.OrderStatuses {
		count, err := s.orderRepo.CountByStatus(db, status)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		stats.OrdersByStatus[string(status)] = count
	}
	if stats.TotalReviews, err = s.reviewRepo.Count(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalVolume, err = s.txRepo.SumVolume(db); err != nil {
		return nil, apperrors.InternalError(err)
	}
	weekAgo := stats.GeneratedAt.AddDate(0, 0, -7)
	if stats.NewUsersLastWeek, err = s.userRepo.CountCreatedSince(db, weekAgo); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}
