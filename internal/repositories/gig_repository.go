package repositories

import (
	"strings"

	"gorm.io/gorm"

	"gigflow_backend/internal/models"
)

// GigFilter narrows the public catalog listing. Zero values are ignored.
type GigFilter struct {
	Category  string
	UserID    string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
	Search    string
	Featured  *bool
}

type GigRepository struct{}

func NewGigRepository() *GigRepository {
	return &GigRepository{}
}

func (r *GigRepository) Create(db *gorm.DB, gig *models.Gig) error {
	return db.Create(gig).Error
}

func (r *GigRepository) GetByID(db *gorm.DB, id string) (*models.Gig, error) {
	var gig models.Gig
	if err := db.First(&gig, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepository) GetByIDWithUser(db *gorm.DB, id string) (*models.Gig, error) {
	var gig models.Gig
	if err := db.Preload("User").First(&gig, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &gig, nil
}

func (r *GigRepository) Update(db *gorm.DB, gig *models.Gig) error {
	return db.Save(gig).Error
}

func (r *GigRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Gig{}, "id = ?", id).Error
}

func (r *GigRepository) List(db *gorm.DB, filter GigFilter, limit, offset int) ([]models.Gig, int64, error) {
	query := db.Model(&models.Gig{}).Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.MinRating > 0 {
		query = query.Where("average_rating >= ?", filter.MinRating)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var gigs []models.Gig
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&gigs).Error
	return gigs, total, err
}

func (r *GigRepository) ListByOwner(db *gorm.DB, userID string, limit, offset int) ([]models.Gig, int64, error) {
	query := db.Model(&models.Gig{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var gigs []models.Gig
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&gigs).Error
	return gigs, total, err
}

func (r *GigRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Gig{}).Count(&count).Error
	return count, err
}
