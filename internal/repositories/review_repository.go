package repositories

import (
	"math"

	"gorm.io/gorm"

	"gigflow_backend/internal/models"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepository) GetByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	if err := db.First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) ExistsForOrder(db *gorm.DB, orderID string) (bool, error) {
	var count int64
	err := db.Model(&models.Review{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) Update(db *gorm.DB, review *models.Review) error {
	return db.Save(review).Error
}

func (r *ReviewRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Review{}, "id = ?", id).Error
}

func (r *ReviewRepository) ListByGig(db *gorm.DB, gigID string, limit, offset int) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{}).Where("gig_id = ? AND is_public = ?", gigID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Preload("Reviewer").Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepository) ListByReviewee(db *gorm.DB, revieweeID string, limit, offset int) ([]models.Review, int64, error) {
	query := db.Model(&models.Review{}).Where("reviewee_id = ? AND is_public = ?", revieweeID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	err := query.Preload("Reviewer").Preload("Gig").Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, total, err
}

// RecalculateGigRating recomputes the gig's derived rating fields from
// its public reviews and persists them. Callers run it inside the same
// transaction as the review write so readers never see the two out of
// step.
func (r *ReviewRepository) RecalculateGigRating(db *gorm.DB, gigID string) error {
	var stats struct {
		Avg   float64
		Count int64
	}
	err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("gig_id = ? AND is_public = ?", gigID, true).
		Scan(&stats).Error
	if err != nil {
		return err
	}

	rounded := math.Round(stats.Avg*10) / 10

	res := db.Model(&models.Gig{}).Where("id = ?", gigID).Updates(map[string]interface{}{
		"average_rating": rounded,
		"reviews_count":  stats.Count,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ReviewRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Review{}).Count(&count).Error
	return count, err
}
