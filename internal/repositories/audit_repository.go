package repositories

import (
	"gorm.io/gorm"

	"gigflow_backend/internal/models"
)

type AuditRepository struct{}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Create(db *gorm.DB, entry *models.AuditLog) error {
	return db.Create(entry).Error
}

func (r *AuditRepository) ListByEntity(db *gorm.DB, entityType, entityID string, limit, offset int) ([]models.AuditLog, int64, error) {
	query := db.Model(&models.AuditLog{}).Where("entity_type = ?", entityType)
	if entityID != "" {
		query = query.Where("entity_id = ?", entityID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.AuditLog
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

func (r *AuditRepository) ListByUser(db *gorm.DB, userID string, limit, offset int) ([]models.AuditLog, int64, error) {
	query := db.Model(&models.AuditLog{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.AuditLog
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}
