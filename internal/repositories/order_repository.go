package repositories

import (
	"gorm.io/gorm"

	"gigflow_backend/internal/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(db *gorm.DB, order *models.Order) error {
	return db.Create(order).Error
}

func (r *OrderRepository) GetByID(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) GetByIDFull(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Gig").Preload("Buyer").Preload("Seller").Preload("Review").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByIDForUpdate loads the order under a row lock so concurrent
// transitions serialize inside the surrounding transaction.
func (r *OrderRepository) GetByIDForUpdate(db *gorm.DB, id string) (*models.Order, error) {
	var order models.Order
	err := withRowLock(db).First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Update(db *gorm.DB, order *models.Order) error {
	return db.Save(order).Error
}

func (r *OrderRepository) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Order{}, "id = ?", id).Error
}

// ListForUser returns orders where the user is buyer or seller,
// optionally narrowed to one side via role ("buyer" or "seller").
func (r *OrderRepository) ListForUser(db *gorm.DB, userID, role string, status models.OrderStatus, limit, offset int) ([]models.Order, int64, error) {
	query := db.Model(&models.Order{})

	switch role {
	case "buyer":
		query = query.Where("buyer_id = ?", userID)
	case "seller":
		query = query.Where("seller_id = ?", userID)
	default:
		query = query.Where("buyer_id = ? OR seller_id = ?", userID, userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := query.Preload("Gig").Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountByStatus(db *gorm.DB, status models.OrderStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
