package repositories

import (
	"gorm.io/gorm"

	"gigflow_backend/internal/models"
)

type TransactionRepository struct{}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) Create(db *gorm.DB, tx *models.Transaction) error {
	return db.Create(tx).Error
}

func (r *TransactionRepository) Update(db *gorm.DB, tx *models.Transaction) error {
	return db.Save(tx).Error
}

func (r *TransactionRepository) ListByOrder(db *gorm.DB, orderID string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&txs).Error
	return txs, err
}

func (r *TransactionRepository) ListByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Transaction, int64, error) {
	query := db.Model(&models.Transaction{}).Where("buyer_id = ? OR seller_id = ?", userID, userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txs []models.Transaction
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&txs).Error
	return txs, total, err
}

// GetHeldPayment returns the paid escrow transaction for the order, if
// one is still held.
func (r *TransactionRepository) GetHeldPayment(db *gorm.DB, orderID string) (*models.Transaction, error) {
	var tx models.Transaction
	err := db.Where("order_id = ? AND type = ? AND status = ? AND is_escrow = ? AND escrow_released_at IS NULL",
		orderID, models.TransactionTypePayment, models.PaymentStatusPaid, true).
		First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionRepository) DeleteByOrder(db *gorm.DB, orderID string) error {
	return db.Delete(&models.Transaction{}, "order_id = ?", orderID).Error
}

func (r *TransactionRepository) SumVolume(db *gorm.DB) (float64, error) {
	var total float64
	err := db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("type = ? AND status = ?", models.TransactionTypePayment, models.PaymentStatusPaid).
		Scan(&total).Error
	return total, err
}
