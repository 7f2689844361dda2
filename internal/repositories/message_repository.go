package repositories

import (
	"time"

	"gorm.io/gorm"

	"gigflow_backend/internal/models"
)

// Conversation is one row of the inbox view: the latest message per
// order plus the unread counter for the viewing user.
type Conversation struct {
	OrderID     string    `json:"order_id"`
	LastMessage string    `json:"last_message"`
	LastAt      time.Time `json:"last_at"`
	UnreadCount int64     `json:"unread_count"`
}

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepository) DeleteByOrder(db *gorm.DB, orderID string) error {
	return db.Delete(&models.Message{}, "order_id = ?", orderID).Error
}

func (r *MessageRepository) ListByOrder(db *gorm.DB, orderID string, limit, offset int) ([]models.Message, int64, error) {
	query := db.Model(&models.Message{}).Where("order_id = ?", orderID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&messages).Error
	return messages, total, err
}

// MarkRead flags every unread message addressed to userID on the order.
func (r *MessageRepository) MarkRead(db *gorm.DB, orderID, userID string) (int64, error) {
	now := time.Now()
	res := db.Model(&models.Message{}).
		Where("order_id = ? AND recipient_id = ? AND is_read = ?", orderID, userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	return res.RowsAffected, res.Error
}

func (r *MessageRepository) UnreadCount(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Message{}).
		Where("recipient_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// ListConversations groups the user's messages by order, newest first.
func (r *MessageRepository) ListConversations(db *gorm.DB, userID string, limit, offset int) ([]Conversation, error) {
	var conversations []Conversation
	err := db.Raw(`
		SELECT m.order_id,
		       m.body AS last_message,
		       m.created_at AS last_at,
		       (SELECT COUNT(*) FROM messages u
		        WHERE u.order_id = m.order_id AND u.recipient_id = ? AND u.is_read = ?) AS unread_count
		FROM messages m
		JOIN (
			SELECT order_id, MAX(created_at) AS max_at
			FROM messages
			WHERE sender_id = ? OR recipient_id = ?
			GROUP BY order_id
		) latest ON latest.order_id = m.order_id AND latest.max_at = m.created_at
		ORDER BY m.created_at DESC
		LIMIT ? OFFSET ?`,
		userID, false, userID, userID, limit, offset).Scan(&conversations).Error
	return conversations, err
}
