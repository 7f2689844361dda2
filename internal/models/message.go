package models

import "time"

type Message struct {
	BaseModel
	OrderID     string `gorm:"not null;index" json:"order_id"`
	SenderID    string `gorm:"not null;index" json:"sender_id"`
	RecipientID string `gorm:"not null;index" json:"recipient_id"`

	Body string `gorm:"not null" json:"body"`

	// Optional attachment, stored by reference.
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`

	IsRead bool       `gorm:"default:false" json:"is_read"`
	ReadAt *time.Time `json:"read_at"`

	// Relations
	Order     *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Sender    *User  `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient *User  `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}
