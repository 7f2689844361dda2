package models

import "time"

type Transaction struct {
	BaseModel
	OrderID  string `gorm:"not null;index" json:"order_id"`
	BuyerID  string `gorm:"not null;index" json:"buyer_id"`
	SellerID string `gorm:"not null;index" json:"seller_id"`

	Type   TransactionType `gorm:"not null" json:"type"`
	Status PaymentStatus   `gorm:"not null;default:'pending';index" json:"status"`

	Amount      float64 `gorm:"not null" json:"amount"`
	PlatformFee float64 `gorm:"default:0" json:"platform_fee"`
	// Seller payout after the platform fee, fixed when the payment is
	// recorded so later fee changes cannot shift an existing payout.
	SellerAmount float64 `gorm:"default:0" json:"seller_amount"`
	Currency     string  `gorm:"default:'USD'" json:"currency"`

	// External reference handed to the payment provider.
	Reference string `gorm:"uniqueIndex" json:"reference"`

	IsEscrow         bool       `gorm:"default:false" json:"is_escrow"`
	EscrowReleasedAt *time.Time `json:"escrow_released_at"`
	Notes            string     `json:"notes"`

	// Relations
	Order  *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Buyer  *User  `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Seller *User  `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
}
