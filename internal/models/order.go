package models

import "time"

type Order struct {
	BaseModel
	GigID    string `gorm:"not null;index" json:"gig_id"`
	BuyerID  string `gorm:"not null;index" json:"buyer_id"`
	SellerID string `gorm:"not null;index" json:"seller_id"`

	// Price captured at checkout, independent of later gig edits.
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Status      OrderStatus `gorm:"not null;default:'pending';index" json:"status"`

	DeliveryDate      time.Time `json:"delivery_date"`
	Requirements      string    `json:"requirements"`
	BuyerInstructions string    `json:"buyer_instructions"`
	SellerNotes       string    `json:"seller_notes"`

	RevisionsAllowed int `gorm:"default:3" json:"revisions_allowed"`
	RevisionsUsed    int `gorm:"default:0" json:"revisions_used"`

	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`

	// Relations
	Gig          *Gig          `gorm:"foreignKey:GigID" json:"gig,omitempty"`
	Buyer        *User         `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Seller       *User         `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Review       *Review       `gorm:"foreignKey:OrderID" json:"review,omitempty"`
	Messages     []Message     `gorm:"foreignKey:OrderID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:OrderID" json:"-"`
}

// IsParticipant reports whether userID is the buyer or the seller on the order.
func (o *Order) IsParticipant(userID string) bool {
	return o.BuyerID == userID || o.SellerID == userID
}

// CounterpartyID returns the other side of the order relative to userID.
func (o *Order) CounterpartyID(userID string) string {
	if o.BuyerID == userID {
		return o.SellerID
	}
	return o.BuyerID
}
