package models

import "time"

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);default:'user'" json:"role"`

	// Relations
	Profile       *UserProfile   `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Gigs          []Gig          `gorm:"foreignKey:UserID" json:"-"`
	BuyerOrders   []Order        `gorm:"foreignKey:BuyerID" json:"-"`
	SellerOrders  []Order        `gorm:"foreignKey:SellerID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
