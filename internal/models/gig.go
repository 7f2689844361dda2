package models

import (
	"gorm.io/datatypes"
)

type Gig struct {
	BaseModel
	UserID      string `gorm:"not null;index" json:"user_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"index" json:"category"`
	Subcategory string `json:"subcategory"`
	Price       float64 `gorm:"not null" json:"price"`
	// Delivery time in days
	DeliveryTime int            `gorm:"not null" json:"delivery_time"`
	Requirements string         `json:"requirements"`
	Location     string         `json:"location"`
	IsFeatured   bool           `gorm:"default:false" json:"is_featured"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	Thumbnail    string         `json:"thumbnail"`
	Images       datatypes.JSON `json:"images"`
	Tags         datatypes.JSON `json:"tags"`

	// Derived from public reviews, never authored directly.
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	ReviewsCount  int64   `gorm:"default:0" json:"reviews_count"`

	// Relations
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Orders  []Order  `gorm:"foreignKey:GigID" json:"-"`
	Reviews []Review `gorm:"foreignKey:GigID" json:"-"`
}
