package models

type Review struct {
	BaseModel
	GigID string `gorm:"not null;index" json:"gig_id"`
	// One review per order, enforced at the storage level.
	OrderID    string `gorm:"not null;uniqueIndex" json:"order_id"`
	ReviewerID string `gorm:"not null;index" json:"reviewer_id"`
	RevieweeID string `gorm:"not null;index" json:"reviewee_id"`

	Rating        int    `gorm:"not null" json:"rating"`
	Comment       string `json:"comment"`
	IsPublic      bool   `gorm:"default:true" json:"is_public"`
	IsRecommended bool   `gorm:"default:true" json:"is_recommended"`

	// Relations
	Gig      *Gig   `gorm:"foreignKey:GigID" json:"gig,omitempty"`
	Order    *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Reviewer *User  `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Reviewee *User  `gorm:"foreignKey:RevieweeID" json:"reviewee,omitempty"`
}
