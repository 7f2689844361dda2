package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserProfile struct {
	BaseModel
	UserID           string         `gorm:"not null;uniqueIndex" json:"user_id"`
	Avatar           string         `json:"avatar"`
	Bio              string         `json:"bio"`
	Title            string         `json:"title"`
	City             string         `json:"city"`
	Country          string         `json:"country"`
	Website          string         `json:"website"`
	Skills           datatypes.JSON `json:"skills"`
	Languages        datatypes.JSON `json:"languages"`
	IsVerifiedSeller bool           `gorm:"default:false" json:"is_verified_seller"`
	LastActiveAt     *time.Time     `json:"last_active_at"`
}
