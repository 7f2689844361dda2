package models

import "gorm.io/datatypes"

type AuditLog struct {
	BaseModel
	UserID     string         `gorm:"index" json:"user_id"`
	Action     string         `gorm:"not null;index" json:"action"`
	EntityType string         `gorm:"not null;index" json:"entity_type"`
	EntityID   string         `gorm:"index" json:"entity_id"`
	OldValues  datatypes.JSON `json:"old_values"`
	NewValues  datatypes.JSON `json:"new_values"`
	IPAddress  string         `json:"ip_address"`
}
