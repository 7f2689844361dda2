package dto

import "time"

type UpdateProfileRequest struct {
	Avatar    *string  `json:"avatar" validate:"omitempty,url"`
	Bio       *string  `json:"bio" validate:"omitempty,max=2000"`
	Title     *string  `json:"title" validate:"omitempty,max=150"`
	City      *string  `json:"city"`
	Country   *string  `json:"country"`
	Website   *string  `json:"website" validate:"omitempty,url"`
	Skills    []string `json:"skills"`
	Languages []string `json:"languages"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type SystemStatsResponse struct {
	TotalUsers     int64            `json:"total_users"`
	TotalAdmins    int64            `json:"total_admins"`
	TotalGigs      int64            `json:"total_gigs"`
	TotalOrders    int64            `json:"total_orders"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`

	TotalReviews     int64     `json:"total_reviews"`
	TotalVolume      float64   `json:"total_volume"`
	NewUsersLastWeek int64     `json:"new_users_last_week"`
	GeneratedAt      time.Time `json:"generated_at"`
}
