package dto

type CreateGigRequest struct {
	Title        string   `json:"title" validate:"required,min=5,max=150"`
	Description  string   `json:"description" validate:"required,min=20"`
	Category     string   `json:"category" validate:"required"`
	Subcategory  string   `json:"subcategory"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	DeliveryTime int      `json:"delivery_time" validate:"required,min=1,max=90"`
	Requirements string   `json:"requirements"`
	Location     string   `json:"location"`
	Thumbnail    string   `json:"thumbnail" validate:"omitempty,url"`
	Images       []string `json:"images"`
	Tags         []string `json:"tags"`
}

type UpdateGigRequest struct {
	Title        *string  `json:"title" validate:"omitempty,min=5,max=150"`
	Description  *string  `json:"description" validate:"omitempty,min=20"`
	Category     *string  `json:"category"`
	Subcategory  *string  `json:"subcategory"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	DeliveryTime *int     `json:"delivery_time" validate:"omitempty,min=1,max=90"`
	Requirements *string  `json:"requirements"`
	Location     *string  `json:"location"`
	Thumbnail    *string  `json:"thumbnail" validate:"omitempty,url"`
	Images       []string `json:"images"`
	Tags         []string `json:"tags"`
	IsActive     *bool    `json:"is_active"`
}

type GigListQuery struct {
	Category  string  `form:"category"`
	UserID    string  `form:"user_id"`
	MinPrice  float64 `form:"min_price"`
	MaxPrice  float64 `form:"max_price"`
	MinRating float64 `form:"min_rating"`
	Search    string  `form:"search"`
	Featured  *bool   `form:"featured"`
}
