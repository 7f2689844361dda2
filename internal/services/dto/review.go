package dto

type CreateReviewRequest struct {
	OrderID       string `json:"order_id" validate:"required,uuid4"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"max=1000"`
	IsPublic      *bool  `json:"is_public"`
	IsRecommended *bool  `json:"is_recommended"`
}

type UpdateReviewRequest struct {
	Rating        *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment       *string `json:"comment" validate:"omitempty,max=1000"`
	IsPublic      *bool   `json:"is_public"`
	IsRecommended *bool   `json:"is_recommended"`
}
