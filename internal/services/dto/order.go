package dto

type CreateOrderRequest struct {
	GigID             string `json:"gig_id" validate:"required,uuid4"`
	Requirements      string `json:"requirements"`
	BuyerInstructions string `json:"buyer_instructions"`
}

type UpdateOrderRequest struct {
	Status            string  `json:"status" validate:"omitempty,oneof=pending in_progress delivered completed cancelled disputed"`
	Requirements      *string `json:"requirements"`
	BuyerInstructions *string `json:"buyer_instructions"`
	SellerNotes       *string `json:"seller_notes"`
}

type OrderListQuery struct {
	Role   string `form:"role" validate:"omitempty,oneof=buyer seller"`
	Status string `form:"status" validate:"omitempty,oneof=pending in_progress delivered completed cancelled disputed"`
}
