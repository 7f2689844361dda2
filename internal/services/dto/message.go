package dto

type SendMessageRequest struct {
	OrderID  string `json:"order_id" validate:"required,uuid4"`
	Body     string `json:"body" validate:"required,min=1,max=5000"`
	FileURL  string `json:"file_url" validate:"omitempty,url"`
	FileName string `json:"file_name" validate:"omitempty,max=255"`
	FileType string `json:"file_type" validate:"omitempty,max=100"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
