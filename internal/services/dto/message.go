package dto

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Body        string `json:"body" validate:"required,max=5000"`
}
