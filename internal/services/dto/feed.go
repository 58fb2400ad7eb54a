package dto

type CreatePostRequest struct {
	Body string   `json:"body" validate:"required,max=5000"`
	Tags []string `json:"tags" validate:"omitempty,max=20"`
}
