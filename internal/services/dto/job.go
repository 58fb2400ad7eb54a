package dto

type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=150"`
	Description string   `json:"description" validate:"omitempty,max=10000"`
	City        string   `json:"city" validate:"omitempty,max=100"`
	PayMin      float64  `json:"pay_min" validate:"omitempty,min=0"`
	PayMax      float64  `json:"pay_max" validate:"omitempty,min=0,gtefield=PayMin"`
	Tags        []string `json:"tags" validate:"omitempty,max=20"`
}

type UpdateJobRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	City        *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	PayMin      *float64 `json:"pay_min,omitempty" validate:"omitempty,min=0"`
	PayMax      *float64 `json:"pay_max,omitempty" validate:"omitempty,min=0"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=20"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,is-job-status"`
}
