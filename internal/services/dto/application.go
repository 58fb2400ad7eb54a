package dto

type SubmitApplicationRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=10000"`
}

type TransitionApplicationRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}
