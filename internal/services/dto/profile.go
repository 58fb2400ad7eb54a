package dto

type UpdateProfileRequest struct {
	DisplayName *string  `json:"display_name,omitempty" validate:"omitempty,max=100"`
	Headline    *string  `json:"headline,omitempty" validate:"omitempty,max=200"`
	Bio         *string  `json:"bio,omitempty" validate:"omitempty,max=5000"`
	City        *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Skills      []string `json:"skills,omitempty" validate:"omitempty,max=50"`
	Languages   []string `json:"languages,omitempty" validate:"omitempty,max=20"`
}
