package dto

type CreateUniversityDTO struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address,omitempty" validate:"omitempty"`
}

type UpdateUniversityDTO struct {
	Name    *string `json:"name,omitempty" validate:"omitempty"`
	Address *string `json:"address,omitempty" validate:"omitempty"`
}
