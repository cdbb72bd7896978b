package dto

type CreateBuildingDTO struct {
	UniversityID uint64  `json:"university_id" validate:"required,gt=0"`
	Name         string  `json:"name" validate:"required"`
	Address      *string `json:"address,omitempty" validate:"omitempty"`
}

type UpdateBuildingDTO struct {
	UniversityID *uint64 `json:"university_id,omitempty" validate:"omitempty,gt=0"`
	Name         *string `json:"name,omitempty" validate:"omitempty"`
	Address      *string `json:"address,omitempty" validate:"omitempty"`
}

type ShortBuildingDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
