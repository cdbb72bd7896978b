package dto

type CreateFloorDTO struct {
	BuildingID  uint64  `json:"building_id" validate:"required,gt=0"`
	Number      int     `json:"number" validate:"required"`
	Description *string `json:"description,omitempty" validate:"omitempty"`
}

type UpdateFloorDTO struct {
	Number      *int    `json:"number,omitempty" validate:"omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty"`
}
