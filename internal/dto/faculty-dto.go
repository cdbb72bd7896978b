package dto

type CreateFacultyDTO struct {
	BuildingID uint64  `json:"building_id" validate:"required,gt=0"`
	Name       string  `json:"name" validate:"required"`
	DeanFio    *string `json:"dean_fio,omitempty" validate:"omitempty"`
}

type UpdateFacultyDTO struct {
	BuildingID *uint64 `json:"building_id,omitempty" validate:"omitempty,gt=0"`
	Name       *string `json:"name,omitempty" validate:"omitempty"`
	DeanFio    *string `json:"dean_fio,omitempty" validate:"omitempty"`
}
