package dto

type CreateRoomDTO struct {
	BuildingID uint64 `json:"building_id" validate:"required,gt=0"`
	FloorID    uint64 `json:"floor_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required"`
}

type UpdateRoomDTO struct {
	BuildingID *uint64 `json:"building_id,omitempty" validate:"omitempty,gt=0"`
	FloorID    *uint64 `json:"floor_id,omitempty" validate:"omitempty,gt=0"`
	Name       *string `json:"name,omitempty" validate:"omitempty"`
}

type ShortRoomDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
