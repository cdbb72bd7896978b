package dto

type CreateEquipmentDTO struct {
	Name            string  `json:"name" validate:"required"`
	InventoryNumber *string `json:"inventory_number,omitempty" validate:"omitempty,inventory_number"`
	TypeID          uint64  `json:"type_id" validate:"required,gt=0"`
	RoomID          *uint64 `json:"room_id,omitempty" validate:"omitempty,gt=0"`
}

type UpdateEquipmentDTO struct {
	Name            *string `json:"name,omitempty" validate:"omitempty"`
	InventoryNumber *string `json:"inventory_number,omitempty" validate:"omitempty,inventory_number"`
	TypeID          *uint64 `json:"type_id,omitempty" validate:"omitempty,gt=0"`
	RoomID          *uint64 `json:"room_id,omitempty" validate:"omitempty,gt=0"`
}

// EquipmentFilterDTO — параметры фильтрующего эндпоинта; все условия
// объединяются по AND.
type EquipmentFilterDTO struct {
	Page       int     `query:"page"`
	Limit      int     `query:"limit"`
	BuildingID *uint64 `query:"building_id"`
	RoomID     *uint64 `query:"room_id"`
	TypeID     *uint64 `query:"type_id"`
	Status     *string `query:"status"`
	AuthorID   *uint64 `query:"author_id"`
}

type MoveEquipmentDTO struct {
	ToRoomID *uint64 `json:"to_room_id" validate:"omitempty,gt=0"`
	Note     *string `json:"note,omitempty" validate:"omitempty"`
}

type ShortEquipmentDTO struct {
	ID              uint64 `json:"id"`
	Name            string `json:"name"`
	InventoryNumber string `json:"inventory_number"`
}
