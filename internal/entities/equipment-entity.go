package entities

import (
	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
)

type EquipmentType struct {
	ID   uint64                      `json:"id" db:"id"`
	Code constants.EquipmentTypeCode `json:"code" db:"code"`
	Name string                      `json:"name" db:"name"`
}

type Equipment struct {
	ID              uint64                    `json:"id" db:"id"`
	Name            string                    `json:"name" db:"name"`
	InventoryNumber string                    `json:"inventory_number" db:"inventory_number"`
	TypeID          uint64                    `json:"type_id" db:"type_id"`
	Status          constants.EquipmentStatus `json:"status" db:"status"`
	RoomID          *uint64                   `json:"room_id,omitempty" db:"room_id"`
	AuthorID        uint64                    `json:"author_id" db:"author_id"`

	types.BaseEntity

	// Связанные данные (не колонки таблицы)
	Type   *EquipmentType `json:"type,omitempty" db:"-"`
	Room   *Room          `json:"room,omitempty" db:"-"`
	Author *User          `json:"author,omitempty" db:"-"`
}
