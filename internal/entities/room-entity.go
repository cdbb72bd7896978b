package entities

import "inventory-system/pkg/types"

// Room принадлежит зданию и этажу; этаж обязан принадлежать тому же
// зданию — проверяется сервисом при создании и обновлении.
type Room struct {
	ID         uint64 `json:"id" db:"id"`
	BuildingID uint64 `json:"building_id" db:"building_id"`
	FloorID    uint64 `json:"floor_id" db:"floor_id"`
	Name       string `json:"name" db:"name"`

	types.BaseEntity

	Building *Building `json:"building,omitempty" db:"-"`
	Floor    *Floor    `json:"floor,omitempty" db:"-"`
}
