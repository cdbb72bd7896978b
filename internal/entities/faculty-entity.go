package entities

import "inventory-system/pkg/types"

type Faculty struct {
	ID         uint64  `json:"id" db:"id"`
	BuildingID uint64  `json:"building_id" db:"building_id"`
	Name       string  `json:"name" db:"name"`
	DeanFio    *string `json:"dean_fio,omitempty" db:"dean_fio"`

	types.BaseEntity

	Building *Building `json:"building,omitempty" db:"-"`
}
