package entities

import "inventory-system/pkg/types"

type Floor struct {
	ID          uint64  `json:"id" db:"id"`
	BuildingID  uint64  `json:"building_id" db:"building_id"`
	Number      int     `json:"number" db:"number"`
	Description *string `json:"description,omitempty" db:"description"`

	types.BaseEntity

	Building *Building `json:"building,omitempty" db:"-"`
}
