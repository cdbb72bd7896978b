package entities

import "inventory-system/pkg/types"

type Building struct {
	ID           uint64  `json:"id" db:"id"`
	UniversityID uint64  `json:"university_id" db:"university_id"`
	Name         string  `json:"name" db:"name"`
	Address      *string `json:"address,omitempty" db:"address"`

	types.BaseEntity

	// Связанные данные (не колонки таблицы)
	University *University `json:"university,omitempty" db:"-"`
}
