package entities

import "inventory-system/pkg/types"

type User struct {
	ID          uint64  `json:"id" db:"id"`
	Fio         string  `json:"fio" db:"fio"`
	Email       string  `json:"email" db:"email"`
	PhoneNumber *string `json:"phone_number,omitempty" db:"phone_number"`

	Password string `json:"-" db:"password"`

	Role string `json:"role" db:"role"`

	types.BaseEntity
}
