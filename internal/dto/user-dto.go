package dto

type CreateUserDTO struct {
	Fio         string  `json:"fio" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty"`
	Password    string  `json:"password" validate:"required,min=6"`
	Role        string  `json:"role" validate:"required,user_role"`
}

type UpdateUserDTO struct {
	Fio         *string `json:"fio,omitempty" validate:"omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role        *string `json:"role,omitempty" validate:"omitempty,user_role"`
}

type UserDTO struct {
	ID          uint64  `json:"id"`
	Fio         string  `json:"fio"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Role        string  `json:"role"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ShortUserDTO struct {
	ID  uint64 `json:"id"`
	Fio string `json:"fio"`
}
