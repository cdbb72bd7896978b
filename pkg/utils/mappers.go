package utils

import (
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
)

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func ToUserDTO(user *entities.User) dto.UserDTO {
	return dto.UserDTO{
		ID:          user.ID,
		Fio:         user.Fio,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		CreatedAt:   formatTime(user.CreatedAt),
		UpdatedAt:   formatTime(user.UpdatedAt),
	}
}

func ToShortUserDTO(user *entities.User) dto.ShortUserDTO {
	return dto.ShortUserDTO{ID: user.ID, Fio: user.Fio}
}
