package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"inventory-system/pkg/constants"
)

// RegisterCustomValidations регистрирует доменные правила валидации.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("equipment_type", isEquipmentTypeCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isEquipmentStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("user_role", isUserRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("inventory_number", isInventoryNumber); err != nil {
		return err
	}
	return nil
}

func isEquipmentTypeCode(fl validator.FieldLevel) bool {
	return constants.EquipmentTypeCode(fl.Field().String()).Valid()
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	return constants.EquipmentStatus(fl.Field().String()).Valid()
}

func isUserRole(fl validator.FieldLevel) bool {
	return constants.ValidRole(fl.Field().String())
}

// Инвентарный номер: INV-XXXXXXXX (8 hex-символов) либо произвольный
// номер из учётной системы университета.
var inventoryNumberRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-/]{2,31}$`)

func isInventoryNumber(fl validator.FieldLevel) bool {
	return inventoryNumberRe.MatchString(fl.Field().String())
}
