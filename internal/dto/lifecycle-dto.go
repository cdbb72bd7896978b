package dto

import "time"

type SendToRepairDTO struct {
	Reason string `json:"reason" validate:"required"`
}

type DisposeDTO struct {
	Reason string `json:"reason" validate:"required"`
}

type CreateContractDTO struct {
	EquipmentID uint64    `json:"equipment_id" validate:"required,gt=0"`
	Number      *string   `json:"number,omitempty" validate:"omitempty"`
	SignedBy    string    `json:"signed_by" validate:"required"`
	SignedAt    time.Time `json:"signed_at" validate:"required"`
}
