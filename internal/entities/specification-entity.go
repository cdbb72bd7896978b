package entities

import (
	"encoding/json"

	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
)

// Specification — плоский набор атрибутов, форма которого зависит от
// типа оборудования. Ровно одна спецификация на единицу оборудования.
type Specification struct {
	ID          uint64                      `json:"id" db:"id"`
	EquipmentID uint64                      `json:"equipment_id" db:"equipment_id"`
	TypeCode    constants.EquipmentTypeCode `json:"type_code" db:"type_code"`
	Attributes  json.RawMessage             `json:"attributes" db:"attributes"`

	types.BaseEntity

	// Подзаписи: упорядочены, отдельно не адресуются.
	Disks []DiskSpecification `json:"disks,omitempty" db:"-"`
	GPUs  []GPUSpecification  `json:"gpus,omitempty" db:"-"`

	Equipment *Equipment `json:"equipment,omitempty" db:"-"`
}

type DiskSpecification struct {
	ID              uint64 `json:"id" db:"id"`
	SpecificationID uint64 `json:"-" db:"specification_id"`
	Position        int    `json:"position" db:"position"`
	CapacityGB      int    `json:"capacity_gb" db:"capacity_gb"`
	DiskType        string `json:"disk_type" db:"disk_type"`
}

type GPUSpecification struct {
	ID              uint64 `json:"id" db:"id"`
	SpecificationID uint64 `json:"-" db:"specification_id"`
	Position        int    `json:"position" db:"position"`
	Model           string `json:"model" db:"model"`
	MemoryGB        int    `json:"memory_gb" db:"memory_gb"`
}
