package dto

import "encoding/json"

type DiskSpecificationDTO struct {
	Position   int    `json:"position" validate:"gte=0"`
	CapacityGB int    `json:"capacity_gb" validate:"required,gt=0"`
	DiskType   string `json:"disk_type" validate:"required,oneof=HDD SSD NVME"`
}

type GPUSpecificationDTO struct {
	Position int    `json:"position" validate:"gte=0"`
	Model    string `json:"model" validate:"required"`
	MemoryGB int    `json:"memory_gb" validate:"required,gt=0"`
}

type CreateSpecificationDTO struct {
	EquipmentID uint64          `json:"equipment_id" validate:"required,gt=0"`
	Attributes  json.RawMessage `json:"attributes" validate:"required"`

	Disks []DiskSpecificationDTO `json:"disks,omitempty" validate:"omitempty,dive"`
	GPUs  []GPUSpecificationDTO  `json:"gpus,omitempty" validate:"omitempty,dive"`
}

type UpdateSpecificationDTO struct {
	Attributes json.RawMessage `json:"attributes,omitempty" validate:"omitempty"`

	// nil — подзаписи не трогаем; пустой срез — очищаем
	Disks []DiskSpecificationDTO `json:"disks,omitempty" validate:"omitempty,dive"`
	GPUs  []GPUSpecificationDTO  `json:"gpus,omitempty" validate:"omitempty,dive"`
}

// --- Варианты атрибутов: по одной структуре на тип оборудования. ---
// Выбор варианта — таблица диспетчеризации по коду типа, без сравнения
// отображаемых имён.

type ComputerSpecAttributes struct {
	CPU     string `json:"cpu" validate:"required"`
	RAMGB   int    `json:"ram_gb" validate:"required,gt=0"`
	OS      string `json:"os,omitempty"`
	MACAddr string `json:"mac_address,omitempty" validate:"omitempty,mac"`
}

type ProjectorSpecAttributes struct {
	Model      string `json:"model" validate:"required"`
	Lumens     int    `json:"lumens" validate:"required,gt=0"`
	Resolution string `json:"resolution,omitempty"`
}

type PrinterSpecAttributes struct {
	Model   string `json:"model" validate:"required"`
	IsColor bool   `json:"is_color"`
	Duplex  bool   `json:"duplex"`
}

type TVSpecAttributes struct {
	Model      string `json:"model" validate:"required"`
	DiagonalIn int    `json:"diagonal_inches" validate:"required,gt=0"`
}

type RouterSpecAttributes struct {
	Model     string `json:"model" validate:"required"`
	PortCount int    `json:"port_count" validate:"required,gt=0"`
	IPAddr    string `json:"ip_address,omitempty" validate:"omitempty,ip"`
	MACAddr   string `json:"mac_address,omitempty" validate:"omitempty,mac"`
}

type NotebookSpecAttributes struct {
	CPU        string `json:"cpu" validate:"required"`
	RAMGB      int    `json:"ram_gb" validate:"required,gt=0"`
	DiagonalIn int    `json:"diagonal_inches,omitempty" validate:"omitempty,gt=0"`
	OS         string `json:"os,omitempty"`
}

type MonoblokSpecAttributes struct {
	CPU        string `json:"cpu" validate:"required"`
	RAMGB      int    `json:"ram_gb" validate:"required,gt=0"`
	DiagonalIn int    `json:"diagonal_inches,omitempty" validate:"omitempty,gt=0"`
	OS         string `json:"os,omitempty"`
}

type WhiteboardSpecAttributes struct {
	Model      string `json:"model" validate:"required"`
	DiagonalIn int    `json:"diagonal_inches,omitempty" validate:"omitempty,gt=0"`
	Touch      bool   `json:"touch"`
}

type ExtenderSpecAttributes struct {
	Model       string `json:"model" validate:"required"`
	SocketCount int    `json:"socket_count" validate:"required,gt=0"`
	LengthM     int    `json:"length_m,omitempty" validate:"omitempty,gt=0"`
}

type MonitorSpecAttributes struct {
	Model      string `json:"model" validate:"required"`
	DiagonalIn int    `json:"diagonal_inches" validate:"required,gt=0"`
	Resolution string `json:"resolution,omitempty"`
}
