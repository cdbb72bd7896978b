package entities

import "time"

// Статусы ремонта.
const (
	RepairOpen      = "OPEN"
	RepairCompleted = "COMPLETED"
	RepairFailed    = "FAILED"
)

// Repair — запись о ремонте; открывается эндпоинтом send-to-repair,
// закрывается complete/fail.
type Repair struct {
	ID          uint64     `json:"id" db:"id"`
	EquipmentID uint64     `json:"equipment_id" db:"equipment_id"`
	OpenedBy    uint64     `json:"opened_by" db:"opened_by"`
	Reason      string     `json:"reason" db:"reason"`
	Status      string     `json:"status" db:"status"`
	OpenedAt    time.Time  `json:"opened_at" db:"opened_at"`
	ClosedAt    *time.Time `json:"closed_at,omitempty" db:"closed_at"`

	Equipment *Equipment `json:"equipment,omitempty" db:"-"`
}

type Disposal struct {
	ID          uint64    `json:"id" db:"id"`
	EquipmentID uint64    `json:"equipment_id" db:"equipment_id"`
	RequestedBy uint64    `json:"requested_by" db:"requested_by"`
	Reason      string    `json:"reason" db:"reason"`
	DisposedAt  time.Time `json:"disposed_at" db:"disposed_at"`

	Equipment *Equipment `json:"equipment,omitempty" db:"-"`
}

type Contract struct {
	ID          uint64    `json:"id" db:"id"`
	EquipmentID uint64    `json:"equipment_id" db:"equipment_id"`
	Number      string    `json:"number" db:"number"`
	SignedBy    string    `json:"signed_by" db:"signed_by"`
	SignedAt    time.Time `json:"signed_at" db:"signed_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	Equipment *Equipment `json:"equipment,omitempty" db:"-"`
}

// MovementHistory — append-only журнал перемещений оборудования.
type MovementHistory struct {
	ID          uint64    `json:"id" db:"id"`
	EquipmentID uint64    `json:"equipment_id" db:"equipment_id"`
	FromRoomID  *uint64   `json:"from_room_id,omitempty" db:"from_room_id"`
	ToRoomID    *uint64   `json:"to_room_id,omitempty" db:"to_room_id"`
	MovedBy     uint64    `json:"moved_by" db:"moved_by"`
	Note        *string   `json:"note,omitempty" db:"note"`
	MovedAt     time.Time `json:"moved_at" db:"moved_at"`
}
