package constants

// Статусы оборудования. Переходы выполняются только выделенными
// эндпоинтами (отправка в ремонт, завершение ремонта, списание) —
// прямое обновление поля статуса запрещено.
type EquipmentStatus string

const (
	StatusNew         EquipmentStatus = "NEW"
	StatusWorking     EquipmentStatus = "WORKING"
	StatusNeedsRepair EquipmentStatus = "NEEDS_REPAIR"
	StatusDisposed    EquipmentStatus = "DISPOSED"
)

var AllEquipmentStatuses = []EquipmentStatus{
	StatusNew, StatusWorking, StatusNeedsRepair, StatusDisposed,
}

func (s EquipmentStatus) Valid() bool {
	switch s {
	case StatusNew, StatusWorking, StatusNeedsRepair, StatusDisposed:
		return true
	}
	return false
}

// legalTransitions — граф допустимых переходов статусов.
var legalTransitions = map[EquipmentStatus][]EquipmentStatus{
	StatusNew:         {StatusWorking, StatusNeedsRepair, StatusDisposed},
	StatusWorking:     {StatusNeedsRepair, StatusDisposed},
	StatusNeedsRepair: {StatusWorking, StatusDisposed},
	StatusDisposed:    {},
}

func (s EquipmentStatus) CanTransitionTo(next EquipmentStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Роли пользователей. "manager" — роль не-админа по умолчанию.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleUser
}
