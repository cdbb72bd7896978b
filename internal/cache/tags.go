package cache

import "inventory-system/pkg/constants"

// Tag — метка семейства сущностей, по которой инвалидируются
// закешированные чтения.
type Tag string

const (
	TagUser          Tag = "User"
	TagUniversity    Tag = "University"
	TagBuilding      Tag = "Building"
	TagFloor         Tag = "Floor"
	TagFaculty       Tag = "Faculty"
	TagRoom          Tag = "Room"
	TagEquipment     Tag = "Equipment"
	TagRepair        Tag = "Repair"
	TagDisposal      Tag = "Disposal"
	TagContract      Tag = "Contract"
	TagMovement      Tag = "Movement"
	TagSpecification Tag = "Specification"
)

// SpecTag — отдельная метка на каждый вариант спецификации: запись в
// спецификацию одного типа не сбрасывает чтения остальных девяти.
func SpecTag(code constants.EquipmentTypeCode) Tag {
	return Tag("Specification:" + string(code))
}

// SpecTags — метки для ЧТЕНИЙ спецификаций конкретного типа: своя метка
// варианта плюс агрегатная, чтобы межвариантные события (удаление
// оборудования) сбрасывали всех читателей семейства. Записи в один
// вариант инвалидируют только SpecTag(code).
func SpecTags(code constants.EquipmentTypeCode) []Tag {
	return []Tag{SpecTag(code), TagSpecification}
}
