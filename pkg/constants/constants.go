package constants

// Коды типов оборудования. Закрытый справочник: диспетчеризация по коду,
// а не по отображаемому имени.
type EquipmentTypeCode string

const (
	TypeComputer   EquipmentTypeCode = "computer"
	TypeProjector  EquipmentTypeCode = "projector"
	TypePrinter    EquipmentTypeCode = "printer"
	TypeTV         EquipmentTypeCode = "tv"
	TypeRouter     EquipmentTypeCode = "router"
	TypeNotebook   EquipmentTypeCode = "notebook"
	TypeMonoblok   EquipmentTypeCode = "monoblok"
	TypeWhiteboard EquipmentTypeCode = "whiteboard"
	TypeExtender   EquipmentTypeCode = "extender"
	TypeMonitor    EquipmentTypeCode = "monitor"
)

// AllEquipmentTypes — порядок фиксирован, используется для роутов и отчетов.
var AllEquipmentTypes = []EquipmentTypeCode{
	TypeComputer, TypeProjector, TypePrinter, TypeTV, TypeRouter,
	TypeNotebook, TypeMonoblok, TypeWhiteboard, TypeExtender, TypeMonitor,
}

func (c EquipmentTypeCode) Valid() bool {
	for _, t := range AllEquipmentTypes {
		if c == t {
			return true
		}
	}
	return false
}

// SupportsDisks — у этих типов спецификация владеет списком дисков.
func (c EquipmentTypeCode) SupportsDisks() bool {
	return c == TypeComputer || c == TypeNotebook || c == TypeMonoblok
}

// SupportsGPUs — список видеокарт есть только у моноблоков.
func (c EquipmentTypeCode) SupportsGPUs() bool {
	return c == TypeMonoblok
}
