package services

import (
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
)

// UnknownTypeGroup — ключ корзины для оборудования, чей тип не удалось
// сопоставить со справочником.
const UnknownTypeGroup = "unknown"

type EquipmentGroup struct {
	Code  string               `json:"code"`
	Name  string               `json:"name"`
	Total int                  `json:"total"`
	Items []entities.Equipment `json:"items"`
}

// GroupEquipmentByType раскладывает оборудование по коду типа. Порядок
// групп фиксирован (порядок перечисления типов), корзина "unknown"
// всегда последняя. Конкатенация групп содержит каждый вход ровно один раз.
func GroupEquipmentByType(items []entities.Equipment) []EquipmentGroup {
	byCode := make(map[string][]entities.Equipment)
	names := make(map[string]string)
	var unknown []entities.Equipment

	for _, e := range items {
		if e.Type == nil || !e.Type.Code.Valid() {
			unknown = append(unknown, e)
			continue
		}
		code := string(e.Type.Code)
		byCode[code] = append(byCode[code], e)
		names[code] = e.Type.Name
	}

	groups := make([]EquipmentGroup, 0, len(byCode)+1)
	for _, code := range constants.AllEquipmentTypes {
		bucket, ok := byCode[string(code)]
		if !ok {
			continue
		}
		groups = append(groups, EquipmentGroup{
			Code:  string(code),
			Name:  names[string(code)],
			Total: len(bucket),
			Items: bucket,
		})
	}
	if len(unknown) > 0 {
		groups = append(groups, EquipmentGroup{
			Code:  UnknownTypeGroup,
			Total: len(unknown),
			Items: unknown,
		})
	}
	return groups
}

// PageSlice — страница внутри одной группы; page нумеруется с единицы.
// Выход за пределы даёт пустой срез, limit <= 0 возвращает всё.
func PageSlice(items []entities.Equipment, page, limit int) []entities.Equipment {
	if limit <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []entities.Equipment{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
