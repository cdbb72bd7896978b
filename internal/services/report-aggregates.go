package services

import (
	"sort"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
)

// Корзины для записей, которые не удалось отнести ни к одной группе.
const (
	NoRoomBucket    = "no room"
	NoFacultyBucket = "no faculty"
)

// StatusDistribution — количество единиц по статусам, в каноническом
// порядке перечисления; пустые статусы не выводятся.
func StatusDistribution(items []entities.Equipment) []dto.DistributionItemDTO {
	counts := make(map[constants.EquipmentStatus]int)
	for _, e := range items {
		counts[e.Status]++
	}

	out := make([]dto.DistributionItemDTO, 0, len(counts))
	for _, status := range constants.AllEquipmentStatuses {
		if n := counts[status]; n > 0 {
			out = append(out, dto.DistributionItemDTO{Key: string(status), Count: n})
		}
	}
	return out
}

// TypeDistribution — количество единиц по кодам типов; нераспознанные
// типы падают в корзину "unknown" в конце.
func TypeDistribution(items []entities.Equipment) []dto.DistributionItemDTO {
	counts := make(map[string]int)
	unknown := 0
	for _, e := range items {
		if e.Type == nil || !e.Type.Code.Valid() {
			unknown++
			continue
		}
		counts[string(e.Type.Code)]++
	}

	out := make([]dto.DistributionItemDTO, 0, len(counts)+1)
	for _, code := range constants.AllEquipmentTypes {
		if n := counts[string(code)]; n > 0 {
			out = append(out, dto.DistributionItemDTO{Key: string(code), Count: n})
		}
	}
	if unknown > 0 {
		out = append(out, dto.DistributionItemDTO{Key: UnknownTypeGroup, Count: unknown})
	}
	return out
}

// RoomDistribution — количество единиц по комнатам; без комнаты —
// корзина "no room". Сортировка: по убыванию количества, при равенстве
// по имени.
func RoomDistribution(items []entities.Equipment) []dto.DistributionItemDTO {
	counts := make(map[string]int)
	for _, e := range items {
		if e.Room == nil || e.Room.ID == 0 {
			counts[NoRoomBucket]++
			continue
		}
		counts[e.Room.Name]++
	}

	out := make([]dto.DistributionItemDTO, 0, len(counts))
	for key, n := range counts {
		out = append(out, dto.DistributionItemDTO{Key: key, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// FacultyDistribution атрибутирует оборудование факультету по цепочке
// комната → здание → первый факультет здания (по возрастанию id).
// Единицы без комнаты или в здании без факультетов — "no faculty".
func FacultyDistribution(items []entities.Equipment, faculties []entities.Faculty) []dto.DistributionItemDTO {
	facultyByBuilding := make(map[uint64]*entities.Faculty)
	for i := range faculties {
		f := &faculties[i]
		if current, ok := facultyByBuilding[f.BuildingID]; !ok || f.ID < current.ID {
			facultyByBuilding[f.BuildingID] = f
		}
	}

	counts := make(map[uint64]int)
	noFaculty := 0
	for _, e := range items {
		if e.Room == nil || e.Room.BuildingID == 0 {
			noFaculty++
			continue
		}
		f, ok := facultyByBuilding[e.Room.BuildingID]
		if !ok {
			noFaculty++
			continue
		}
		counts[f.ID]++
	}

	ids := make([]uint64, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	nameByID := make(map[uint64]string, len(faculties))
	for _, f := range faculties {
		nameByID[f.ID] = f.Name
	}

	out := make([]dto.DistributionItemDTO, 0, len(ids)+1)
	for _, id := range ids {
		out = append(out, dto.DistributionItemDTO{Key: nameByID[id], Count: counts[id]})
	}
	if noFaculty > 0 {
		out = append(out, dto.DistributionItemDTO{Key: NoFacultyBucket, Count: noFaculty})
	}
	return out
}
