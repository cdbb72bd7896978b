package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
)

func eq(id uint64, code constants.EquipmentTypeCode) entities.Equipment {
	e := entities.Equipment{ID: id}
	if code != "" {
		e.Type = &entities.EquipmentType{ID: 1, Code: code, Name: string(code)}
	}
	return e
}

func TestGroupEquipmentByType_UnknownBucketLast(t *testing.T) {
	items := []entities.Equipment{
		eq(1, constants.TypeComputer),
		eq(2, ""),
		eq(3, constants.TypeMonitor),
		eq(4, constants.TypeComputer),
		{ID: 5, Type: &entities.EquipmentType{ID: 99, Code: "toaster", Name: "Тостер"}},
	}

	groups := GroupEquipmentByType(items)
	require.Len(t, groups, 3)

	assert.Equal(t, string(constants.TypeComputer), groups[0].Code)
	assert.Equal(t, 2, groups[0].Total)
	assert.Equal(t, string(constants.TypeMonitor), groups[1].Code)

	last := groups[len(groups)-1]
	assert.Equal(t, UnknownTypeGroup, last.Code)
	assert.Equal(t, 2, last.Total, "пустой тип и нераспознанный код попадают в одну корзину")
}

func TestGroupEquipmentByType_ConcatenationCoversInput(t *testing.T) {
	items := []entities.Equipment{
		eq(1, constants.TypePrinter),
		eq(2, constants.TypeRouter),
		eq(3, ""),
		eq(4, constants.TypePrinter),
		eq(5, constants.TypeTV),
	}

	groups := GroupEquipmentByType(items)

	seen := make(map[uint64]int)
	total := 0
	for _, g := range groups {
		assert.Equal(t, len(g.Items), g.Total)
		total += g.Total
		for _, e := range g.Items {
			seen[e.ID]++
		}
	}

	assert.Equal(t, len(items), total)
	for _, e := range items {
		assert.Equal(t, 1, seen[e.ID], "каждая единица ровно в одной группе")
	}
}

func TestGroupEquipmentByType_Empty(t *testing.T) {
	assert.Empty(t, GroupEquipmentByType(nil))
}

func TestPageSlice(t *testing.T) {
	items := []entities.Equipment{
		eq(1, constants.TypeComputer), eq(2, constants.TypeComputer),
		eq(3, constants.TypeComputer), eq(4, constants.TypeComputer),
		eq(5, constants.TypeComputer),
	}

	tests := []struct {
		name  string
		page  int
		limit int
		ids   []uint64
	}{
		{"первая страница", 1, 2, []uint64{1, 2}},
		{"вторая страница", 2, 2, []uint64{3, 4}},
		{"неполный хвост", 3, 2, []uint64{5}},
		{"за пределами", 4, 2, []uint64{}},
		{"page меньше единицы трактуется как первая", 0, 3, []uint64{1, 2, 3}},
		{"без лимита возвращается всё", 1, 0, []uint64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageSlice(items, tt.page, tt.limit)
			ids := make([]uint64, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestPageSlice_ConsecutivePagesConcatenate(t *testing.T) {
	var items []entities.Equipment
	for i := uint64(1); i <= 7; i++ {
		items = append(items, eq(i, constants.TypeNotebook))
	}

	var collected []entities.Equipment
	for page := 1; ; page++ {
		chunk := PageSlice(items, page, 3)
		if len(chunk) == 0 {
			break
		}
		collected = append(collected, chunk...)
	}

	require.Len(t, collected, len(items))
	for i := range items {
		assert.Equal(t, items[i].ID, collected[i].ID)
	}
}
