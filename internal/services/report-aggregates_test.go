package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
)

func eqInRoom(id uint64, status constants.EquipmentStatus, room *entities.Room) entities.Equipment {
	e := entities.Equipment{ID: id, Status: status}
	e.Type = &entities.EquipmentType{ID: 1, Code: constants.TypeComputer, Name: "Компьютер"}
	if room != nil {
		e.Room = room
		e.RoomID = &room.ID
	}
	return e
}

func findItem(t *testing.T, items []dto.DistributionItemDTO, key string) dto.DistributionItemDTO {
	t.Helper()
	for _, it := range items {
		if it.Key == key {
			return it
		}
	}
	t.Fatalf("ключ %q не найден в распределении", key)
	return dto.DistributionItemDTO{}
}

func TestStatusDistribution(t *testing.T) {
	items := []entities.Equipment{
		eqInRoom(1, constants.StatusWorking, nil),
		eqInRoom(2, constants.StatusWorking, nil),
		eqInRoom(3, constants.StatusNeedsRepair, nil),
		eqInRoom(4, constants.StatusDisposed, nil),
	}

	dist := StatusDistribution(items)
	require.Len(t, dist, 3, "пустые статусы не выводятся")

	assert.Equal(t, 2, findItem(t, dist, "WORKING").Count)
	assert.Equal(t, 1, findItem(t, dist, "NEEDS_REPAIR").Count)
	assert.Equal(t, 1, findItem(t, dist, "DISPOSED").Count)

	// канонический порядок статусов
	assert.Equal(t, "WORKING", dist[0].Key)
	assert.Equal(t, "DISPOSED", dist[2].Key)
}

func TestTypeDistribution_UnknownLast(t *testing.T) {
	items := []entities.Equipment{
		eq(1, constants.TypeComputer),
		eq(2, constants.TypeProjector),
		eq(3, ""),
		eq(4, constants.TypeComputer),
	}

	dist := TypeDistribution(items)
	require.Len(t, dist, 3)

	assert.Equal(t, string(constants.TypeComputer), dist[0].Key)
	assert.Equal(t, 2, dist[0].Count)
	assert.Equal(t, UnknownTypeGroup, dist[len(dist)-1].Key)
	assert.Equal(t, 1, dist[len(dist)-1].Count)
}

func TestRoomDistribution(t *testing.T) {
	room101 := &entities.Room{ID: 10, Name: "101", BuildingID: 1}
	room202 := &entities.Room{ID: 20, Name: "202", BuildingID: 1}

	items := []entities.Equipment{
		eqInRoom(1, constants.StatusWorking, room101),
		eqInRoom(2, constants.StatusWorking, room101),
		eqInRoom(3, constants.StatusWorking, room202),
		eqInRoom(4, constants.StatusWorking, nil),
	}

	dist := RoomDistribution(items)
	require.Len(t, dist, 3)

	assert.Equal(t, "101", dist[0].Key, "самая наполненная комната первая")
	assert.Equal(t, 2, dist[0].Count)
	assert.Equal(t, 1, findItem(t, dist, NoRoomBucket).Count)
}

func TestFacultyDistribution_TieBreakByAscendingID(t *testing.T) {
	// в здании 1 два факультета: атрибуция достаётся меньшему id
	faculties := []entities.Faculty{
		{ID: 7, BuildingID: 1, Name: "Физический"},
		{ID: 3, BuildingID: 1, Name: "Математический"},
		{ID: 9, BuildingID: 2, Name: "Химический"},
	}

	roomB1 := &entities.Room{ID: 10, Name: "101", BuildingID: 1}
	roomB2 := &entities.Room{ID: 20, Name: "201", BuildingID: 2}

	items := []entities.Equipment{
		eqInRoom(1, constants.StatusWorking, roomB1),
		eqInRoom(2, constants.StatusWorking, roomB1),
		eqInRoom(3, constants.StatusWorking, roomB2),
	}

	dist := FacultyDistribution(items, faculties)
	require.Len(t, dist, 2)

	assert.Equal(t, "Математический", dist[0].Key)
	assert.Equal(t, 2, dist[0].Count)
	assert.Equal(t, "Химический", dist[1].Key)
	assert.Equal(t, 1, dist[1].Count)
}

func TestFacultyDistribution_NoFacultyBucket(t *testing.T) {
	faculties := []entities.Faculty{
		{ID: 1, BuildingID: 1, Name: "Исторический"},
	}

	roomNoFaculty := &entities.Room{ID: 30, Name: "301", BuildingID: 5}

	items := []entities.Equipment{
		eqInRoom(1, constants.StatusWorking, nil),           // без комнаты
		eqInRoom(2, constants.StatusWorking, roomNoFaculty), // здание без факультетов
	}

	dist := FacultyDistribution(items, faculties)
	require.Len(t, dist, 1)
	assert.Equal(t, NoFacultyBucket, dist[0].Key)
	assert.Equal(t, 2, dist[0].Count)
}

func TestBuildReportShape(t *testing.T) {
	items := []entities.Equipment{
		eqInRoom(1, constants.StatusNew, nil),
		eqInRoom(2, constants.StatusWorking, nil),
	}

	report := dto.ReportDTO{
		Total:               len(items),
		StatusDistribution:  StatusDistribution(items),
		TypeDistribution:    TypeDistribution(items),
		RoomDistribution:    RoomDistribution(items),
		FacultyDistribution: FacultyDistribution(items, nil),
	}

	assert.Equal(t, 2, report.Total)

	sum := 0
	for _, it := range report.StatusDistribution {
		sum += it.Count
	}
	assert.Equal(t, report.Total, sum, "распределение по статусам покрывает все единицы")
}
