package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/cache"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	"inventory-system/pkg/types"
)

type stubEquipmentRepo struct {
	repositories.EquipmentRepositoryInterface
	loads int32
	items []entities.Equipment
}

func (r *stubEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	atomic.AddInt32(&r.loads, 1)
	return r.items, uint64(len(r.items)), nil
}

type stubFacultyRepo struct {
	repositories.FacultyRepositoryInterface
	loads int32
	items []entities.Faculty
}

func (r *stubFacultyRepo) GetFaculties(ctx context.Context, filter types.Filter) ([]entities.Faculty, uint64, error) {
	atomic.AddInt32(&r.loads, 1)
	return r.items, uint64(len(r.items)), nil
}

func TestReportService_ReadsThroughCache(t *testing.T) {
	equipmentRepo := &stubEquipmentRepo{items: []entities.Equipment{
		{ID: 1, Name: "Сервер", Status: constants.StatusWorking},
		{ID: 2, Name: "Принтер", Status: constants.StatusNew},
	}}
	facultyRepo := &stubFacultyRepo{}
	store := cache.NewStore(zap.NewNop())
	svc := NewReportService(equipmentRepo, facultyRepo, store, zap.NewNop())

	ctx := context.Background()
	report, err := svc.BuildReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)

	// повторный отчёт и плоская выгрузка читают закешированные списки
	_, err = svc.BuildReport(ctx)
	require.NoError(t, err)
	flat, err := svc.GetFlatReport(ctx)
	require.NoError(t, err)
	assert.Len(t, flat, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&equipmentRepo.loads))
	assert.Equal(t, int32(1), atomic.LoadInt32(&facultyRepo.loads))

	// запись в оборудование сбрасывает список оборудования, но не факультеты
	require.NoError(t, store.Write(ctx, []cache.Tag{cache.TagEquipment}, func(ctx context.Context) error {
		return nil
	}))
	_, err = svc.BuildReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&equipmentRepo.loads))
	assert.Equal(t, int32(1), atomic.LoadInt32(&facultyRepo.loads))
}
