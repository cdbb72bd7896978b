package services

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/cache"
	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

// ReportService считает агрегаты панели заново на каждый запрос, но
// исходные списки берёт через те же закешированные чтения, что и
// остальные экраны: запись в оборудование или факультеты сбрасывает
// и отчёт.
type ReportServiceInterface interface {
	BuildReport(ctx context.Context) (*dto.ReportDTO, error)
	GetFlatReport(ctx context.Context) ([]entities.Equipment, error)
}

type ReportService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	facultyRepo   repositories.FacultyRepositoryInterface
	store         *cache.Store
	logger        *zap.Logger
}

func NewReportService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	facultyRepo repositories.FacultyRepositoryInterface,
	store *cache.Store,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{equipmentRepo: equipmentRepo, facultyRepo: facultyRepo, store: store, logger: logger}
}

// ключ совпадает с группировкой по типам: оба экрана делят одно
// закешированное значение.
func (s *ReportService) allEquipment(ctx context.Context) ([]entities.Equipment, error) {
	val, err := s.store.Read(ctx, "equipment/all", []cache.Tag{cache.TagEquipment}, func(ctx context.Context) (interface{}, error) {
		items, _, err := s.equipmentRepo.GetEquipments(ctx, types.Filter{})
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]entities.Equipment), nil
}

func (s *ReportService) allFaculties(ctx context.Context) ([]entities.Faculty, error) {
	val, err := s.store.Read(ctx, "faculties/all", []cache.Tag{cache.TagFaculty}, func(ctx context.Context) (interface{}, error) {
		items, _, err := s.facultyRepo.GetFaculties(ctx, types.Filter{})
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]entities.Faculty), nil
}

func (s *ReportService) BuildReport(ctx context.Context) (*dto.ReportDTO, error) {
	equipment, err := s.allEquipment(ctx)
	if err != nil {
		return nil, err
	}
	faculties, err := s.allFaculties(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ReportDTO{
		Total:               len(equipment),
		StatusDistribution:  StatusDistribution(equipment),
		TypeDistribution:    TypeDistribution(equipment),
		RoomDistribution:    RoomDistribution(equipment),
		FacultyDistribution: FacultyDistribution(equipment, faculties),
	}, nil
}

func (s *ReportService) GetFlatReport(ctx context.Context) ([]entities.Equipment, error) {
	return s.allEquipment(ctx)
}
