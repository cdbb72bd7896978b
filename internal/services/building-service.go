package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-system/internal/cache"
	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/types"
)

type buildingList struct {
	Items []entities.Building
	Total uint64
}

type BuildingServiceInterface interface {
	GetBuildings(ctx context.Context, filter types.Filter) ([]entities.Building, uint64, error)
	FindBuilding(ctx context.Context, id uint64) (*entities.Building, error)
	CreateBuilding(ctx context.Context, payload dto.CreateBuildingDTO) (*entities.Building, error)
	UpdateBuilding(ctx context.Context, id uint64, payload dto.UpdateBuildingDTO) (*entities.Building, error)
	DeleteBuilding(ctx context.Context, id uint64) error
}

type BuildingService struct {
	repo           repositories.BuildingRepositoryInterface
	universityRepo repositories.UniversityRepositoryInterface
	store          *cache.Store
	logger         *zap.Logger
}

func NewBuildingService(
	repo repositories.BuildingRepositoryInterface,
	universityRepo repositories.UniversityRepositoryInterface,
	store *cache.Store,
	logger *zap.Logger,
) BuildingServiceInterface {
	return &BuildingService{repo: repo, universityRepo: universityRepo, store: store, logger: logger}
}

func (s *BuildingService) GetBuildings(ctx context.Context, filter types.Filter) ([]entities.Building, uint64, error) {
	key := cache.ListKey("buildings", filter)
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagBuilding}, func(ctx context.Context) (interface{}, error) {
		items, total, err := s.repo.GetBuildings(ctx, filter)
		if err != nil {
			return nil, err
		}
		return buildingList{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	list := val.(buildingList)
	return list.Items, list.Total, nil
}

func (s *BuildingService) FindBuilding(ctx context.Context, id uint64) (*entities.Building, error) {
	key := cache.Key("buildings", map[string]string{"id": fmt.Sprintf("%d", id)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagBuilding}, func(ctx context.Context) (interface{}, error) {
		return s.repo.FindBuilding(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return val.(*entities.Building), nil
}

func (s *BuildingService) CreateBuilding(ctx context.Context, payload dto.CreateBuildingDTO) (*entities.Building, error) {
	// университет обязан существовать
	if _, err := s.universityRepo.FindUniversity(ctx, payload.UniversityID); err != nil {
		return nil, err
	}

	var newID uint64
	err := s.store.Write(ctx, []cache.Tag{cache.TagBuilding}, func(ctx context.Context) error {
		id, err := s.repo.CreateBuilding(ctx, entities.Building{
			UniversityID: payload.UniversityID,
			Name:         payload.Name,
			Address:      payload.Address,
		})
		newID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Здание создано", zap.Uint64("id", newID))
	return s.repo.FindBuilding(ctx, newID)
}

func (s *BuildingService) UpdateBuilding(ctx context.Context, id uint64, payload dto.UpdateBuildingDTO) (*entities.Building, error) {
	current, err := s.repo.FindBuilding(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.UniversityID != nil {
		if _, err := s.universityRepo.FindUniversity(ctx, *payload.UniversityID); err != nil {
			return nil, err
		}
		current.UniversityID = *payload.UniversityID
	}
	if payload.Name != nil {
		current.Name = *payload.Name
	}
	if payload.Address != nil {
		current.Address = payload.Address
	}

	err = s.store.Write(ctx, []cache.Tag{cache.TagBuilding}, func(ctx context.Context) error {
		return s.repo.UpdateBuilding(ctx, id, *current)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindBuilding(ctx, id)
}

func (s *BuildingService) DeleteBuilding(ctx context.Context, id uint64) error {
	// каскад затрагивает этажи, комнаты и факультеты здания
	tags := []cache.Tag{cache.TagBuilding, cache.TagFloor, cache.TagRoom, cache.TagFaculty}
	return s.store.Write(ctx, tags, func(ctx context.Context) error {
		return s.repo.DeleteBuilding(ctx, id)
	})
}
