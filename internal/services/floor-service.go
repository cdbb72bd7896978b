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

type floorList struct {
	Items []entities.Floor
	Total uint64
}

type FloorServiceInterface interface {
	GetFloors(ctx context.Context, filter types.Filter) ([]entities.Floor, uint64, error)
	FindFloor(ctx context.Context, id uint64) (*entities.Floor, error)
	CreateFloor(ctx context.Context, payload dto.CreateFloorDTO) (*entities.Floor, error)
	UpdateFloor(ctx context.Context, id uint64, payload dto.UpdateFloorDTO) (*entities.Floor, error)
	DeleteFloor(ctx context.Context, id uint64) error
}

type FloorService struct {
	repo         repositories.FloorRepositoryInterface
	buildingRepo repositories.BuildingRepositoryInterface
	store        *cache.Store
	logger       *zap.Logger
}

func NewFloorService(
	repo repositories.FloorRepositoryInterface,
	buildingRepo repositories.BuildingRepositoryInterface,
	store *cache.Store,
	logger *zap.Logger,
) FloorServiceInterface {
	return &FloorService{repo: repo, buildingRepo: buildingRepo, store: store, logger: logger}
}

func (s *FloorService) GetFloors(ctx context.Context, filter types.Filter) ([]entities.Floor, uint64, error) {
	key := cache.ListKey("floors", filter)
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagFloor}, func(ctx context.Context) (interface{}, error) {
		items, total, err := s.repo.GetFloors(ctx, filter)
		if err != nil {
			return nil, err
		}
		return floorList{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	list := val.(floorList)
	return list.Items, list.Total, nil
}

func (s *FloorService) FindFloor(ctx context.Context, id uint64) (*entities.Floor, error) {
	key := cache.Key("floors", map[string]string{"id": fmt.Sprintf("%d", id)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagFloor}, func(ctx context.Context) (interface{}, error) {
		return s.repo.FindFloor(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return val.(*entities.Floor), nil
}

func (s *FloorService) CreateFloor(ctx context.Context, payload dto.CreateFloorDTO) (*entities.Floor, error) {
	if _, err := s.buildingRepo.FindBuilding(ctx, payload.BuildingID); err != nil {
		return nil, err
	}

	var newID uint64
	err := s.store.Write(ctx, []cache.Tag{cache.TagFloor}, func(ctx context.Context) error {
		id, err := s.repo.CreateFloor(ctx, entities.Floor{
			BuildingID:  payload.BuildingID,
			Number:      payload.Number,
			Description: payload.Description,
		})
		newID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Этаж создан", zap.Uint64("id", newID), zap.Uint64("buildingID", payload.BuildingID))
	return s.repo.FindFloor(ctx, newID)
}

func (s *FloorService) UpdateFloor(ctx context.Context, id uint64, payload dto.UpdateFloorDTO) (*entities.Floor, error) {
	current, err := s.repo.FindFloor(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Number != nil {
		current.Number = *payload.Number
	}
	if payload.Description != nil {
		current.Description = payload.Description
	}

	err = s.store.Write(ctx, []cache.Tag{cache.TagFloor}, func(ctx context.Context) error {
		return s.repo.UpdateFloor(ctx, id, *current)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindFloor(ctx, id)
}

func (s *FloorService) DeleteFloor(ctx context.Context, id uint64) error {
	return s.store.Write(ctx, []cache.Tag{cache.TagFloor, cache.TagRoom}, func(ctx context.Context) error {
		return s.repo.DeleteFloor(ctx, id)
	})
}
