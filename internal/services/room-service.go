package services

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"inventory-system/internal/cache"
	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

type roomList struct {
	Items []entities.Room
	Total uint64
}

type RoomServiceInterface interface {
	GetRooms(ctx context.Context, filter types.Filter) ([]entities.Room, uint64, error)
	FindRoom(ctx context.Context, id uint64) (*entities.Room, error)
	CreateRoom(ctx context.Context, payload dto.CreateRoomDTO) (*entities.Room, error)
	UpdateRoom(ctx context.Context, id uint64, payload dto.UpdateRoomDTO) (*entities.Room, error)
	DeleteRoom(ctx context.Context, id uint64) error
}

type RoomService struct {
	repo         repositories.RoomRepositoryInterface
	buildingRepo repositories.BuildingRepositoryInterface
	floorRepo    repositories.FloorRepositoryInterface
	store        *cache.Store
	logger       *zap.Logger
}

func NewRoomService(
	repo repositories.RoomRepositoryInterface,
	buildingRepo repositories.BuildingRepositoryInterface,
	floorRepo repositories.FloorRepositoryInterface,
	store *cache.Store,
	logger *zap.Logger,
) RoomServiceInterface {
	return &RoomService{repo: repo, buildingRepo: buildingRepo, floorRepo: floorRepo, store: store, logger: logger}
}

// checkFloorBelongs не даёт привязать комнату к этажу чужого здания.
func (s *RoomService) checkFloorBelongs(ctx context.Context, buildingID, floorID uint64) error {
	floor, err := s.floorRepo.FindFloor(ctx, floorID)
	if err != nil {
		return err
	}
	if floor.BuildingID != buildingID {
		return apperrors.NewHttpError(
			http.StatusBadRequest,
			"Этаж не принадлежит указанному зданию",
			nil,
			map[string]interface{}{"building_id": buildingID, "floor_id": floorID},
		)
	}
	return nil
}

func (s *RoomService) GetRooms(ctx context.Context, filter types.Filter) ([]entities.Room, uint64, error) {
	key := cache.ListKey("rooms", filter)
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagRoom}, func(ctx context.Context) (interface{}, error) {
		items, total, err := s.repo.GetRooms(ctx, filter)
		if err != nil {
			return nil, err
		}
		return roomList{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	list := val.(roomList)
	return list.Items, list.Total, nil
}

func (s *RoomService) FindRoom(ctx context.Context, id uint64) (*entities.Room, error) {
	key := cache.Key("rooms", map[string]string{"id": fmt.Sprintf("%d", id)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagRoom}, func(ctx context.Context) (interface{}, error) {
		return s.repo.FindRoom(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return val.(*entities.Room), nil
}

func (s *RoomService) CreateRoom(ctx context.Context, payload dto.CreateRoomDTO) (*entities.Room, error) {
	if _, err := s.buildingRepo.FindBuilding(ctx, payload.BuildingID); err != nil {
		return nil, err
	}
	if err := s.checkFloorBelongs(ctx, payload.BuildingID, payload.FloorID); err != nil {
		return nil, err
	}

	var newID uint64
	err := s.store.Write(ctx, []cache.Tag{cache.TagRoom}, func(ctx context.Context) error {
		id, err := s.repo.CreateRoom(ctx, entities.Room{
			BuildingID: payload.BuildingID,
			FloorID:    payload.FloorID,
			Name:       payload.Name,
		})
		newID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Комната создана", zap.Uint64("id", newID))
	return s.repo.FindRoom(ctx, newID)
}

func (s *RoomService) UpdateRoom(ctx context.Context, id uint64, payload dto.UpdateRoomDTO) (*entities.Room, error) {
	current, err := s.repo.FindRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.BuildingID != nil {
		if _, err := s.buildingRepo.FindBuilding(ctx, *payload.BuildingID); err != nil {
			return nil, err
		}
		current.BuildingID = *payload.BuildingID
	}
	if payload.FloorID != nil {
		current.FloorID = *payload.FloorID
	}
	// согласованность пары здание/этаж проверяется всегда: поменяться
	// могла любая из сторон
	if err := s.checkFloorBelongs(ctx, current.BuildingID, current.FloorID); err != nil {
		return nil, err
	}
	if payload.Name != nil {
		current.Name = *payload.Name
	}

	err = s.store.Write(ctx, []cache.Tag{cache.TagRoom}, func(ctx context.Context) error {
		return s.repo.UpdateRoom(ctx, id, *current)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindRoom(ctx, id)
}

func (s *RoomService) DeleteRoom(ctx context.Context, id uint64) error {
	// оборудование комнаты остаётся без привязки, его чтения устаревают
	return s.store.Write(ctx, []cache.Tag{cache.TagRoom, cache.TagEquipment}, func(ctx context.Context) error {
		return s.repo.DeleteRoom(ctx, id)
	})
}
