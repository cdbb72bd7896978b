package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventory-system/internal/cache"
	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

type equipmentList struct {
	Items []entities.Equipment
	Total uint64
}

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FilterEquipments(ctx context.Context, f dto.EquipmentFilterDTO) ([]entities.Equipment, uint64, error)
	GetGroupedEquipments(ctx context.Context, page, limit int) ([]EquipmentGroup, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO, authorID uint64) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	MoveEquipment(ctx context.Context, id uint64, payload dto.MoveEquipmentDTO, movedBy uint64) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error

	GetEquipmentTypes(ctx context.Context) ([]entities.EquipmentType, error)
	GetMovements(ctx context.Context, equipmentID uint64) ([]entities.MovementHistory, error)
}

type EquipmentService struct {
	repo         repositories.EquipmentRepositoryInterface
	roomRepo     repositories.RoomRepositoryInterface
	movementRepo repositories.MovementRepositoryInterface
	txManager    repositories.TxManagerInterface
	store        *cache.Store
	logger       *zap.Logger
}

func NewEquipmentService(
	repo repositories.EquipmentRepositoryInterface,
	roomRepo repositories.RoomRepositoryInterface,
	movementRepo repositories.MovementRepositoryInterface,
	txManager repositories.TxManagerInterface,
	store *cache.Store,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		repo:         repo,
		roomRepo:     roomRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
		store:        store,
		logger:       logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	key := cache.ListKey("equipment", filter)
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagEquipment}, func(ctx context.Context) (interface{}, error) {
		items, total, err := s.repo.GetEquipments(ctx, filter)
		if err != nil {
			return nil, err
		}
		return equipmentList{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	list := val.(equipmentList)
	return list.Items, list.Total, nil
}

func filterEndpointKey(f dto.EquipmentFilterDTO) string {
	params := map[string]string{
		"page":  fmt.Sprintf("%d", f.Page),
		"limit": fmt.Sprintf("%d", f.Limit),
	}
	if f.BuildingID != nil {
		params["building_id"] = fmt.Sprintf("%d", *f.BuildingID)
	}
	if f.RoomID != nil {
		params["room_id"] = fmt.Sprintf("%d", *f.RoomID)
	}
	if f.TypeID != nil {
		params["type_id"] = fmt.Sprintf("%d", *f.TypeID)
	}
	if f.Status != nil {
		params["status"] = *f.Status
	}
	if f.AuthorID != nil {
		params["author_id"] = fmt.Sprintf("%d", *f.AuthorID)
	}
	return cache.Key("equipment/filter", params)
}

func (s *EquipmentService) FilterEquipments(ctx context.Context, f dto.EquipmentFilterDTO) ([]entities.Equipment, uint64, error) {
	if f.Status != nil && !constants.EquipmentStatus(*f.Status).Valid() {
		return nil, 0, apperrors.NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("Неизвестный статус: %s", *f.Status), nil, nil)
	}

	val, err := s.store.Read(ctx, filterEndpointKey(f), []cache.Tag{cache.TagEquipment}, func(ctx context.Context) (interface{}, error) {
		items, total, err := s.repo.FilterEquipments(ctx, f)
		if err != nil {
			return nil, err
		}
		return equipmentList{Items: items, Total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	list := val.(equipmentList)
	return list.Items, list.Total, nil
}

func (s *EquipmentService) GetGroupedEquipments(ctx context.Context, page, limit int) ([]EquipmentGroup, error) {
	val, err := s.store.Read(ctx, "equipment/all", []cache.Tag{cache.TagEquipment}, func(ctx context.Context) (interface{}, error) {
		items, _, err := s.repo.GetEquipments(ctx, types.Filter{})
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	groups := GroupEquipmentByType(val.([]entities.Equipment))
	for i := range groups {
		groups[i].Items = PageSlice(groups[i].Items, page, limit)
	}
	return groups, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	key := cache.Key("equipment", map[string]string{"id": fmt.Sprintf("%d", id)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagEquipment}, func(ctx context.Context) (interface{}, error) {
		return s.repo.FindEquipment(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return val.(*entities.Equipment), nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO, authorID uint64) (*entities.Equipment, error) {
	if _, err := s.repo.FindEquipmentType(ctx, payload.TypeID); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Неизвестный тип оборудования", err, nil)
	}
	if payload.RoomID != nil {
		if _, err := s.roomRepo.FindRoom(ctx, *payload.RoomID); err != nil {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, "Комната не найдена", err, nil)
		}
	}

	inventoryNumber := ""
	if payload.InventoryNumber != nil {
		inventoryNumber = *payload.InventoryNumber
		if existing, err := s.repo.FindByInventoryNumber(ctx, inventoryNumber); err == nil && existing != nil {
			return nil, apperrors.NewHttpError(http.StatusConflict,
				fmt.Sprintf("Инвентарный номер %s уже занят", inventoryNumber), nil, nil)
		}
	} else {
		inventoryNumber = uuid.New().String()
	}

	var newID uint64
	err := s.store.Write(ctx, []cache.Tag{cache.TagEquipment}, func(ctx context.Context) error {
		id, err := s.repo.CreateEquipment(ctx, entities.Equipment{
			Name:            payload.Name,
			InventoryNumber: inventoryNumber,
			TypeID:          payload.TypeID,
			Status:          constants.StatusNew,
			RoomID:          payload.RoomID,
			AuthorID:        authorID,
		})
		newID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Оборудование создано",
		zap.Uint64("id", newID), zap.String("inventoryNumber", inventoryNumber))
	return s.repo.FindEquipment(ctx, newID)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	current, err := s.repo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		current.Name = *payload.Name
	}
	if payload.InventoryNumber != nil && *payload.InventoryNumber != current.InventoryNumber {
		if existing, err := s.repo.FindByInventoryNumber(ctx, *payload.InventoryNumber); err == nil && existing != nil {
			return nil, apperrors.NewHttpError(http.StatusConflict,
				fmt.Sprintf("Инвентарный номер %s уже занят", *payload.InventoryNumber), nil, nil)
		}
		current.InventoryNumber = *payload.InventoryNumber
	}
	if payload.TypeID != nil {
		if _, err := s.repo.FindEquipmentType(ctx, *payload.TypeID); err != nil {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, "Неизвестный тип оборудования", err, nil)
		}
		current.TypeID = *payload.TypeID
	}
	if payload.RoomID != nil {
		if _, err := s.roomRepo.FindRoom(ctx, *payload.RoomID); err != nil {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, "Комната не найдена", err, nil)
		}
		current.RoomID = payload.RoomID
	}

	err = s.store.Write(ctx, []cache.Tag{cache.TagEquipment}, func(ctx context.Context) error {
		return s.repo.UpdateEquipment(ctx, id, *current)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindEquipment(ctx, id)
}

// MoveEquipment переносит единицу в другую комнату (или снимает привязку)
// и дописывает запись в журнал перемещений — одной транзакцией.
func (s *EquipmentService) MoveEquipment(ctx context.Context, id uint64, payload dto.MoveEquipmentDTO, movedBy uint64) (*entities.Equipment, error) {
	current, err := s.repo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.ToRoomID != nil {
		if _, err := s.roomRepo.FindRoom(ctx, *payload.ToRoomID); err != nil {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, "Комната назначения не найдена", err, nil)
		}
	}

	err = s.store.Write(ctx, []cache.Tag{cache.TagEquipment, cache.TagMovement}, func(ctx context.Context) error {
		return s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			if err := s.repo.UpdateRoom(ctx, tx, id, payload.ToRoomID); err != nil {
				return err
			}
			_, err := s.movementRepo.CreateMovement(ctx, tx, entities.MovementHistory{
				EquipmentID: id,
				FromRoomID:  current.RoomID,
				ToRoomID:    payload.ToRoomID,
				MovedBy:     movedBy,
				Note:        payload.Note,
			})
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Оборудование перемещено", zap.Uint64("id", id))
	return s.repo.FindEquipment(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	// спецификация и журналы уходят каскадом
	tags := []cache.Tag{cache.TagEquipment, cache.TagSpecification, cache.TagRepair,
		cache.TagDisposal, cache.TagContract, cache.TagMovement}
	return s.store.Write(ctx, tags, func(ctx context.Context) error {
		return s.repo.DeleteEquipment(ctx, id)
	})
}

func (s *EquipmentService) GetEquipmentTypes(ctx context.Context) ([]entities.EquipmentType, error) {
	// справочник типов неизменяем в рантайме, но для единообразия
	// читается через тот же кеш
	val, err := s.store.Read(ctx, "equipment-types", []cache.Tag{cache.TagEquipment}, func(ctx context.Context) (interface{}, error) {
		return s.repo.GetEquipmentTypes(ctx)
	})
	if err != nil {
		return nil, err
	}
	return val.([]entities.EquipmentType), nil
}

func (s *EquipmentService) GetMovements(ctx context.Context, equipmentID uint64) ([]entities.MovementHistory, error) {
	key := cache.Key("movements", map[string]string{"equipment_id": fmt.Sprintf("%d", equipmentID)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagMovement}, func(ctx context.Context) (interface{}, error) {
		return s.movementRepo.GetMovements(ctx, equipmentID)
	})
	if err != nil {
		return nil, err
	}
	return val.([]entities.MovementHistory), nil
}
