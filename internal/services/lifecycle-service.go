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
)

// LifecycleService владеет графом переходов статусов: смена статуса
// возможна только через его эндпоинты, прямого PUT по полю status нет.
type LifecycleServiceInterface interface {
	SendToRepair(ctx context.Context, equipmentID uint64, payload dto.SendToRepairDTO, userID uint64) (*entities.Repair, error)
	CompleteRepair(ctx context.Context, repairID uint64) (*entities.Equipment, error)
	FailRepair(ctx context.Context, repairID uint64, userID uint64) (*entities.Equipment, error)
	Dispose(ctx context.Context, equipmentID uint64, payload dto.DisposeDTO, userID uint64) (*entities.Disposal, error)
	CreateContract(ctx context.Context, payload dto.CreateContractDTO) (*entities.Contract, error)

	GetRepairs(ctx context.Context, equipmentID uint64) ([]entities.Repair, error)
	GetDisposals(ctx context.Context, equipmentID uint64) ([]entities.Disposal, error)
	GetContracts(ctx context.Context, equipmentID uint64) ([]entities.Contract, error)
}

type LifecycleService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	repairRepo    repositories.RepairRepositoryInterface
	disposalRepo  repositories.DisposalRepositoryInterface
	contractRepo  repositories.ContractRepositoryInterface
	txManager     repositories.TxManagerInterface
	store         *cache.Store
	logger        *zap.Logger
}

func NewLifecycleService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	repairRepo repositories.RepairRepositoryInterface,
	disposalRepo repositories.DisposalRepositoryInterface,
	contractRepo repositories.ContractRepositoryInterface,
	txManager repositories.TxManagerInterface,
	store *cache.Store,
	logger *zap.Logger,
) LifecycleServiceInterface {
	return &LifecycleService{
		equipmentRepo: equipmentRepo,
		repairRepo:    repairRepo,
		disposalRepo:  disposalRepo,
		contractRepo:  contractRepo,
		txManager:     txManager,
		store:         store,
		logger:        logger,
	}
}

func transitionError(from, to constants.EquipmentStatus) error {
	return apperrors.NewHttpError(
		http.StatusConflict,
		fmt.Sprintf("Переход статуса %s -> %s недопустим", from, to),
		nil, nil,
	)
}

func (s *LifecycleService) SendToRepair(ctx context.Context, equipmentID uint64, payload dto.SendToRepairDTO, userID uint64) (*entities.Repair, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if !equipment.Status.CanTransitionTo(constants.StatusNeedsRepair) {
		return nil, transitionError(equipment.Status, constants.StatusNeedsRepair)
	}
	if open, err := s.repairRepo.FindOpenByEquipment(ctx, equipmentID); err == nil && open != nil {
		return nil, apperrors.NewHttpError(http.StatusConflict,
			"По этому оборудованию уже открыт ремонт", nil, nil)
	}

	var newID uint64
	err = s.store.Write(ctx, []cache.Tag{cache.TagEquipment, cache.TagRepair}, func(ctx context.Context) error {
		return s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			if err := s.equipmentRepo.UpdateStatus(ctx, tx, equipmentID, constants.StatusNeedsRepair); err != nil {
				return err
			}
			id, err := s.repairRepo.CreateRepair(ctx, tx, entities.Repair{
				EquipmentID: equipmentID,
				OpenedBy:    userID,
				Reason:      payload.Reason,
			})
			newID = id
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Оборудование отправлено в ремонт",
		zap.Uint64("equipmentID", equipmentID), zap.Uint64("repairID", newID))
	return s.repairRepo.FindRepair(ctx, newID)
}

func (s *LifecycleService) CompleteRepair(ctx context.Context, repairID uint64) (*entities.Equipment, error) {
	repair, err := s.repairRepo.FindRepair(ctx, repairID)
	if err != nil {
		return nil, err
	}
	if repair.Status != entities.RepairOpen {
		return nil, apperrors.NewHttpError(http.StatusConflict, "Ремонт уже закрыт", nil, nil)
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, repair.EquipmentID)
	if err != nil {
		return nil, err
	}
	if !equipment.Status.CanTransitionTo(constants.StatusWorking) {
		return nil, transitionError(equipment.Status, constants.StatusWorking)
	}

	err = s.store.Write(ctx, []cache.Tag{cache.TagEquipment, cache.TagRepair}, func(ctx context.Context) error {
		return s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			if err := s.repairRepo.CloseRepair(ctx, tx, repairID, entities.RepairCompleted); err != nil {
				return err
			}
			return s.equipmentRepo.UpdateStatus(ctx, tx, repair.EquipmentID, constants.StatusWorking)
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Ремонт завершён", zap.Uint64("repairID", repairID))
	return s.equipmentRepo.FindEquipment(ctx, repair.EquipmentID)
}

// FailRepair закрывает ремонт как неудачный: оборудование списывается,
// запись о списании создаётся с причиной ремонта.
func (s *LifecycleService) FailRepair(ctx context.Context, repairID uint64, userID uint64) (*entities.Equipment, error) {
	repair, err := s.repairRepo.FindRepair(ctx, repairID)
	if err != nil {
		return nil, err
	}
	if repair.Status != entities.RepairOpen {
		return nil, apperrors.NewHttpError(http.StatusConflict, "Ремонт уже закрыт", nil, nil)
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, repair.EquipmentID)
	if err != nil {
		return nil, err
	}
	if !equipment.Status.CanTransitionTo(constants.StatusDisposed) {
		return nil, transitionError(equipment.Status, constants.StatusDisposed)
	}

	tags := []cache.Tag{cache.TagEquipment, cache.TagRepair, cache.TagDisposal}
	err = s.store.Write(ctx, tags, func(ctx context.Context) error {
		return s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			if err := s.repairRepo.CloseRepair(ctx, tx, repairID, entities.RepairFailed); err != nil {
				return err
			}
			if err := s.equipmentRepo.UpdateStatus(ctx, tx, repair.EquipmentID, constants.StatusDisposed); err != nil {
				return err
			}
			_, err := s.disposalRepo.CreateDisposal(ctx, tx, entities.Disposal{
				EquipmentID: repair.EquipmentID,
				RequestedBy: userID,
				Reason:      fmt.Sprintf("Ремонт не удался: %s", repair.Reason),
			})
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Ремонт закрыт как неудачный, оборудование списано",
		zap.Uint64("repairID", repairID), zap.Uint64("equipmentID", repair.EquipmentID))
	return s.equipmentRepo.FindEquipment(ctx, repair.EquipmentID)
}

func (s *LifecycleService) Dispose(ctx context.Context, equipmentID uint64, payload dto.DisposeDTO, userID uint64) (*entities.Disposal, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if !equipment.Status.CanTransitionTo(constants.StatusDisposed) {
		return nil, transitionError(equipment.Status, constants.StatusDisposed)
	}

	var newID uint64
	err = s.store.Write(ctx, []cache.Tag{cache.TagEquipment, cache.TagDisposal}, func(ctx context.Context) error {
		return s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			if err := s.equipmentRepo.UpdateStatus(ctx, tx, equipmentID, constants.StatusDisposed); err != nil {
				return err
			}
			id, err := s.disposalRepo.CreateDisposal(ctx, tx, entities.Disposal{
				EquipmentID: equipmentID,
				RequestedBy: userID,
				Reason:      payload.Reason,
			})
			newID = id
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Оборудование списано",
		zap.Uint64("equipmentID", equipmentID), zap.Uint64("disposalID", newID))
	return s.disposalRepo.FindDisposal(ctx, newID)
}

func (s *LifecycleService) CreateContract(ctx context.Context, payload dto.CreateContractDTO) (*entities.Contract, error) {
	if _, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}

	number := uuid.New().String()
	if payload.Number != nil && *payload.Number != "" {
		number = *payload.Number
	}

	var newID uint64
	err := s.store.Write(ctx, []cache.Tag{cache.TagContract}, func(ctx context.Context) error {
		id, err := s.contractRepo.CreateContract(ctx, entities.Contract{
			EquipmentID: payload.EquipmentID,
			Number:      number,
			SignedBy:    payload.SignedBy,
			SignedAt:    payload.SignedAt,
		})
		newID = id
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.contractRepo.FindContract(ctx, newID)
}

func (s *LifecycleService) GetRepairs(ctx context.Context, equipmentID uint64) ([]entities.Repair, error) {
	key := cache.Key("repairs", map[string]string{"equipment_id": fmt.Sprintf("%d", equipmentID)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagRepair}, func(ctx context.Context) (interface{}, error) {
		return s.repairRepo.GetRepairs(ctx, equipmentID)
	})
	if err != nil {
		return nil, err
	}
	return val.([]entities.Repair), nil
}

func (s *LifecycleService) GetDisposals(ctx context.Context, equipmentID uint64) ([]entities.Disposal, error) {
	key := cache.Key("disposals", map[string]string{"equipment_id": fmt.Sprintf("%d", equipmentID)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagDisposal}, func(ctx context.Context) (interface{}, error) {
		return s.disposalRepo.GetDisposals(ctx, equipmentID)
	})
	if err != nil {
		return nil, err
	}
	return val.([]entities.Disposal), nil
}

func (s *LifecycleService) GetContracts(ctx context.Context, equipmentID uint64) ([]entities.Contract, error) {
	key := cache.Key("contracts", map[string]string{"equipment_id": fmt.Sprintf("%d", equipmentID)})
	val, err := s.store.Read(ctx, key, []cache.Tag{cache.TagContract}, func(ctx context.Context) (interface{}, error) {
		return s.contractRepo.GetContracts(ctx, equipmentID)
	})
	if err != nil {
		return nil, err
	}
	return val.([]entities.Contract), nil
}
