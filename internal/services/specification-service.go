package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"inventory-system/internal/cache"
	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
)

type SpecificationServiceInterface interface {
	FindByEquipment(ctx context.Context, code constants.EquipmentTypeCode, equipmentID uint64) (*entities.Specification, error)
	CreateSpecification(ctx context.Context, code constants.EquipmentTypeCode, payload dto.CreateSpecificationDTO) (*entities.Specification, error)
	UpdateSpecification(ctx context.Context, code constants.EquipmentTypeCode, id uint64, payload dto.UpdateSpecificationDTO) (*entities.Specification, error)
	DeleteSpecification(ctx context.Context, code constants.EquipmentTypeCode, id uint64) error
}

type SpecificationService struct {
	repo          repositories.SpecificationRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	txManager     repositories.TxManagerInterface
	store         *cache.Store
	validate      *validator.Validate
	logger        *zap.Logger
}

func NewSpecificationService(
	repo repositories.SpecificationRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	txManager repositories.TxManagerInterface,
	store *cache.Store,
	validate *validator.Validate,
	logger *zap.Logger,
) SpecificationServiceInterface {
	return &SpecificationService{
		repo:          repo,
		equipmentRepo: equipmentRepo,
		txManager:     txManager,
		store:         store,
		validate:      validate,
		logger:        logger,
	}
}

func (s *SpecificationService) validateAttributes(code constants.EquipmentTypeCode, payload []byte) error {
	target, err := decodeSpecAttributes(code, payload)
	if err != nil {
		return err
	}
	if err := s.validate.Struct(target); err != nil {
		return err
	}
	return nil
}

// checkSubRecords: диски и видеокарты допустимы не для всех типов.
func checkSubRecords(code constants.EquipmentTypeCode, disks []dto.DiskSpecificationDTO, gpus []dto.GPUSpecificationDTO) error {
	if len(disks) > 0 && !code.SupportsDisks() {
		return apperrors.NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("Тип %s не поддерживает дисковые подзаписи", code), nil, nil)
	}
	if len(gpus) > 0 && !code.SupportsGPUs() {
		return apperrors.NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("Тип %s не поддерживает подзаписи видеокарт", code), nil, nil)
	}
	return nil
}

func toDiskEntities(disks []dto.DiskSpecificationDTO) []entities.DiskSpecification {
	out := make([]entities.DiskSpecification, 0, len(disks))
	for _, d := range disks {
		out = append(out, entities.DiskSpecification{
			Position:   d.Position,
			CapacityGB: d.CapacityGB,
			DiskType:   d.DiskType,
		})
	}
	return out
}

func toGPUEntities(gpus []dto.GPUSpecificationDTO) []entities.GPUSpecification {
	out := make([]entities.GPUSpecification, 0, len(gpus))
	for _, g := range gpus {
		out = append(out, entities.GPUSpecification{
			Position: g.Position,
			Model:    g.Model,
			MemoryGB: g.MemoryGB,
		})
	}
	return out
}

func (s *SpecificationService) FindByEquipment(ctx context.Context, code constants.EquipmentTypeCode, equipmentID uint64) (*entities.Specification, error) {
	key := cache.Key(string(code)+"-specification", map[string]string{"equipment_id": fmt.Sprintf("%d", equipmentID)})
	val, err := s.store.Read(ctx, key, cache.SpecTags(code), func(ctx context.Context) (interface{}, error) {
		spec, err := s.repo.FindByEquipment(ctx, equipmentID)
		if err != nil {
			return nil, err
		}
		if spec.TypeCode != code {
			return nil, apperrors.ErrNotFound
		}
		return spec, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*entities.Specification), nil
}

func (s *SpecificationService) CreateSpecification(ctx context.Context, code constants.EquipmentTypeCode, payload dto.CreateSpecificationDTO) (*entities.Specification, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}
	if equipment.Type == nil || equipment.Type.Code != code {
		return nil, apperrors.NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("Оборудование %d не относится к типу %s", payload.EquipmentID, code), nil, nil)
	}

	// ровно одна спецификация на единицу оборудования
	if existing, err := s.repo.FindByEquipment(ctx, payload.EquipmentID); err == nil && existing != nil {
		return nil, apperrors.NewHttpError(http.StatusConflict,
			"У этого оборудования уже есть спецификация", nil, nil)
	}

	if err := s.validateAttributes(code, payload.Attributes); err != nil {
		return nil, err
	}
	if err := checkSubRecords(code, payload.Disks, payload.GPUs); err != nil {
		return nil, err
	}

	var newID uint64
	err = s.store.Write(ctx, []cache.Tag{cache.SpecTag(code)}, func(ctx context.Context) error {
		return s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			id, err := s.repo.CreateSpecification(ctx, tx, entities.Specification{
				EquipmentID: payload.EquipmentID,
				TypeCode:    code,
				Attributes:  payload.Attributes,
			})
			if err != nil {
				return err
			}
			newID = id
			if len(payload.Disks) > 0 {
				if err := s.repo.ReplaceDisks(ctx, tx, id, toDiskEntities(payload.Disks)); err != nil {
					return err
				}
			}
			if len(payload.GPUs) > 0 {
				if err := s.repo.ReplaceGPUs(ctx, tx, id, toGPUEntities(payload.GPUs)); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Спецификация создана",
		zap.Uint64("id", newID), zap.String("type", string(code)))
	return s.repo.FindSpecification(ctx, newID)
}

func (s *SpecificationService) UpdateSpecification(ctx context.Context, code constants.EquipmentTypeCode, id uint64, payload dto.UpdateSpecificationDTO) (*entities.Specification, error) {
	current, err := s.repo.FindSpecification(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.TypeCode != code {
		return nil, apperrors.ErrNotFound
	}

	if payload.Attributes != nil {
		if err := s.validateAttributes(code, payload.Attributes); err != nil {
			return nil, err
		}
	}
	if err := checkSubRecords(code, payload.Disks, payload.GPUs); err != nil {
		return nil, err
	}

	err = s.store.Write(ctx, []cache.Tag{cache.SpecTag(code)}, func(ctx context.Context) error {
		return s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
			if payload.Attributes != nil {
				if err := s.repo.UpdateAttributes(ctx, tx, id, payload.Attributes); err != nil {
					return err
				}
			}
			if payload.Disks != nil {
				if err := s.repo.ReplaceDisks(ctx, tx, id, toDiskEntities(payload.Disks)); err != nil {
					return err
				}
			}
			if payload.GPUs != nil {
				if err := s.repo.ReplaceGPUs(ctx, tx, id, toGPUEntities(payload.GPUs)); err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindSpecification(ctx, id)
}

func (s *SpecificationService) DeleteSpecification(ctx context.Context, code constants.EquipmentTypeCode, id uint64) error {
	current, err := s.repo.FindSpecification(ctx, id)
	if err != nil {
		return err
	}
	if current.TypeCode != code {
		return apperrors.ErrNotFound
	}

	return s.store.Write(ctx, []cache.Tag{cache.SpecTag(code)}, func(ctx context.Context) error {
		return s.repo.DeleteSpecification(ctx, id)
	})
}
