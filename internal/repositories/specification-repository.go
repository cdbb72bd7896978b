package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
)

type SpecificationRepositoryInterface interface {
	FindSpecification(ctx context.Context, id uint64) (*entities.Specification, error)
	FindByEquipment(ctx context.Context, equipmentID uint64) (*entities.Specification, error)
	CreateSpecification(ctx context.Context, tx pgx.Tx, spec entities.Specification) (uint64, error)
	UpdateAttributes(ctx context.Context, tx pgx.Tx, id uint64, attributes []byte) error
	ReplaceDisks(ctx context.Context, tx pgx.Tx, specID uint64, disks []entities.DiskSpecification) error
	ReplaceGPUs(ctx context.Context, tx pgx.Tx, specID uint64, gpus []entities.GPUSpecification) error
	DeleteSpecification(ctx context.Context, id uint64) error
}

type SpecificationRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewSpecificationRepository(storage *pgxpool.Pool, logger *zap.Logger) SpecificationRepositoryInterface {
	return &SpecificationRepository{storage: storage, logger: logger}
}

func (r *SpecificationRepository) scanOne(ctx context.Context, row pgx.Row) (*entities.Specification, error) {
	var s entities.Specification
	var typeCode string

	err := row.Scan(&s.ID, &s.EquipmentID, &typeCode, &s.Attributes, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования specification: %w", err)
	}
	s.TypeCode = constants.EquipmentTypeCode(typeCode)

	if s.TypeCode.SupportsDisks() {
		if s.Disks, err = r.loadDisks(ctx, s.ID); err != nil {
			return nil, err
		}
	}
	if s.TypeCode.SupportsGPUs() {
		if s.GPUs, err = r.loadGPUs(ctx, s.ID); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (r *SpecificationRepository) loadDisks(ctx context.Context, specID uint64) ([]entities.DiskSpecification, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, specification_id, position, capacity_gb, disk_type
		FROM disk_specifications
		WHERE specification_id = $1
		ORDER BY position ASC`, specID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var disks []entities.DiskSpecification
	for rows.Next() {
		var d entities.DiskSpecification
		if err := rows.Scan(&d.ID, &d.SpecificationID, &d.Position, &d.CapacityGB, &d.DiskType); err != nil {
			return nil, fmt.Errorf("ошибка сканирования disk_specification: %w", err)
		}
		disks = append(disks, d)
	}
	return disks, nil
}

func (r *SpecificationRepository) loadGPUs(ctx context.Context, specID uint64) ([]entities.GPUSpecification, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, specification_id, position, model, memory_gb
		FROM gpu_specifications
		WHERE specification_id = $1
		ORDER BY position ASC`, specID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gpus []entities.GPUSpecification
	for rows.Next() {
		var g entities.GPUSpecification
		if err := rows.Scan(&g.ID, &g.SpecificationID, &g.Position, &g.Model, &g.MemoryGB); err != nil {
			return nil, fmt.Errorf("ошибка сканирования gpu_specification: %w", err)
		}
		gpus = append(gpus, g)
	}
	return gpus, nil
}

const specificationSelect = `
	SELECT s.id, s.equipment_id, s.type_code, s.attributes, s.created_at, s.updated_at
	FROM specifications s
`

func (r *SpecificationRepository) FindSpecification(ctx context.Context, id uint64) (*entities.Specification, error) {
	return r.scanOne(ctx, r.storage.QueryRow(ctx, specificationSelect+" WHERE s.id = $1", id))
}

func (r *SpecificationRepository) FindByEquipment(ctx context.Context, equipmentID uint64) (*entities.Specification, error) {
	return r.scanOne(ctx, r.storage.QueryRow(ctx, specificationSelect+" WHERE s.equipment_id = $1", equipmentID))
}

func (r *SpecificationRepository) CreateSpecification(ctx context.Context, tx pgx.Tx, spec entities.Specification) (uint64, error) {
	query := `
		INSERT INTO specifications (equipment_id, type_code, attributes, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query, spec.EquipmentID, string(spec.TypeCode), []byte(spec.Attributes)).Scan(&newID)
	return newID, err
}

func (r *SpecificationRepository) UpdateAttributes(ctx context.Context, tx pgx.Tx, id uint64, attributes []byte) error {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	result, err := querier.Exec(ctx,
		"UPDATE specifications SET attributes = $1, updated_at = NOW() WHERE id = $2", attributes, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SpecificationRepository) ReplaceDisks(ctx context.Context, tx pgx.Tx, specID uint64, disks []entities.DiskSpecification) error {
	if _, err := tx.Exec(ctx, "DELETE FROM disk_specifications WHERE specification_id = $1", specID); err != nil {
		return err
	}
	for _, d := range disks {
		_, err := tx.Exec(ctx, `
			INSERT INTO disk_specifications (specification_id, position, capacity_gb, disk_type)
			VALUES ($1, $2, $3, $4)`,
			specID, d.Position, d.CapacityGB, d.DiskType)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SpecificationRepository) ReplaceGPUs(ctx context.Context, tx pgx.Tx, specID uint64, gpus []entities.GPUSpecification) error {
	if _, err := tx.Exec(ctx, "DELETE FROM gpu_specifications WHERE specification_id = $1", specID); err != nil {
		return err
	}
	for _, g := range gpus {
		_, err := tx.Exec(ctx, `
			INSERT INTO gpu_specifications (specification_id, position, model, memory_gb)
			VALUES ($1, $2, $3, $4)`,
			specID, g.Position, g.Model, g.MemoryGB)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SpecificationRepository) DeleteSpecification(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM specifications WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
