package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type RepairRepositoryInterface interface {
	GetRepairs(ctx context.Context, equipmentID uint64) ([]entities.Repair, error)
	FindRepair(ctx context.Context, id uint64) (*entities.Repair, error)
	// FindOpenByEquipment — открытый ремонт единицы оборудования, если есть.
	FindOpenByEquipment(ctx context.Context, equipmentID uint64) (*entities.Repair, error)
	CreateRepair(ctx context.Context, tx pgx.Tx, repair entities.Repair) (uint64, error)
	CloseRepair(ctx context.Context, tx pgx.Tx, id uint64, status string) error
}

type RepairRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRepairRepository(storage *pgxpool.Pool, logger *zap.Logger) RepairRepositoryInterface {
	return &RepairRepository{storage: storage, logger: logger}
}

func scanRepair(row pgx.Row) (*entities.Repair, error) {
	var r entities.Repair
	var closedAt sql.NullTime

	err := row.Scan(&r.ID, &r.EquipmentID, &r.OpenedBy, &r.Reason, &r.Status, &r.OpenedAt, &closedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования repair: %w", err)
	}

	if closedAt.Valid {
		r.ClosedAt = &closedAt.Time
	}
	return &r, nil
}

const repairSelect = `
	SELECT r.id, r.equipment_id, r.opened_by, r.reason, r.status, r.opened_at, r.closed_at
	FROM repairs r
`

func (r *RepairRepository) GetRepairs(ctx context.Context, equipmentID uint64) ([]entities.Repair, error) {
	rows, err := r.storage.Query(ctx, repairSelect+" WHERE r.equipment_id = $1 ORDER BY r.opened_at DESC", equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repairs []entities.Repair
	for rows.Next() {
		rep, err := scanRepair(rows)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, *rep)
	}
	return repairs, nil
}

func (r *RepairRepository) FindRepair(ctx context.Context, id uint64) (*entities.Repair, error) {
	return scanRepair(r.storage.QueryRow(ctx, repairSelect+" WHERE r.id = $1", id))
}

func (r *RepairRepository) FindOpenByEquipment(ctx context.Context, equipmentID uint64) (*entities.Repair, error) {
	query := repairSelect + " WHERE r.equipment_id = $1 AND r.status = $2 ORDER BY r.opened_at DESC LIMIT 1"
	return scanRepair(r.storage.QueryRow(ctx, query, equipmentID, entities.RepairOpen))
}

func (r *RepairRepository) CreateRepair(ctx context.Context, tx pgx.Tx, repair entities.Repair) (uint64, error) {
	query := `
		INSERT INTO repairs (equipment_id, opened_by, reason, status, opened_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query,
		repair.EquipmentID, repair.OpenedBy, repair.Reason, entities.RepairOpen,
	).Scan(&newID)
	return newID, err
}

func (r *RepairRepository) CloseRepair(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	result, err := tx.Exec(ctx,
		"UPDATE repairs SET status = $1, closed_at = NOW() WHERE id = $2 AND status = $3",
		status, id, entities.RepairOpen)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
