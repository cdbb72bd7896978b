package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
)

type DisposalRepositoryInterface interface {
	GetDisposals(ctx context.Context, equipmentID uint64) ([]entities.Disposal, error)
	FindDisposal(ctx context.Context, id uint64) (*entities.Disposal, error)
	CreateDisposal(ctx context.Context, tx pgx.Tx, disposal entities.Disposal) (uint64, error)
}

type DisposalRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDisposalRepository(storage *pgxpool.Pool, logger *zap.Logger) DisposalRepositoryInterface {
	return &DisposalRepository{storage: storage, logger: logger}
}

func scanDisposal(row pgx.Row) (*entities.Disposal, error) {
	var d entities.Disposal
	err := row.Scan(&d.ID, &d.EquipmentID, &d.RequestedBy, &d.Reason, &d.DisposedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования disposal: %w", err)
	}
	return &d, nil
}

const disposalSelect = `
	SELECT d.id, d.equipment_id, d.requested_by, d.reason, d.disposed_at
	FROM disposals d
`

func (r *DisposalRepository) GetDisposals(ctx context.Context, equipmentID uint64) ([]entities.Disposal, error) {
	rows, err := r.storage.Query(ctx, disposalSelect+" WHERE d.equipment_id = $1 ORDER BY d.disposed_at DESC", equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var disposals []entities.Disposal
	for rows.Next() {
		d, err := scanDisposal(rows)
		if err != nil {
			return nil, err
		}
		disposals = append(disposals, *d)
	}
	return disposals, nil
}

func (r *DisposalRepository) FindDisposal(ctx context.Context, id uint64) (*entities.Disposal, error) {
	return scanDisposal(r.storage.QueryRow(ctx, disposalSelect+" WHERE d.id = $1", id))
}

func (r *DisposalRepository) CreateDisposal(ctx context.Context, tx pgx.Tx, disposal entities.Disposal) (uint64, error) {
	query := `
		INSERT INTO disposals (equipment_id, requested_by, reason, disposed_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query, disposal.EquipmentID, disposal.RequestedBy, disposal.Reason).Scan(&newID)
	return newID, err
}
