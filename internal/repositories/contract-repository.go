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

type ContractRepositoryInterface interface {
	GetContracts(ctx context.Context, equipmentID uint64) ([]entities.Contract, error)
	FindContract(ctx context.Context, id uint64) (*entities.Contract, error)
	CreateContract(ctx context.Context, contract entities.Contract) (uint64, error)
}

type ContractRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewContractRepository(storage *pgxpool.Pool, logger *zap.Logger) ContractRepositoryInterface {
	return &ContractRepository{storage: storage, logger: logger}
}

func scanContract(row pgx.Row) (*entities.Contract, error) {
	var c entities.Contract
	err := row.Scan(&c.ID, &c.EquipmentID, &c.Number, &c.SignedBy, &c.SignedAt, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования contract: %w", err)
	}
	return &c, nil
}

const contractSelect = `
	SELECT c.id, c.equipment_id, c.number, c.signed_by, c.signed_at, c.created_at
	FROM contracts c
`

func (r *ContractRepository) GetContracts(ctx context.Context, equipmentID uint64) ([]entities.Contract, error) {
	rows, err := r.storage.Query(ctx, contractSelect+" WHERE c.equipment_id = $1 ORDER BY c.signed_at DESC", equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []entities.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, nil
}

func (r *ContractRepository) FindContract(ctx context.Context, id uint64) (*entities.Contract, error) {
	return scanContract(r.storage.QueryRow(ctx, contractSelect+" WHERE c.id = $1", id))
}

func (r *ContractRepository) CreateContract(ctx context.Context, contract entities.Contract) (uint64, error) {
	query := `
		INSERT INTO contracts (equipment_id, number, signed_by, signed_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		contract.EquipmentID, contract.Number, contract.SignedBy, contract.SignedAt,
	).Scan(&newID)
	return newID, err
}
