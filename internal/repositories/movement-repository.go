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

type MovementRepositoryInterface interface {
	GetMovements(ctx context.Context, equipmentID uint64) ([]entities.MovementHistory, error)
	CreateMovement(ctx context.Context, tx pgx.Tx, movement entities.MovementHistory) (uint64, error)
}

type MovementRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMovementRepository(storage *pgxpool.Pool, logger *zap.Logger) MovementRepositoryInterface {
	return &MovementRepository{storage: storage, logger: logger}
}

func scanMovement(row pgx.Row) (*entities.MovementHistory, error) {
	var m entities.MovementHistory
	var fromRoom, toRoom sql.NullInt64
	var note sql.NullString

	err := row.Scan(&m.ID, &m.EquipmentID, &fromRoom, &toRoom, &m.MovedBy, &note, &m.MovedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования movement_history: %w", err)
	}

	if fromRoom.Valid {
		id := uint64(fromRoom.Int64)
		m.FromRoomID = &id
	}
	if toRoom.Valid {
		id := uint64(toRoom.Int64)
		m.ToRoomID = &id
	}
	if note.Valid {
		m.Note = &note.String
	}
	return &m, nil
}

func (r *MovementRepository) GetMovements(ctx context.Context, equipmentID uint64) ([]entities.MovementHistory, error) {
	query := `
		SELECT m.id, m.equipment_id, m.from_room_id, m.to_room_id, m.moved_by, m.note, m.moved_at
		FROM movement_history m
		WHERE m.equipment_id = $1
		ORDER BY m.moved_at DESC
	`
	rows, err := r.storage.Query(ctx, query, equipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []entities.MovementHistory
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, *m)
	}
	return movements, nil
}

func (r *MovementRepository) CreateMovement(ctx context.Context, tx pgx.Tx, movement entities.MovementHistory) (uint64, error) {
	query := `
		INSERT INTO movement_history (equipment_id, from_room_id, to_room_id, moved_by, note, moved_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`
	var newID uint64
	err := tx.QueryRow(ctx, query,
		movement.EquipmentID, movement.FromRoomID, movement.ToRoomID, movement.MovedBy, movement.Note,
	).Scan(&newID)
	return newID, err
}
