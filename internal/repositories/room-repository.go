package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/infrastructure/bd"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

var roomMap = map[string]string{
	"id":          "r.id",
	"building_id": "r.building_id",
	"floor_id":    "r.floor_id",
	"name":        "r.name",
	"created_at":  "r.created_at",
}

type RoomRepositoryInterface interface {
	GetRooms(ctx context.Context, filter types.Filter) ([]entities.Room, uint64, error)
	FindRoom(ctx context.Context, id uint64) (*entities.Room, error)
	CreateRoom(ctx context.Context, room entities.Room) (uint64, error)
	UpdateRoom(ctx context.Context, id uint64, room entities.Room) error
	DeleteRoom(ctx context.Context, id uint64) error
}

type RoomRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRoomRepository(storage *pgxpool.Pool, logger *zap.Logger) RoomRepositoryInterface {
	return &RoomRepository{storage: storage, logger: logger}
}

func scanRoom(row pgx.Row) (*entities.Room, error) {
	var room entities.Room
	var b entities.Building
	var f entities.Floor

	err := row.Scan(
		&room.ID, &room.BuildingID, &room.FloorID, &room.Name,
		&room.CreatedAt, &room.UpdatedAt,
		&b.ID, &b.Name,
		&f.ID, &f.Number,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования room: %w", err)
	}

	if b.ID > 0 {
		room.Building = &b
	}
	if f.ID > 0 {
		room.Floor = &f
	}
	return &room, nil
}

func (r *RoomRepository) GetRooms(ctx context.Context, filter types.Filter) ([]entities.Room, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			return b.Where(sq.ILike{"r.name": "%" + filter.Search + "%"})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(r.id)").From("rooms AS r"))

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, roomMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Room{}, 0, nil
	}

	baseBuilder := applySearch(psql.Select(
		"r.id", "r.building_id", "r.floor_id", "r.name",
		"r.created_at", "r.updated_at",
		"COALESCE(b.id, 0)", "COALESCE(b.name, '')",
		"COALESCE(f.id, 0)", "COALESCE(f.number, 0)",
	).From("rooms AS r").
		LeftJoin("buildings b ON r.building_id = b.id").
		LeftJoin("floors f ON r.floor_id = f.id"))

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("r.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, roomMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	rooms := make([]entities.Room, 0, filter.Limit)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, *room)
	}

	return rooms, total, nil
}

func (r *RoomRepository) FindRoom(ctx context.Context, id uint64) (*entities.Room, error) {
	query := `
		SELECT r.id, r.building_id, r.floor_id, r.name,
		       r.created_at, r.updated_at,
		       COALESCE(b.id, 0), COALESCE(b.name, ''),
		       COALESCE(f.id, 0), COALESCE(f.number, 0)
		FROM rooms r
		LEFT JOIN buildings b ON r.building_id = b.id
		LEFT JOIN floors f ON r.floor_id = f.id
		WHERE r.id = $1
	`
	return scanRoom(r.storage.QueryRow(ctx, query, id))
}

func (r *RoomRepository) CreateRoom(ctx context.Context, room entities.Room) (uint64, error) {
	query := `
		INSERT INTO rooms (building_id, floor_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query, room.BuildingID, room.FloorID, room.Name).Scan(&newID)
	return newID, err
}

func (r *RoomRepository) UpdateRoom(ctx context.Context, id uint64, room entities.Room) error {
	query := `
		UPDATE rooms
		SET building_id = $1, floor_id = $2, name = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := r.storage.Exec(ctx, query, room.BuildingID, room.FloorID, room.Name, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoomRepository) DeleteRoom(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM rooms WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
