package repositories

import (
	"context"
	"database/sql"
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

var floorMap = map[string]string{
	"id":          "f.id",
	"building_id": "f.building_id",
	"number":      "f.number",
	"created_at":  "f.created_at",
}

type FloorRepositoryInterface interface {
	GetFloors(ctx context.Context, filter types.Filter) ([]entities.Floor, uint64, error)
	FindFloor(ctx context.Context, id uint64) (*entities.Floor, error)
	CreateFloor(ctx context.Context, floor entities.Floor) (uint64, error)
	UpdateFloor(ctx context.Context, id uint64, floor entities.Floor) error
	DeleteFloor(ctx context.Context, id uint64) error
}

type FloorRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewFloorRepository(storage *pgxpool.Pool, logger *zap.Logger) FloorRepositoryInterface {
	return &FloorRepository{storage: storage, logger: logger}
}

func scanFloor(row pgx.Row) (*entities.Floor, error) {
	var f entities.Floor
	var b entities.Building
	var description sql.NullString

	err := row.Scan(
		&f.ID, &f.BuildingID, &f.Number, &description,
		&f.CreatedAt, &f.UpdatedAt,
		&b.ID, &b.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования floor: %w", err)
	}

	if description.Valid {
		f.Description = &description.String
	}
	if b.ID > 0 {
		f.Building = &b
	}
	return &f, nil
}

func (r *FloorRepository) GetFloors(ctx context.Context, filter types.Filter) ([]entities.Floor, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countBuilder := psql.Select("COUNT(f.id)").From("floors AS f")

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, floorMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Floor{}, 0, nil
	}

	baseBuilder := psql.Select(
		"f.id", "f.building_id", "f.number", "f.description",
		"f.created_at", "f.updated_at",
		"COALESCE(b.id, 0)", "COALESCE(b.name, '')",
	).From("floors AS f").LeftJoin("buildings b ON f.building_id = b.id")

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("f.building_id ASC", "f.number ASC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, floorMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	floors := make([]entities.Floor, 0, filter.Limit)
	for rows.Next() {
		f, err := scanFloor(rows)
		if err != nil {
			return nil, 0, err
		}
		floors = append(floors, *f)
	}

	return floors, total, nil
}

func (r *FloorRepository) FindFloor(ctx context.Context, id uint64) (*entities.Floor, error) {
	query := `
		SELECT f.id, f.building_id, f.number, f.description,
		       f.created_at, f.updated_at,
		       COALESCE(b.id, 0), COALESCE(b.name, '')
		FROM floors f
		LEFT JOIN buildings b ON f.building_id = b.id
		WHERE f.id = $1
	`
	return scanFloor(r.storage.QueryRow(ctx, query, id))
}

func (r *FloorRepository) CreateFloor(ctx context.Context, floor entities.Floor) (uint64, error) {
	query := `
		INSERT INTO floors (building_id, number, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query, floor.BuildingID, floor.Number, floor.Description).Scan(&newID)
	return newID, err
}

func (r *FloorRepository) UpdateFloor(ctx context.Context, id uint64, floor entities.Floor) error {
	query := `
		UPDATE floors
		SET building_id = $1, number = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := r.storage.Exec(ctx, query, floor.BuildingID, floor.Number, floor.Description, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *FloorRepository) DeleteFloor(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM floors WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
