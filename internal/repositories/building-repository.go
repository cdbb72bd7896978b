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

var buildingMap = map[string]string{
	"id":            "b.id",
	"university_id": "b.university_id",
	"name":          "b.name",
	"created_at":    "b.created_at",
}

type BuildingRepositoryInterface interface {
	GetBuildings(ctx context.Context, filter types.Filter) ([]entities.Building, uint64, error)
	FindBuilding(ctx context.Context, id uint64) (*entities.Building, error)
	CreateBuilding(ctx context.Context, building entities.Building) (uint64, error)
	UpdateBuilding(ctx context.Context, id uint64, building entities.Building) error
	DeleteBuilding(ctx context.Context, id uint64) error
}

type BuildingRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewBuildingRepository(storage *pgxpool.Pool, logger *zap.Logger) BuildingRepositoryInterface {
	return &BuildingRepository{storage: storage, logger: logger}
}

func scanBuilding(row pgx.Row) (*entities.Building, error) {
	var b entities.Building
	var u entities.University
	var address sql.NullString

	err := row.Scan(
		&b.ID, &b.UniversityID, &b.Name, &address,
		&b.CreatedAt, &b.UpdatedAt,
		&u.ID, &u.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования building: %w", err)
	}

	if address.Valid {
		b.Address = &address.String
	}
	if u.ID > 0 {
		b.University = &u
	}
	return &b, nil
}

func (r *BuildingRepository) GetBuildings(ctx context.Context, filter types.Filter) ([]entities.Building, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"b.name": pat},
				sq.ILike{"b.address": pat},
			})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(b.id)").From("buildings AS b"))

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, buildingMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Building{}, 0, nil
	}

	baseBuilder := applySearch(psql.Select(
		"b.id", "b.university_id", "b.name", "b.address",
		"b.created_at", "b.updated_at",
		"COALESCE(u.id, 0)", "COALESCE(u.name, '')",
	).From("buildings AS b").LeftJoin("universities u ON b.university_id = u.id"))

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("b.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, buildingMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	buildings := make([]entities.Building, 0, filter.Limit)
	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, 0, err
		}
		buildings = append(buildings, *b)
	}

	return buildings, total, nil
}

func (r *BuildingRepository) FindBuilding(ctx context.Context, id uint64) (*entities.Building, error) {
	query := `
		SELECT b.id, b.university_id, b.name, b.address,
		       b.created_at, b.updated_at,
		       COALESCE(u.id, 0), COALESCE(u.name, '')
		FROM buildings b
		LEFT JOIN universities u ON b.university_id = u.id
		WHERE b.id = $1
	`
	return scanBuilding(r.storage.QueryRow(ctx, query, id))
}

func (r *BuildingRepository) CreateBuilding(ctx context.Context, building entities.Building) (uint64, error) {
	query := `
		INSERT INTO buildings (university_id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query, building.UniversityID, building.Name, building.Address).Scan(&newID)
	return newID, err
}

func (r *BuildingRepository) UpdateBuilding(ctx context.Context, id uint64, building entities.Building) error {
	query := `
		UPDATE buildings
		SET university_id = $1, name = $2, address = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := r.storage.Exec(ctx, query, building.UniversityID, building.Name, building.Address, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BuildingRepository) DeleteBuilding(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM buildings WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
