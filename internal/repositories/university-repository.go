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

var universityMap = map[string]string{
	"id":         "u.id",
	"name":       "u.name",
	"created_at": "u.created_at",
}

type UniversityRepositoryInterface interface {
	GetUniversities(ctx context.Context, filter types.Filter) ([]entities.University, uint64, error)
	FindUniversity(ctx context.Context, id uint64) (*entities.University, error)
	CreateUniversity(ctx context.Context, university entities.University) (uint64, error)
	UpdateUniversity(ctx context.Context, id uint64, university entities.University) error
	DeleteUniversity(ctx context.Context, id uint64) error
}

type UniversityRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUniversityRepository(storage *pgxpool.Pool, logger *zap.Logger) UniversityRepositoryInterface {
	return &UniversityRepository{storage: storage, logger: logger}
}

func scanUniversity(row pgx.Row) (*entities.University, error) {
	var u entities.University
	var address sql.NullString

	err := row.Scan(&u.ID, &u.Name, &address, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования university: %w", err)
	}

	if address.Valid {
		u.Address = &address.String
	}
	return &u, nil
}

func (r *UniversityRepository) GetUniversities(ctx context.Context, filter types.Filter) ([]entities.University, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			return b.Where(sq.ILike{"u.name": "%" + filter.Search + "%"})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(u.id)").From("universities AS u"))

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, universityMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.University{}, 0, nil
	}

	baseBuilder := applySearch(psql.Select(
		"u.id", "u.name", "u.address", "u.created_at", "u.updated_at",
	).From("universities AS u"))

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("u.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, universityMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	universities := make([]entities.University, 0, filter.Limit)
	for rows.Next() {
		u, err := scanUniversity(rows)
		if err != nil {
			return nil, 0, err
		}
		universities = append(universities, *u)
	}

	return universities, total, nil
}

func (r *UniversityRepository) FindUniversity(ctx context.Context, id uint64) (*entities.University, error) {
	query := `
		SELECT u.id, u.name, u.address, u.created_at, u.updated_at
		FROM universities u
		WHERE u.id = $1
	`
	return scanUniversity(r.storage.QueryRow(ctx, query, id))
}

func (r *UniversityRepository) CreateUniversity(ctx context.Context, university entities.University) (uint64, error) {
	query := `
		INSERT INTO universities (name, address, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query, university.Name, university.Address).Scan(&newID)
	return newID, err
}

func (r *UniversityRepository) UpdateUniversity(ctx context.Context, id uint64, university entities.University) error {
	query := `
		UPDATE universities
		SET name = $1, address = $2, updated_at = NOW()
		WHERE id = $3
	`
	result, err := r.storage.Exec(ctx, query, university.Name, university.Address, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UniversityRepository) DeleteUniversity(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM universities WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
