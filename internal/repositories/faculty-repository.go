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

var facultyMap = map[string]string{
	"id":          "f.id",
	"building_id": "f.building_id",
	"name":        "f.name",
	"created_at":  "f.created_at",
}

type FacultyRepositoryInterface interface {
	GetFaculties(ctx context.Context, filter types.Filter) ([]entities.Faculty, uint64, error)
	FindFaculty(ctx context.Context, id uint64) (*entities.Faculty, error)
	// FindFirstByBuilding — первый факультет здания по возрастанию id;
	// используется при атрибуции оборудования факультету.
	FindFirstByBuilding(ctx context.Context, buildingID uint64) (*entities.Faculty, error)
	CreateFaculty(ctx context.Context, faculty entities.Faculty) (uint64, error)
	UpdateFaculty(ctx context.Context, id uint64, faculty entities.Faculty) error
	DeleteFaculty(ctx context.Context, id uint64) error
}

type FacultyRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewFacultyRepository(storage *pgxpool.Pool, logger *zap.Logger) FacultyRepositoryInterface {
	return &FacultyRepository{storage: storage, logger: logger}
}

func scanFaculty(row pgx.Row) (*entities.Faculty, error) {
	var f entities.Faculty
	var b entities.Building
	var deanFio sql.NullString

	err := row.Scan(
		&f.ID, &f.BuildingID, &f.Name, &deanFio,
		&f.CreatedAt, &f.UpdatedAt,
		&b.ID, &b.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования faculty: %w", err)
	}

	if deanFio.Valid {
		f.DeanFio = &deanFio.String
	}
	if b.ID > 0 {
		f.Building = &b
	}
	return &f, nil
}

const facultySelect = `
	SELECT f.id, f.building_id, f.name, f.dean_fio,
	       f.created_at, f.updated_at,
	       COALESCE(b.id, 0), COALESCE(b.name, '')
	FROM faculties f
	LEFT JOIN buildings b ON f.building_id = b.id
`

func (r *FacultyRepository) GetFaculties(ctx context.Context, filter types.Filter) ([]entities.Faculty, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			return b.Where(sq.ILike{"f.name": "%" + filter.Search + "%"})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(f.id)").From("faculties AS f"))

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, facultyMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Faculty{}, 0, nil
	}

	baseBuilder := applySearch(psql.Select(
		"f.id", "f.building_id", "f.name", "f.dean_fio",
		"f.created_at", "f.updated_at",
		"COALESCE(b.id, 0)", "COALESCE(b.name, '')",
	).From("faculties AS f").LeftJoin("buildings b ON f.building_id = b.id"))

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("f.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, facultyMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	faculties := make([]entities.Faculty, 0, filter.Limit)
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, 0, err
		}
		faculties = append(faculties, *f)
	}

	return faculties, total, nil
}

func (r *FacultyRepository) FindFaculty(ctx context.Context, id uint64) (*entities.Faculty, error) {
	return scanFaculty(r.storage.QueryRow(ctx, facultySelect+" WHERE f.id = $1", id))
}

func (r *FacultyRepository) FindFirstByBuilding(ctx context.Context, buildingID uint64) (*entities.Faculty, error) {
	query := facultySelect + " WHERE f.building_id = $1 ORDER BY f.id ASC LIMIT 1"
	return scanFaculty(r.storage.QueryRow(ctx, query, buildingID))
}

func (r *FacultyRepository) CreateFaculty(ctx context.Context, faculty entities.Faculty) (uint64, error) {
	query := `
		INSERT INTO faculties (building_id, name, dean_fio, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query, faculty.BuildingID, faculty.Name, faculty.DeanFio).Scan(&newID)
	return newID, err
}

func (r *FacultyRepository) UpdateFaculty(ctx context.Context, id uint64, faculty entities.Faculty) error {
	query := `
		UPDATE faculties
		SET building_id = $1, name = $2, dean_fio = $3, updated_at = NOW()
		WHERE id = $4
	`
	result, err := r.storage.Exec(ctx, query, faculty.BuildingID, faculty.Name, faculty.DeanFio, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *FacultyRepository) DeleteFaculty(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM faculties WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
