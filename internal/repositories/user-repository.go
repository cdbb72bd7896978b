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

var userMap = map[string]string{
	"id":         "u.id",
	"fio":        "u.fio",
	"email":      "u.email",
	"role":       "u.role",
	"created_at": "u.created_at",
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error)
	FindUser(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (uint64, error)
	UpdateUser(ctx context.Context, id uint64, user entities.User) error
	UpdatePassword(ctx context.Context, id uint64, hashedPassword string) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	var phone sql.NullString

	err := row.Scan(
		&u.ID, &u.Fio, &u.Email, &phone, &u.Password, &u.Role,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования user: %w", err)
	}

	if phone.Valid {
		u.PhoneNumber = &phone.String
	}
	return &u, nil
}

const userSelect = `
	SELECT u.id, u.fio, u.email, u.phone_number, u.password, u.role,
	       u.created_at, u.updated_at
	FROM users u
`

func (r *UserRepository) GetUsers(ctx context.Context, filter types.Filter) ([]entities.User, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"u.fio": pat},
				sq.ILike{"u.email": pat},
			})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(u.id)").From("users AS u"))

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, userMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.User{}, 0, nil
	}

	baseBuilder := applySearch(psql.Select(
		"u.id", "u.fio", "u.email", "u.phone_number", "u.password", "u.role",
		"u.created_at", "u.updated_at",
	).From("users AS u"))

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("u.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, userMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]entities.User, 0, filter.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}

	return users, total, nil
}

func (r *UserRepository) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	return scanUser(r.storage.QueryRow(ctx, userSelect+" WHERE u.id = $1", id))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return scanUser(r.storage.QueryRow(ctx, userSelect+" WHERE LOWER(u.email) = LOWER($1)", email))
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (uint64, error) {
	query := `
		INSERT INTO users (fio, email, phone_number, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		user.Fio, user.Email, user.PhoneNumber, user.Password, user.Role,
	).Scan(&newID)
	return newID, err
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uint64, user entities.User) error {
	query := `
		UPDATE users
		SET fio = $1, email = $2, phone_number = $3, role = $4, updated_at = NOW()
		WHERE id = $5
	`
	result, err := r.storage.Exec(ctx, query, user.Fio, user.Email, user.PhoneNumber, user.Role, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint64, hashedPassword string) error {
	result, err := r.storage.Exec(ctx,
		"UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2", hashedPassword, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
