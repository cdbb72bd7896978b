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

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/infrastructure/bd"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

var equipmentMap = map[string]string{
	"id":               "e.id",
	"name":             "e.name",
	"inventory_number": "e.inventory_number",
	"type_id":          "e.type_id",
	"status":           "e.status",
	"room_id":          "e.room_id",
	"author_id":        "e.author_id",
	"created_at":       "e.created_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	// FilterEquipments — фильтрующий эндпоинт: все заданные условия
	// объединяются по AND, building_id берётся из комнаты.
	FilterEquipments(ctx context.Context, f dto.EquipmentFilterDTO) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	FindByInventoryNumber(ctx context.Context, inventoryNumber string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) (uint64, error)
	UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status constants.EquipmentStatus) error
	UpdateRoom(ctx context.Context, tx pgx.Tx, id uint64, roomID *uint64) error
	DeleteEquipment(ctx context.Context, id uint64) error

	GetEquipmentTypes(ctx context.Context) ([]entities.EquipmentType, error)
	FindEquipmentType(ctx context.Context, id uint64) (*entities.EquipmentType, error)
	FindEquipmentTypeByCode(ctx context.Context, code constants.EquipmentTypeCode) (*entities.EquipmentType, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	var t entities.EquipmentType
	var typeCode string
	var roomID sql.NullInt64
	var room entities.Room
	var roomName sql.NullString
	var roomBuildingID sql.NullInt64
	var author entities.User

	err := row.Scan(
		&e.ID, &e.Name, &e.InventoryNumber, &e.TypeID, &e.Status, &roomID, &e.AuthorID,
		&e.CreatedAt, &e.UpdatedAt,
		&t.ID, &typeCode, &t.Name,
		&room.ID, &roomName, &roomBuildingID,
		&author.ID, &author.Fio,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования equipment: %w", err)
	}

	if roomID.Valid {
		id := uint64(roomID.Int64)
		e.RoomID = &id
	}
	if t.ID > 0 {
		t.Code = constants.EquipmentTypeCode(typeCode)
		e.Type = &t
	}
	if room.ID > 0 {
		if roomName.Valid {
			room.Name = roomName.String
		}
		if roomBuildingID.Valid {
			room.BuildingID = uint64(roomBuildingID.Int64)
		}
		e.Room = &room
	}
	if author.ID > 0 {
		e.Author = &author
	}
	return &e, nil
}

const equipmentColumns = `e.id, e.name, e.inventory_number, e.type_id, e.status, e.room_id, e.author_id,
	       e.created_at, e.updated_at,
	       COALESCE(t.id, 0), COALESCE(t.code, ''), COALESCE(t.name, ''),
	       COALESCE(r.id, 0), r.name, r.building_id,
	       COALESCE(a.id, 0), COALESCE(a.fio, '')`

func equipmentSelectBuilder(psql sq.StatementBuilderType) sq.SelectBuilder {
	return psql.Select(
		"e.id", "e.name", "e.inventory_number", "e.type_id", "e.status", "e.room_id", "e.author_id",
		"e.created_at", "e.updated_at",
		"COALESCE(t.id, 0)", "COALESCE(t.code, '')", "COALESCE(t.name, '')",
		"COALESCE(r.id, 0)", "r.name", "r.building_id",
		"COALESCE(a.id, 0)", "COALESCE(a.fio, '')",
	).From("equipment AS e").
		LeftJoin("equipment_types t ON e.type_id = t.id").
		LeftJoin("rooms r ON e.room_id = r.id").
		LeftJoin("users a ON e.author_id = a.id")
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"e.name": pat},
				sq.ILike{"e.inventory_number": pat},
			})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(e.id)").From("equipment AS e"))

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = bd.ApplyListParams(countBuilder, countFilter, equipmentMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	baseBuilder := applySearch(equipmentSelectBuilder(psql))
	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("e.id DESC")
	}
	baseBuilder = bd.ApplyListParams(baseBuilder, filter, equipmentMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0, filter.Limit)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *e)
	}

	return list, total, nil
}

func (r *EquipmentRepository) FilterEquipments(ctx context.Context, f dto.EquipmentFilterDTO) ([]entities.Equipment, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applyConditions := func(b sq.SelectBuilder) sq.SelectBuilder {
		if f.BuildingID != nil {
			b = b.Where(sq.Eq{"r.building_id": *f.BuildingID})
		}
		if f.RoomID != nil {
			b = b.Where(sq.Eq{"e.room_id": *f.RoomID})
		}
		if f.TypeID != nil {
			b = b.Where(sq.Eq{"e.type_id": *f.TypeID})
		}
		if f.Status != nil {
			b = b.Where(sq.Eq{"e.status": *f.Status})
		}
		if f.AuthorID != nil {
			b = b.Where(sq.Eq{"e.author_id": *f.AuthorID})
		}
		return b
	}

	countBuilder := applyConditions(psql.Select("COUNT(e.id)").
		From("equipment AS e").
		LeftJoin("rooms r ON e.room_id = r.id"))

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipment{}, 0, nil
	}

	baseBuilder := applyConditions(equipmentSelectBuilder(psql)).OrderBy("e.id DESC")

	if f.Limit > 0 {
		baseBuilder = baseBuilder.Limit(uint64(f.Limit))
		if f.Page > 1 {
			baseBuilder = baseBuilder.Offset(uint64((f.Page - 1) * f.Limit))
		}
	}

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0, f.Limit)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *e)
	}

	return list, total, nil
}

const equipmentSelect = `
	SELECT ` + equipmentColumns + `
	FROM equipment e
	LEFT JOIN equipment_types t ON e.type_id = t.id
	LEFT JOIN rooms r ON e.room_id = r.id
	LEFT JOIN users a ON e.author_id = a.id
`

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return scanEquipment(r.storage.QueryRow(ctx, equipmentSelect+" WHERE e.id = $1", id))
}

func (r *EquipmentRepository) FindByInventoryNumber(ctx context.Context, inventoryNumber string) (*entities.Equipment, error) {
	return scanEquipment(r.storage.QueryRow(ctx, equipmentSelect+" WHERE e.inventory_number = $1", inventoryNumber))
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) (uint64, error) {
	query := `
		INSERT INTO equipment (name, inventory_number, type_id, status, room_id, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		equipment.Name, equipment.InventoryNumber, equipment.TypeID,
		equipment.Status, equipment.RoomID, equipment.AuthorID,
	).Scan(&newID)
	return newID, err
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, equipment entities.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $1, inventory_number = $2, type_id = $3, room_id = $4, updated_at = NOW()
		WHERE id = $5
	`
	result, err := r.storage.Exec(ctx, query,
		equipment.Name, equipment.InventoryNumber, equipment.TypeID, equipment.RoomID, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, id uint64, status constants.EquipmentStatus) error {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	result, err := querier.Exec(ctx,
		"UPDATE equipment SET status = $1, updated_at = NOW() WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) UpdateRoom(ctx context.Context, tx pgx.Tx, id uint64, roomID *uint64) error {
	var querier Querier = r.storage
	if tx != nil {
		querier = tx
	}
	result, err := querier.Exec(ctx,
		"UPDATE equipment SET room_id = $1, updated_at = NOW() WHERE id = $2", roomID, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// -----------------------------------------------------------
// Справочник типов
// -----------------------------------------------------------

func (r *EquipmentRepository) GetEquipmentTypes(ctx context.Context) ([]entities.EquipmentType, error) {
	rows, err := r.storage.Query(ctx, "SELECT id, code, name FROM equipment_types ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.EquipmentType, 0, len(constants.AllEquipmentTypes))
	for rows.Next() {
		var t entities.EquipmentType
		var code string
		if err := rows.Scan(&t.ID, &code, &t.Name); err != nil {
			return nil, fmt.Errorf("ошибка сканирования equipment_type: %w", err)
		}
		t.Code = constants.EquipmentTypeCode(code)
		list = append(list, t)
	}
	return list, nil
}

func (r *EquipmentRepository) findType(ctx context.Context, where string, arg any) (*entities.EquipmentType, error) {
	var t entities.EquipmentType
	var code string
	err := r.storage.QueryRow(ctx,
		"SELECT id, code, name FROM equipment_types WHERE "+where, arg,
	).Scan(&t.ID, &code, &t.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.Code = constants.EquipmentTypeCode(code)
	return &t, nil
}

func (r *EquipmentRepository) FindEquipmentType(ctx context.Context, id uint64) (*entities.EquipmentType, error) {
	return r.findType(ctx, "id = $1", id)
}

func (r *EquipmentRepository) FindEquipmentTypeByCode(ctx context.Context, code constants.EquipmentTypeCode) (*entities.EquipmentType, error) {
	return r.findType(ctx, "code = $1", string(code))
}
