package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedCampusStructure наполняет минимальную структуру кампуса:
// университет, корпус, этаж, факультет и одну комнату. Повторный
// запуск ничего не дублирует.
func seedCampusStructure(db *pgxpool.Pool) error {
	ctx := context.Background()
	log.Println("  - Наполнение структуры кампуса...")

	universityName := "Технологический университет"
	var universityID uint64
	err := db.QueryRow(ctx, "SELECT id FROM universities WHERE name = $1", universityName).Scan(&universityID)
	if err == nil {
		log.Println("    - Структура кампуса уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке университета: %w", err)
	}

	if err := db.QueryRow(ctx,
		"INSERT INTO universities (name, address) VALUES ($1, $2) RETURNING id",
		universityName, "пр. Независимости, 1").Scan(&universityID); err != nil {
		return fmt.Errorf("не удалось создать университет: %w", err)
	}

	var buildingID uint64
	if err := db.QueryRow(ctx,
		"INSERT INTO buildings (university_id, name, address) VALUES ($1, $2, $3) RETURNING id",
		universityID, "Главный корпус", "пр. Независимости, 1").Scan(&buildingID); err != nil {
		return fmt.Errorf("не удалось создать корпус: %w", err)
	}

	var floorID uint64
	if err := db.QueryRow(ctx,
		"INSERT INTO floors (building_id, number, description) VALUES ($1, $2, $3) RETURNING id",
		buildingID, 1, "Первый этаж").Scan(&floorID); err != nil {
		return fmt.Errorf("не удалось создать этаж: %w", err)
	}

	if _, err := db.Exec(ctx,
		"INSERT INTO faculties (building_id, name, dean_fio) VALUES ($1, $2, $3)",
		buildingID, "Факультет информационных технологий", "Каримов Д. С."); err != nil {
		return fmt.Errorf("не удалось создать факультет: %w", err)
	}

	if _, err := db.Exec(ctx,
		"INSERT INTO rooms (building_id, floor_id, name) VALUES ($1, $2, $3)",
		buildingID, floorID, "101"); err != nil {
		return fmt.Errorf("не удалось создать комнату: %w", err)
	}

	log.Println("    - Структура кампуса успешно создана.")
	return nil
}
