package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-system/pkg/constants"
	"inventory-system/pkg/utils"
)

func seedAdminUser(db *pgxpool.Pool) error {
	ctx := context.Background()
	log.Println("  - Создание пользователя 'Администратор'...")

	email := "admin@inventory.local"
	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE LOWER(email) = LOWER($1)", email).Scan(&userID)
	if err == nil {
		log.Println("    - Администратор уже существует. Пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка при проверке существования администратора: %w", err)
	}

	hashedPassword, err := utils.HashPassword("admin")
	if err != nil {
		return err
	}

	query := `INSERT INTO users (fio, email, phone_number, password, role)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := db.QueryRow(ctx, query,
		"Администратор системы",
		email,
		"992000000000",
		hashedPassword,
		constants.RoleAdmin,
	).Scan(&userID); err != nil {
		return fmt.Errorf("ошибка при создании администратора: %w", err)
	}

	log.Printf("    - Администратор создан (id=%d, email=%s, пароль по умолчанию: admin).", userID, email)
	return nil
}
