package main

import (
	"context"
	"log"
	"time"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 Наполнение базы данных                      ")
	log.Println("======================================================")

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ Не удалось подключиться к БД: %v", err)
	}
	defer dbPool.Close()

	if err := postgresql.UpMigrations(cfg.Postgres.DSN); err != nil {
		log.Fatalf("❌ Не удалось применить миграции: %v", err)
	}

	seeders.SeedAll(dbPool)
}
