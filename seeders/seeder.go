package seeders

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedAll прогоняет сидеры в порядке зависимостей: сначала админ,
// затем демонстрационная структура кампуса.
func SeedAll(db *pgxpool.Pool) {
	log.Println("🌱 Запуск сидеров...")

	if err := seedAdminUser(db); err != nil {
		log.Fatalf("❌ Ошибка при создании администратора: %v", err)
	}
	if err := seedCampusStructure(db); err != nil {
		log.Fatalf("❌ Ошибка при наполнении структуры кампуса: %v", err)
	}

	log.Println("✅ Сидирование успешно завершено.")
}
