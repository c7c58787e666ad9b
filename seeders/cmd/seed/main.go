package main

import (
	"context"
	"flag"
	"log"

	"recruitment-form/internal/entities"
	"recruitment-form/pkg/config"
	"recruitment-form/pkg/database/postgresql"
	"recruitment-form/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Хранилище филиалов)        ")
	log.Println("======================================================")

	// --- Определяем флаги ---
	runMigrate := flag.Bool("migrate", false, "Применить миграции хранилища филиалов")
	runFallback := flag.Bool("fallback", false, "Залить запасной список филиалов")
	xlsxPath := flag.String("xlsx", "", "Импортировать филиалы из XLSX-файла")

	flag.Parse()

	// Если ни один флаг не указан - показываем справку
	if !*runMigrate && !*runFallback && *xlsxPath == "" {
		log.Println("❌ Не выбрана ни одна операция.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -migrate -fallback")
		log.Println("  go run ./seeders/cmd/seed -xlsx ./branches.xlsx")
		log.Println("======================================================")
		return
	}

	ctx := context.Background()
	cfg := config.New()
	dbPool, err := postgresql.ConnectDB(ctx, cfg.Warehouse.Postgres.DSN)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer dbPool.Close()
	log.Println("✅ Подключено к PostgreSQL")

	table := cfg.Warehouse.Postgres.Table

	if *runMigrate {
		if err := postgresql.Migrate(ctx, dbPool); err != nil {
			log.Fatalf("❌ %v", err)
		}
		log.Println("======================================================")
	}

	var rows []entities.BranchMasterdata
	if *runFallback {
		rows = append(rows, seeders.FallbackMasterdata()...)
	}
	if *xlsxPath != "" {
		imported, err := seeders.ReadBranchesXLSX(*xlsxPath)
		if err != nil {
			log.Fatalf("❌ Ошибка импорта XLSX: %v", err)
		}
		rows = append(rows, imported...)
	}

	if err := seeders.SeedBranches(ctx, dbPool, table, rows); err != nil {
		log.Fatalf("❌ Ошибка наполнения филиалов: %v", err)
	}

	log.Println("✅ Все указанные операции сидирования успешно завершены.")
	log.Println("======================================================")
}
