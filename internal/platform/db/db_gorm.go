package db

import (
	"fmt"

	fundadapters "finance_ingest/internal/feature/fundamentals/adapters"
	marketadapters "finance_ingest/internal/feature/marketdata/adapters"
	symbolentity "finance_ingest/internal/feature/symbols/domain/entity"
	"finance_ingest/internal/platform/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open opens the configured database and ensures all tables exist.
// A Postgres URL takes precedence when set; otherwise the SQLite file is
// opened (and created on first run).
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	if cfg.Database.PostgresURL != "" {
		dial = postgres.Open(cfg.Database.PostgresURL)
	} else {
		dial = sqlite.Open(cfg.Database.SQLitePath)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// テーブルが無ければ作成する（Symbol, PriceBar など）
	if err := db.AutoMigrate(
		&symbolentity.Symbol{},
		&marketadapters.PriceBarModel{},
		&marketadapters.DividendModel{},
		&marketadapters.SplitModel{},
		&marketadapters.CapitalGainModel{},
		&fundadapters.StatementLineModel{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}
