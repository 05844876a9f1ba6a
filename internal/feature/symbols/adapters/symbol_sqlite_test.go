package adapters

import (
	"context"
	"testing"

	"finance_ingest/internal/feature/symbols/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Symbol{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestSymbolSQLite_Upsert(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSymbolRepository(db)
	ctx := context.Background()

	s := entity.Symbol{
		Code:     "AAPL",
		Name:     "Apple Inc.",
		Sector:   "Technology",
		Currency: "USD",
		Exchange: "NasdaqGS",
		IsActive: true,
	}
	require.NoError(t, repo.Upsert(ctx, s))

	// Re-fetching the same ticker updates the row instead of adding one.
	s = entity.Symbol{
		Code:     "AAPL",
		Name:     "Apple Inc. (updated)",
		Sector:   "Technology",
		Currency: "USD",
		Exchange: "NMS",
		IsActive: true,
	}
	require.NoError(t, repo.Upsert(ctx, s))

	var count int64
	db.Model(&entity.Symbol{}).Count(&count)
	assert.Equal(t, int64(1), count, "metadata table must hold exactly one row per symbol")

	var row entity.Symbol
	require.NoError(t, db.Where("code = ?", "AAPL").First(&row).Error)
	assert.Equal(t, "Apple Inc. (updated)", row.Name, "name should be updated")
	assert.Equal(t, "NMS", row.Exchange, "exchange should be updated")
}

func TestSymbolSQLite_ListActive(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSymbolRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, entity.Symbol{Code: "MSFT", Name: "Microsoft", IsActive: true}))
	require.NoError(t, repo.Upsert(ctx, entity.Symbol{Code: "AAPL", Name: "Apple", IsActive: true}))
	require.NoError(t, db.Create(&entity.Symbol{Code: "ENRN", Name: "Enron", IsActive: false}).Error)

	symbols, err := repo.ListActive(ctx)
	require.NoError(t, err)

	require.Len(t, symbols, 2, "inactive symbols should be excluded")
	assert.Equal(t, "AAPL", symbols[0].Code, "results should be ordered by code")
	assert.Equal(t, "MSFT", symbols[1].Code)

	codes, err := repo.ListActiveCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, codes)
}

func TestSymbolSQLite_Count(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSymbolRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Upsert(ctx, entity.Symbol{Code: "AAPL", Name: "Apple", IsActive: true}))
	require.NoError(t, repo.Upsert(ctx, entity.Symbol{Code: "MSFT", Name: "Microsoft", IsActive: true}))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
