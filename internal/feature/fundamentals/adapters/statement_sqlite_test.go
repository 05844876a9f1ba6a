package adapters

import (
	"context"
	"testing"
	"time"

	"finance_ingest/internal/feature/fundamentals/domain/entity"

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

	err = db.AutoMigrate(&StatementLineModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestStatementSQLite_UpsertBatch(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStatementRepository(db)
	ctx := context.Background()

	reportDate := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	lines := []entity.StatementLine{
		{
			Symbol:        "MSFT",
			StatementType: entity.StatementIncomeStatement,
			Date:          reportDate,
			Item:          "totalRevenue",
			Value:         211_915_000_000,
			Quarterly:     false,
		},
		{
			Symbol:        "MSFT",
			StatementType: entity.StatementIncomeStatement,
			Date:          reportDate,
			Item:          "totalRevenue",
			Value:         56_189_000_000,
			Quarterly:     true, // annual and quarterly rows must not collide
		},
		{
			Symbol:        "MSFT",
			StatementType: entity.StatementBalanceSheet,
			Date:          reportDate,
			Item:          "totalAssets",
			Value:         411_976_000_000,
			Quarterly:     false,
		},
	}

	require.NoError(t, repo.UpsertBatch(ctx, lines))

	var count int64
	db.Model(&StatementLineModel{}).Count(&count)
	assert.Equal(t, int64(3), count)

	// Replay with a restated revenue figure.
	lines[0].Value = 211_900_000_000
	require.NoError(t, repo.UpsertBatch(ctx, lines))

	db.Model(&StatementLineModel{}).Count(&count)
	assert.Equal(t, int64(3), count, "re-running the upsert must not duplicate rows")

	var row StatementLineModel
	err := db.Where("statement_type = ? AND item = ? AND quarterly = ?",
		entity.StatementIncomeStatement, "totalRevenue", false).First(&row).Error
	require.NoError(t, err)
	assert.Equal(t, 211_900_000_000.0, row.Value, "value should be updated")
}

func TestStatementSQLite_UpsertBatch_Empty(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStatementRepository(db)

	assert.NoError(t, repo.UpsertBatch(context.Background(), nil))
}

func TestStatementSQLite_FindBySymbol(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewStatementRepository(db)
	ctx := context.Background()

	d1 := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpsertBatch(ctx, []entity.StatementLine{
		{Symbol: "MSFT", StatementType: entity.StatementCashFlow, Date: d1, Item: "operatingCashflow", Value: 89_035_000_000},
		{Symbol: "MSFT", StatementType: entity.StatementCashFlow, Date: d2, Item: "operatingCashflow", Value: 87_582_000_000},
		{Symbol: "MSFT", StatementType: entity.StatementBalanceSheet, Date: d2, Item: "totalAssets", Value: 411_976_000_000},
		{Symbol: "AAPL", StatementType: entity.StatementCashFlow, Date: d2, Item: "operatingCashflow", Value: 110_543_000_000},
	}))

	got, err := repo.FindBySymbol(ctx, "MSFT", entity.StatementCashFlow)
	require.NoError(t, err)

	require.Len(t, got, 2, "should return only MSFT cash flow rows")
	assert.True(t, got[0].Date.After(got[1].Date), "results should be ordered by date descending")
	assert.Equal(t, "operatingCashflow", got[0].Item)
}
