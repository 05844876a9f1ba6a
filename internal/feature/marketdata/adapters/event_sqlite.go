package adapters

import (
	"context"
	"time"

	"finance_ingest/internal/feature/marketdata/domain/entity"
	"finance_ingest/internal/feature/marketdata/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// eventSQLite persists corporate action events: dividends, splits, and
// capital-gain distributions. Each table is keyed uniquely on (symbol, date).
type eventSQLite struct {
	db *gorm.DB
}

var _ usecase.EventRepository = (*eventSQLite)(nil)

func NewEventRepository(db *gorm.DB) *eventSQLite {
	return &eventSQLite{db: db}
}

type DividendModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:32;not null;uniqueIndex:div_sym_date,priority:1"`
	Date   time.Time `gorm:"not null;uniqueIndex:div_sym_date,priority:2"`
	Amount float64   `gorm:"not null"`
}

func (DividendModel) TableName() string {
	return "dividends"
}

type SplitModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:32;not null;uniqueIndex:split_sym_date,priority:1"`
	Date   time.Time `gorm:"not null;uniqueIndex:split_sym_date,priority:2"`
	Ratio  float64   `gorm:"not null"`
}

func (SplitModel) TableName() string {
	return "splits"
}

type CapitalGainModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:32;not null;uniqueIndex:gain_sym_date,priority:1"`
	Date   time.Time `gorm:"not null;uniqueIndex:gain_sym_date,priority:2"`
	Amount float64   `gorm:"not null"`
}

func (CapitalGainModel) TableName() string {
	return "capital_gains"
}

func (r *eventSQLite) UpsertDividends(ctx context.Context, ds []entity.Dividend) error {
	if len(ds) == 0 {
		return nil
	}
	ms := make([]DividendModel, 0, len(ds))
	for _, e := range ds {
		ms = append(ms, DividendModel{Symbol: e.Symbol, Date: e.Date, Amount: e.Amount})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(&ms).Error
}

func (r *eventSQLite) UpsertSplits(ctx context.Context, ss []entity.Split) error {
	if len(ss) == 0 {
		return nil
	}
	ms := make([]SplitModel, 0, len(ss))
	for _, e := range ss {
		ms = append(ms, SplitModel{Symbol: e.Symbol, Date: e.Date, Ratio: e.Ratio})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"ratio"}),
	}).Create(&ms).Error
}

func (r *eventSQLite) UpsertCapitalGains(ctx context.Context, gs []entity.CapitalGain) error {
	if len(gs) == 0 {
		return nil
	}
	ms := make([]CapitalGainModel, 0, len(gs))
	for _, e := range gs {
		ms = append(ms, CapitalGainModel{Symbol: e.Symbol, Date: e.Date, Amount: e.Amount})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(&ms).Error
}
