package adapters

import (
	"context"
	"time"

	"finance_ingest/internal/feature/marketdata/domain/entity"
	"finance_ingest/internal/feature/marketdata/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type barSQLite struct {
	db *gorm.DB
}

var _ usecase.BarRepository = (*barSQLite)(nil)
var _ usecase.BarQueryRepository = (*barSQLite)(nil)

func NewBarRepository(db *gorm.DB) *barSQLite {
	return &barSQLite{db: db}
}

type PriceBarModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:32;not null;uniqueIndex:bar_sym_date,priority:1"`
	Date   time.Time `gorm:"not null;uniqueIndex:bar_sym_date,priority:2"`

	Open     float64 `gorm:"not null"`
	High     float64 `gorm:"not null"`
	Low      float64 `gorm:"not null"`
	Close    float64 `gorm:"not null"`
	Volume   int64   `gorm:"not null;default:0"`
	AdjClose float64 `gorm:"not null"`
}

func (PriceBarModel) TableName() string {
	return "price_bars"
}

func toBarModel(e entity.PriceBar) PriceBarModel {
	return PriceBarModel{
		Symbol:   e.Symbol,
		Date:     e.Date,
		Open:     e.Open,
		High:     e.High,
		Low:      e.Low,
		Close:    e.Close,
		Volume:   e.Volume,
		AdjClose: e.AdjClose,
	}
}

func toBarEntity(m PriceBarModel) entity.PriceBar {
	return entity.PriceBar{
		Symbol:   m.Symbol,
		Date:     m.Date,
		Open:     m.Open,
		High:     m.High,
		Low:      m.Low,
		Close:    m.Close,
		Volume:   m.Volume,
		AdjClose: m.AdjClose,
	}
}

func (r *barSQLite) UpsertBatch(ctx context.Context, bars []entity.PriceBar) error {
	if len(bars) == 0 {
		return nil
	}
	ms := make([]PriceBarModel, 0, len(bars))
	for _, e := range bars {
		ms = append(ms, toBarModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume", "adj_close"}),
	}).Create(&ms).Error
}

func (r *barSQLite) Find(ctx context.Context, symbol string, limit int) ([]entity.PriceBar, error) {
	var rows []PriceBarModel
	q := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.PriceBar, 0, len(rows))
	for _, m := range rows {
		out = append(out, toBarEntity(m))
	}
	return out, nil
}

func (r *barSQLite) FindRecent(ctx context.Context, limit int) ([]entity.PriceBar, error) {
	var rows []PriceBarModel
	q := r.db.WithContext(ctx).Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.PriceBar, 0, len(rows))
	for _, m := range rows {
		out = append(out, toBarEntity(m))
	}
	return out, nil
}

func (r *barSQLite) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PriceBarModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *barSQLite) DateRange(ctx context.Context) (time.Time, time.Time, error) {
	var bounds struct {
		First time.Time
		Last  time.Time
	}
	err := r.db.WithContext(ctx).
		Model(&PriceBarModel{}).
		Select("MIN(date) AS first, MAX(date) AS last").
		Scan(&bounds).Error
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return bounds.First, bounds.Last, nil
}
