package adapters

import (
	"context"
	"time"

	"finance_ingest/internal/feature/fundamentals/domain/entity"
	"finance_ingest/internal/feature/fundamentals/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type statementSQLite struct {
	db *gorm.DB
}

var _ usecase.StatementRepository = (*statementSQLite)(nil)

func NewStatementRepository(db *gorm.DB) *statementSQLite {
	return &statementSQLite{db: db}
}

// StatementLineModel stores financial statements in long format: one row per
// line item per report. Annual and quarterly reports for the same date are
// distinct rows, hence the quarterly flag in the unique key.
type StatementLineModel struct {
	ID            uint      `gorm:"primaryKey"`
	Symbol        string    `gorm:"size:32;not null;uniqueIndex:stmt_key,priority:1"`
	StatementType string    `gorm:"size:32;not null;uniqueIndex:stmt_key,priority:2"`
	Date          time.Time `gorm:"not null;uniqueIndex:stmt_key,priority:3"`
	Item          string    `gorm:"size:128;not null;uniqueIndex:stmt_key,priority:4"`
	Quarterly     bool      `gorm:"not null;default:false;uniqueIndex:stmt_key,priority:5"`
	Value         float64   `gorm:"not null"`
}

func (StatementLineModel) TableName() string {
	return "statements"
}

func toStatementModel(e entity.StatementLine) StatementLineModel {
	return StatementLineModel{
		Symbol:        e.Symbol,
		StatementType: e.StatementType,
		Date:          e.Date,
		Item:          e.Item,
		Quarterly:     e.Quarterly,
		Value:         e.Value,
	}
}

func (r *statementSQLite) UpsertBatch(ctx context.Context, lines []entity.StatementLine) error {
	if len(lines) == 0 {
		return nil
	}
	ms := make([]StatementLineModel, 0, len(lines))
	for _, e := range lines {
		ms = append(ms, toStatementModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "symbol"}, {Name: "statement_type"}, {Name: "date"},
			{Name: "item"}, {Name: "quarterly"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&ms).Error
}

func (r *statementSQLite) FindBySymbol(ctx context.Context, symbol, statementType string) ([]entity.StatementLine, error) {
	var rows []StatementLineModel
	if err := r.db.WithContext(ctx).
		Where("symbol = ? AND statement_type = ?", symbol, statementType).
		Order("date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.StatementLine, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.StatementLine{
			Symbol:        m.Symbol,
			StatementType: m.StatementType,
			Date:          m.Date,
			Item:          m.Item,
			Quarterly:     m.Quarterly,
			Value:         m.Value,
		})
	}
	return out, nil
}
