// Package adapters はsymbolsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"finance_ingest/internal/feature/symbols/domain/entity"
	"finance_ingest/internal/feature/symbols/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// symbolSQLite はSymbolRepositoryインターフェースのSQLite実装です。
type symbolSQLite struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolSQLite)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolSQLiteリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolSQLite {
	return &symbolSQLite{db: db}
}

// Upsert は銘柄メタデータを挿入し、codeが重複する場合は既存行を更新します。
// 同じ銘柄を何度取り込んでも行は1つのままです。
func (r *symbolSQLite) Upsert(ctx context.Context, s entity.Symbol) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "sector", "currency", "exchange", "is_active", "updated_at"}),
	}).Create(&s).Error
}

// ListActive はcode順にすべてのアクティブな銘柄を返します。
func (r *symbolSQLite) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("code ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// ListActiveCodes はcode順にアクティブな銘柄のコードのみを返します。
func (r *symbolSQLite) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true).
		Order("code ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// Count は登録済み銘柄数を返します。
func (r *symbolSQLite) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.Symbol{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
