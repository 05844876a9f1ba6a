package usecase

import (
	"context"
	"time"

	"finance_ingest/internal/feature/marketdata/domain/entity"
)

// DefaultRecentBars は取り込み後の確認レポートに表示する直近の日足件数です。
const DefaultRecentBars = 5

// BarQueryRepository は日足データの読み取りレイヤーを抽象化します。
type BarQueryRepository interface {
	Count(ctx context.Context) (int64, error)
	DateRange(ctx context.Context) (first, last time.Time, err error)
	FindRecent(ctx context.Context, limit int) ([]entity.PriceBar, error)
}

// SymbolCounter は登録済み銘柄数を返します。実装はsymbolsフィーチャー側にあります。
type SymbolCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Report は取り込み結果の検証用サマリーです。
type Report struct {
	Symbols   int64
	Bars      int64
	FirstDate time.Time
	LastDate  time.Time
	Recent    []entity.PriceBar
}

// SummaryUsecase はデータベースの内容を集計し、取り込みが成功したかを確認するためのレポートを生成します。
type SummaryUsecase struct {
	bars    BarQueryRepository
	symbols SymbolCounter
}

// NewSummaryUsecase は新しい SummaryUsecase を作成します。
func NewSummaryUsecase(bars BarQueryRepository, symbols SymbolCounter) *SummaryUsecase {
	return &SummaryUsecase{bars: bars, symbols: symbols}
}

// Summarize は銘柄数、日足件数、データの期間、直近の日足を集計して返します。
func (su *SummaryUsecase) Summarize(ctx context.Context) (*Report, error) {
	symbolCount, err := su.symbols.Count(ctx)
	if err != nil {
		return nil, err
	}
	barCount, err := su.bars.Count(ctx)
	if err != nil {
		return nil, err
	}

	r := &Report{Symbols: symbolCount, Bars: barCount}
	if barCount == 0 {
		return r, nil
	}

	r.FirstDate, r.LastDate, err = su.bars.DateRange(ctx)
	if err != nil {
		return nil, err
	}
	r.Recent, err = su.bars.FindRecent(ctx, DefaultRecentBars)
	if err != nil {
		return nil, err
	}
	return r, nil
}
