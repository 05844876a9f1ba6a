// Package usecase は株価データの取得と永続化のビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"time"

	"finance_ingest/internal/feature/marketdata/domain/entity"
)

// MarketRepository は株価データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetDailyBars(ctx context.Context, symbol string, start, end time.Time) (*entity.Series, error)
}

// BarRepository は日足データの永続化レイヤーを抽象化します。
type BarRepository interface {
	UpsertBatch(ctx context.Context, bars []entity.PriceBar) error
}

// EventRepository は配当・分割・分配金イベントの永続化レイヤーを抽象化します。
type EventRepository interface {
	UpsertDividends(ctx context.Context, ds []entity.Dividend) error
	UpsertSplits(ctx context.Context, ss []entity.Split) error
	UpsertCapitalGains(ctx context.Context, gs []entity.CapitalGain) error
}

// IngestUsecase は外部APIから株価データを取得し、データベースに永続化するユースケースを定義します。
type IngestUsecase struct {
	market MarketRepository
	bar    BarRepository
	event  EventRepository
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(market MarketRepository, bar BarRepository, event EventRepository) *IngestUsecase {
	return &IngestUsecase{market: market, bar: bar, event: event}
}

// ingestOne は指定された銘柄の日足と関連イベントを外部リポジトリから取得し、
// データベースに一括で挿入（または更新）します。
func (iu *IngestUsecase) ingestOne(ctx context.Context, symbol string, start, end time.Time) error {
	series, err := iu.market.GetDailyBars(ctx, symbol, start, end)
	if err != nil {
		return err
	}

	if err := iu.bar.UpsertBatch(ctx, series.Bars); err != nil {
		return err
	}
	if err := iu.event.UpsertDividends(ctx, series.Dividends); err != nil {
		return err
	}
	if err := iu.event.UpsertSplits(ctx, series.Splits); err != nil {
		return err
	}
	return iu.event.UpsertCapitalGains(ctx, series.CapitalGains)
}

// IngestAll は指定された全銘柄の日足データを取得し、データベースに永続化します。
func (iu *IngestUsecase) IngestAll(ctx context.Context, symbols []string, start, end time.Time) error {
	for _, s := range symbols {
		if err := iu.ingestOne(ctx, s, start, end); err != nil {
			// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
			slog.Error("failed to ingest market data", "symbol", s, "error", err)
			continue
		}
		slog.Info("ingested market data", "symbol", s)
	}
	return nil
}
