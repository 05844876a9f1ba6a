// Package usecase は財務諸表データの取得と永続化のビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"

	"finance_ingest/internal/feature/fundamentals/domain/entity"
)

// FundamentalsRepository は財務諸表データを取得するリポジトリのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type FundamentalsRepository interface {
	GetStatements(ctx context.Context, symbol string) ([]entity.StatementLine, error)
}

// StatementRepository は財務諸表明細の永続化レイヤーを抽象化します。
type StatementRepository interface {
	UpsertBatch(ctx context.Context, lines []entity.StatementLine) error
}

// IngestUsecase は外部APIから財務諸表を取得し、データベースに永続化するユースケースを定義します。
type IngestUsecase struct {
	fundamentals FundamentalsRepository
	statement    StatementRepository
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(f FundamentalsRepository, s StatementRepository) *IngestUsecase {
	return &IngestUsecase{fundamentals: f, statement: s}
}

// ingestOne は1銘柄分の財務諸表明細を取得し、一括で挿入（または更新）します。
func (iu *IngestUsecase) ingestOne(ctx context.Context, symbol string) error {
	lines, err := iu.fundamentals.GetStatements(ctx, symbol)
	if err != nil {
		return err
	}
	for i := range lines {
		lines[i].Symbol = symbol
	}
	return iu.statement.UpsertBatch(ctx, lines)
}

// IngestAll は指定された全銘柄の財務諸表を取得し、データベースに永続化します。
func (iu *IngestUsecase) IngestAll(ctx context.Context, symbols []string) error {
	for _, s := range symbols {
		if err := iu.ingestOne(ctx, s); err != nil {
			// 1つの銘柄でエラーが発生しても処理を止めずにログに出力し、次の処理を続ける
			slog.Error("failed to ingest fundamentals", "symbol", s, "error", err)
			continue
		}
	}
	return nil
}
