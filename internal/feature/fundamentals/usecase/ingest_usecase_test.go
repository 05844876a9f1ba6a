package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance_ingest/internal/feature/fundamentals/domain/entity"
)

var (
	ErrFundamentalsAPI = errors.New("fundamentals API error")
	ErrDB              = errors.New("database error")
)

// mockFundamentalsRepository is a mock implementation of the FundamentalsRepository interface.
type mockFundamentalsRepository struct {
	GetStatementsFunc  func(ctx context.Context, symbol string) ([]entity.StatementLine, error)
	GetStatementsCalls int
}

func (m *mockFundamentalsRepository) GetStatements(ctx context.Context, symbol string) ([]entity.StatementLine, error) {
	m.GetStatementsCalls++
	if m.GetStatementsFunc != nil {
		return m.GetStatementsFunc(ctx, symbol)
	}
	return nil, errors.New("GetStatementsFunc is not implemented")
}

// mockStatementRepository is a mock implementation of the StatementRepository interface.
type mockStatementRepository struct {
	UpsertBatchFunc  func(ctx context.Context, lines []entity.StatementLine) error
	UpsertBatchCalls int
}

func (m *mockStatementRepository) UpsertBatch(ctx context.Context, lines []entity.StatementLine) error {
	m.UpsertBatchCalls++
	if m.UpsertBatchFunc != nil {
		return m.UpsertBatchFunc(ctx, lines)
	}
	return nil
}

func TestIngestUsecase_ingestOne(t *testing.T) {
	ctx := context.Background()
	reportDate := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	mockLines := []entity.StatementLine{
		{StatementType: entity.StatementIncomeStatement, Date: reportDate, Item: "totalRevenue", Value: 211_915_000_000},
		{StatementType: entity.StatementBalanceSheet, Date: reportDate, Item: "totalAssets", Value: 411_976_000_000, Quarterly: true},
	}

	t.Run("success: symbol is set on every line before saving", func(t *testing.T) {
		var captured []entity.StatementLine
		mockFund := &mockFundamentalsRepository{
			GetStatementsFunc: func(ctx context.Context, symbol string) ([]entity.StatementLine, error) {
				return mockLines, nil
			},
		}
		mockStmt := &mockStatementRepository{
			UpsertBatchFunc: func(ctx context.Context, lines []entity.StatementLine) error {
				captured = lines
				return nil
			},
		}

		uc := NewIngestUsecase(mockFund, mockStmt)
		if err := uc.ingestOne(ctx, "MSFT"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(captured) != 2 {
			t.Fatalf("line count mismatch: got %d, want 2", len(captured))
		}
		for _, l := range captured {
			if l.Symbol != "MSFT" {
				t.Errorf("line Symbol not set: got %q, want MSFT", l.Symbol)
			}
		}
	})

	t.Run("error: FundamentalsRepository returns error", func(t *testing.T) {
		mockFund := &mockFundamentalsRepository{
			GetStatementsFunc: func(ctx context.Context, symbol string) ([]entity.StatementLine, error) {
				return nil, ErrFundamentalsAPI
			},
		}
		mockStmt := &mockStatementRepository{
			UpsertBatchFunc: func(ctx context.Context, lines []entity.StatementLine) error {
				t.Error("UpsertBatch should not be called")
				return nil
			},
		}

		uc := NewIngestUsecase(mockFund, mockStmt)
		if err := uc.ingestOne(ctx, "MSFT"); !errors.Is(err, ErrFundamentalsAPI) {
			t.Fatalf("expected %v, got %v", ErrFundamentalsAPI, err)
		}
	})

	t.Run("error: StatementRepository returns error", func(t *testing.T) {
		mockFund := &mockFundamentalsRepository{
			GetStatementsFunc: func(ctx context.Context, symbol string) ([]entity.StatementLine, error) {
				return mockLines, nil
			},
		}
		mockStmt := &mockStatementRepository{
			UpsertBatchFunc: func(ctx context.Context, lines []entity.StatementLine) error {
				return ErrDB
			},
		}

		uc := NewIngestUsecase(mockFund, mockStmt)
		if err := uc.ingestOne(ctx, "MSFT"); !errors.Is(err, ErrDB) {
			t.Fatalf("expected %v, got %v", ErrDB, err)
		}
	})
}

func TestIngestUsecase_IngestAll(t *testing.T) {
	ctx := context.Background()

	mockFund := &mockFundamentalsRepository{
		GetStatementsFunc: func(ctx context.Context, symbol string) ([]entity.StatementLine, error) {
			if symbol == "INVALID" {
				return nil, ErrFundamentalsAPI
			}
			return []entity.StatementLine{}, nil
		},
	}
	mockStmt := &mockStatementRepository{}

	uc := NewIngestUsecase(mockFund, mockStmt)
	// IngestAll continues without returning error even when one symbol fails
	if err := uc.IngestAll(ctx, []string{"AAPL", "INVALID", "MSFT"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mockFund.GetStatementsCalls != 3 {
		t.Errorf("GetStatements was called %d times, expected 3", mockFund.GetStatementsCalls)
	}
	if mockStmt.UpsertBatchCalls != 2 {
		t.Errorf("UpsertBatch was called %d times, expected 2", mockStmt.UpsertBatchCalls)
	}
}
