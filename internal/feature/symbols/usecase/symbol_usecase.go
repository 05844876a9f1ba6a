// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"log/slog"

	"finance_ingest/internal/feature/symbols/domain/entity"
)

// SymbolRepository abstracts the persistence layer for symbol (stock ticker) metadata.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	Upsert(ctx context.Context, s entity.Symbol) error
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

// ProfileRepository fetches static metadata for a ticker from the data provider.
type ProfileRepository interface {
	GetProfile(ctx context.Context, code string) (entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo    SymbolRepository
	profile ProfileRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repositories.
func NewSymbolUsecase(r SymbolRepository, p ProfileRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r, profile: p}
}

// SyncProfile fetches the provider metadata for one ticker and upserts the
// symbols row. Re-fetching the same ticker updates the existing row.
func (u *SymbolUsecase) SyncProfile(ctx context.Context, code string) error {
	s, err := u.profile.GetProfile(ctx, code)
	if err != nil {
		return err
	}
	s.Code = code
	s.IsActive = true
	return u.repo.Upsert(ctx, s)
}

// SyncProfiles syncs metadata for every given ticker. A failing ticker is
// logged and skipped so one bad symbol does not abort the run.
func (u *SymbolUsecase) SyncProfiles(ctx context.Context, codes []string) error {
	for _, code := range codes {
		if err := u.SyncProfile(ctx, code); err != nil {
			slog.Error("failed to sync symbol profile", "symbol", code, "error", err)
			continue
		}
	}
	return nil
}

// ListActiveSymbols returns all active symbols from the repository.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// ListActiveCodes returns the ticker codes of all active symbols.
func (u *SymbolUsecase) ListActiveCodes(ctx context.Context) ([]string, error) {
	return u.repo.ListActiveCodes(ctx)
}
