package usecase

import "errors"

var (
	// ErrSymbolNotFound is returned when the data provider does not know the
	// requested ticker symbol (delisted or misspelled).
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrNoData is returned when the provider responds successfully but the
	// requested range contains no price bars.
	ErrNoData = errors.New("no data returned")
)
