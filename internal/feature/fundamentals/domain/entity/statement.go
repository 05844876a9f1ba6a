// Package entity defines the domain models for the fundamentals feature.
package entity

import "time"

// Statement types as reported by the data provider.
const (
	StatementBalanceSheet    = "balance_sheet"
	StatementCashFlow        = "cash_flow"
	StatementIncomeStatement = "income_statement"
)

// StatementLine is a single line item from a financial statement, stored in
// long format: one row per (symbol, statement type, report date, item).
type StatementLine struct {
	Symbol        string
	StatementType string    // One of the Statement* constants
	Date          time.Time // Report date, normalized to UTC midnight
	Item          string    // Line item name (e.g., "totalRevenue")
	Value         float64
	Quarterly     bool // True for quarterly reports, false for annual
}
