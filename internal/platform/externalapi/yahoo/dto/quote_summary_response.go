package dto

import "encoding/json"

// QuoteSummaryResponse represents the JSON response from the v10
// finance/quoteSummary endpoint.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *APIError            `json:"error"`
	} `json:"quoteSummary"`
}

// QuoteSummaryResult holds the requested modules for one symbol. Modules not
// requested (or not available for the symbol) are nil.
type QuoteSummaryResult struct {
	AssetProfile *struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
	} `json:"assetProfile"`
	Price *struct {
		LongName     string `json:"longName"`
		ShortName    string `json:"shortName"`
		Currency     string `json:"currency"`
		ExchangeName string `json:"exchangeName"`
	} `json:"price"`

	BalanceSheetHistory               *BalanceSheetHistory `json:"balanceSheetHistory"`
	BalanceSheetHistoryQuarterly      *BalanceSheetHistory `json:"balanceSheetHistoryQuarterly"`
	CashflowStatementHistory          *CashflowHistory     `json:"cashflowStatementHistory"`
	CashflowStatementHistoryQuarterly *CashflowHistory     `json:"cashflowStatementHistoryQuarterly"`
	IncomeStatementHistory            *IncomeHistory       `json:"incomeStatementHistory"`
	IncomeStatementHistoryQuarterly   *IncomeHistory       `json:"incomeStatementHistoryQuarterly"`
}

// BalanceSheetHistory wraps the list of balance sheet reports.
type BalanceSheetHistory struct {
	Statements []Statement `json:"balanceSheetStatements"`
}

// CashflowHistory wraps the list of cash flow reports.
type CashflowHistory struct {
	Statements []Statement `json:"cashflowStatements"`
}

// IncomeHistory wraps the list of income statement reports.
type IncomeHistory struct {
	Statements []Statement `json:"incomeStatementHistory"`
}

// Statement is one report as returned by Yahoo: a flat object whose keys are
// line item names and whose values are {raw, fmt} wrappers. The shape varies
// per symbol, so it stays raw here and is interpreted by the client.
type Statement map[string]json.RawMessage

// WrappedValue is Yahoo's {raw, fmt} number wrapper. Raw is nil when the
// provider reports the item without a numeric value.
type WrappedValue struct {
	Raw *float64 `json:"raw"`
}

// WrappedDate is Yahoo's {raw, fmt} date wrapper with epoch seconds in Raw.
type WrappedDate struct {
	Raw int64 `json:"raw"`
}
