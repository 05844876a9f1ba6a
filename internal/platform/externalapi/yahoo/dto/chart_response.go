// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// APIError is the error object Yahoo embeds in its response envelopes.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ChartResponse represents the JSON response from the v8 finance/chart endpoint.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"chart"`
}

// ChartResult holds one symbol's bars and corporate action events.
// Price arrays are index-aligned with Timestamp; entries are null for
// non-trading days.
type ChartResult struct {
	Meta struct {
		Currency     string `json:"currency"`
		Symbol       string `json:"symbol"`
		ExchangeName string `json:"exchangeName"`
	} `json:"meta"`
	Timestamp []int64 `json:"timestamp"`
	Events    struct {
		Dividends    map[string]DividendEvent    `json:"dividends"`
		Splits       map[string]SplitEvent       `json:"splits"`
		CapitalGains map[string]CapitalGainEvent `json:"capitalGains"`
	} `json:"events"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
		AdjClose []struct {
			AdjClose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// DividendEvent is a single dividend payment keyed by epoch seconds.
type DividendEvent struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

// SplitEvent is a single split event keyed by epoch seconds.
type SplitEvent struct {
	Date        int64   `json:"date"`
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	SplitRatio  string  `json:"splitRatio"`
}

// CapitalGainEvent is a single capital-gain distribution keyed by epoch seconds.
type CapitalGainEvent struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}
