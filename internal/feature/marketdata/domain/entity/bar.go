// Package entity defines the domain models for the marketdata feature.
package entity

import "time"

// PriceBar represents one trading day's OHLCV record for a stock symbol.
type PriceBar struct {
	Symbol   string    // Stock ticker symbol (e.g., "AAPL", "7203.T")
	Date     time.Time // Trading date, normalized to UTC midnight
	Open     float64   // Opening price
	High     float64   // Highest price of the day
	Low      float64   // Lowest price of the day
	Close    float64   // Closing price
	Volume   int64     // Trading volume
	AdjClose float64   // Closing price adjusted for dividends and splits
}

// Dividend represents a single dividend payment per share.
type Dividend struct {
	Symbol string
	Date   time.Time
	Amount float64 // Dividend amount per share
}

// Split represents a stock split event.
type Split struct {
	Symbol string
	Date   time.Time
	Ratio  float64 // Split ratio (e.g., 2.0 for a 2:1 split)
}

// CapitalGain represents a capital-gain distribution, typically paid by funds.
type CapitalGain struct {
	Symbol string
	Date   time.Time
	Amount float64
}

// Series bundles everything the provider returns for one symbol and range:
// daily price bars plus the corporate action events that fall inside it.
type Series struct {
	Bars         []PriceBar
	Dividends    []Dividend
	Splits       []Split
	CapitalGains []CapitalGain
}
