// Package yahoo provides a client for the Yahoo Finance public API.
package yahoo

import (
	"os"
	"time"
)

// defaultBaseURL is the Yahoo Finance query host serving both the v8 chart
// and v10 quoteSummary endpoints.
const defaultBaseURL = "https://query2.finance.yahoo.com"

// defaultUserAgent is sent with every request; Yahoo rejects requests
// without a browser-like User-Agent.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/91.0.4472.124"

// Config holds configuration for the Yahoo Finance API client.
type Config struct {
	BaseURL   string        // Base URL for the API
	UserAgent string        // User-Agent header value
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads Yahoo Finance configuration from environment variables,
// falling back to the public endpoint defaults.
func LoadConfig() Config {
	base := os.Getenv("YAHOO_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}
	return Config{
		BaseURL:   base,
		UserAgent: defaultUserAgent,
		Timeout:   10 * time.Second,
	}
}
