package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Observation represents a single historical price point for a cryptocurrency.
// Observations are created during startup ingestion and never mutated afterwards.
//
// Fields:
//   - Symbol: short uppercase ticker (e.g., "BTC").
//   - Date: calendar day of the observation (time-of-day is always midnight).
//   - Price: quoted price, kept as an exact decimal so range calculations
//     never accumulate float error.
type Observation struct {
	Symbol string
	Date   time.Time
	Price  decimal.Decimal
}

// SupportedSymbols is the closed set of tickers the ranking endpoint reports,
// in declaration order. Adding a symbol requires a rebuild.
//
// Only the normalized-range ranking consults this set; the per-symbol and
// per-date queries operate on whatever symbols actually appear in the
// ingested data.
var SupportedSymbols = []string{
	"BTC",
	"DOGE",
	"ETH",
	"LTC",
	"XRP",
}

// DateOf truncates t to day granularity in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
