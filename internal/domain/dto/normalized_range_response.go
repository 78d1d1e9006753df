package dto

import "github.com/shopspring/decimal"

// NormalizedRangeResponse represents the JSON structure returned by the
// GET /api/normalized-range and GET /api/normalized-by-date/{date} endpoints.
//
// The normalized range is (max - min) / min over the selected observations,
// rounded to 10 fractional digits. A zero value means the symbol had no
// observations or a degenerate (zero) minimum price.
type NormalizedRangeResponse struct {
	Symbol          string          `json:"symbol" example:"ETH"`
	NormalizedRange decimal.Decimal `json:"normalized_range" example:"0.6383810110"`
}
