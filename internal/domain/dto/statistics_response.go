package dto

import "github.com/shopspring/decimal"

// StatisticsResponse represents the JSON structure returned by the
// GET /api/{symbol} endpoint.
//
// Dates are serialized as ISO calendar dates (YYYY-MM-DD) rather than full
// timestamps because observations only carry day granularity.
type StatisticsResponse struct {
	Symbol   string          `json:"symbol" example:"BTC"`
	MinPrice decimal.Decimal `json:"min_price" example:"33276.59"`
	MaxPrice decimal.Decimal `json:"max_price" example:"47722.66"`
	Oldest   string          `json:"oldest" example:"2022-01-01"`
	Newest   string          `json:"newest" example:"2022-01-31"`
}
