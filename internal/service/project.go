package service

import (
	"cryptopulse/internal/domain/dto"
	"cryptopulse/internal/domain/models"
	"cryptopulse/internal/stats"
)

const dateLayout = "2006-01-02"

// buildStatisticsResponse projects a non-empty observation subset into the
// per-symbol statistics shape. Callers guarantee len(obs) > 0, so the four
// finders never return nil here.
func buildStatisticsResponse(symbol string, obs []models.Observation) *dto.StatisticsResponse {
	return &dto.StatisticsResponse{
		Symbol:   symbol,
		MinPrice: stats.MinByPrice(obs).Price,
		MaxPrice: stats.MaxByPrice(obs).Price,
		Oldest:   stats.Oldest(obs).Date.Format(dateLayout),
		Newest:   stats.Newest(obs).Date.Format(dateLayout),
	}
}

// buildNormalizedRangeResponse projects an observation subset into the
// symbol + normalized-range shape. Rounding happens inside
// stats.NormalizedRange and is not repeated here.
func buildNormalizedRangeResponse(symbol string, obs []models.Observation) dto.NormalizedRangeResponse {
	return dto.NormalizedRangeResponse{
		Symbol:          symbol,
		NormalizedRange: stats.NormalizedRange(obs),
	}
}
