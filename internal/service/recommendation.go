package service

import (
	"sort"
	"time"

	"cryptopulse/internal/domain/dto"
	"cryptopulse/internal/domain/models"
	"cryptopulse/internal/stats"
)

// ObservationSource is the read contract the query engine needs from the
// observation store. It decouples query logic from the store implementation
// and keeps handlers testable with stubs.
type ObservationSource interface {
	All() []models.Observation
}

// RecommendationService answers the three read-only queries over the
// ingested observations. Every query is a stateless, idempotent scan of the
// current store snapshot, so any number of requests may run concurrently.
type RecommendationService interface {
	// Statistics computes min/max price and oldest/newest date for a symbol.
	// The match is case-insensitive. Returns nil when the symbol has no
	// observations, which the adapter translates to 404.
	Statistics(symbol string) *dto.StatisticsResponse

	// NormalizedRangeDesc ranks every supported symbol by normalized range,
	// descending. Symbols without observations appear with a zero range.
	NormalizedRangeDesc() []dto.NormalizedRangeResponse

	// HighestNormalizedRangeByDate returns the symbol with the highest
	// normalized range among observations on the given calendar day.
	// Symbols whose range is not strictly positive are discarded; nil is
	// returned when no symbol qualifies.
	HighestNormalizedRangeByDate(date time.Time) *dto.NormalizedRangeResponse
}

type recommendationService struct {
	source ObservationSource
}

// NewRecommendationService constructs a RecommendationService reading from
// the given source.
func NewRecommendationService(source ObservationSource) RecommendationService {
	return &recommendationService{source: source}
}

func (s *recommendationService) Statistics(symbol string) *dto.StatisticsResponse {
	matched := stats.FilterBySymbol(symbol, s.source.All())
	if len(matched) == 0 {
		return nil
	}
	return buildStatisticsResponse(symbol, matched)
}

func (s *recommendationService) NormalizedRangeDesc() []dto.NormalizedRangeResponse {
	all := s.source.All()

	out := make([]dto.NormalizedRangeResponse, 0, len(models.SupportedSymbols))
	for _, sym := range models.SupportedSymbols {
		// Exact (case-sensitive) match: the enumeration drives this query.
		var matched []models.Observation
		for _, o := range all {
			if o.Symbol == sym {
				matched = append(matched, o)
			}
		}
		out = append(out, buildNormalizedRangeResponse(sym, matched))
	}

	// Stable: equal ranges keep enumeration order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NormalizedRange.GreaterThan(out[j].NormalizedRange)
	})
	return out
}

func (s *recommendationService) HighestNormalizedRangeByDate(date time.Time) *dto.NormalizedRangeResponse {
	onDate := stats.FilterByDate(date, s.source.All())

	// Group by symbol, remembering first-appearance order so the max
	// selection below is deterministic under ties.
	groups := make(map[string][]models.Observation)
	var order []string
	for _, o := range onDate {
		if _, ok := groups[o.Symbol]; !ok {
			order = append(order, o.Symbol)
		}
		groups[o.Symbol] = append(groups[o.Symbol], o)
	}

	var best *dto.NormalizedRangeResponse
	for _, sym := range order {
		candidate := buildNormalizedRangeResponse(sym, groups[sym])
		// Flat or single-observation groups carry no meaningful range.
		if !candidate.NormalizedRange.IsPositive() {
			continue
		}
		if best == nil || candidate.NormalizedRange.GreaterThan(best.NormalizedRange) {
			c := candidate
			best = &c
		}
	}
	return best
}
