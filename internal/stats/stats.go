// Package stats provides pure aggregation functions over observation
// sequences. All functions are total: empty input yields nil (for the
// record finders) or zero (for NormalizedRange), never an error.
package stats

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cryptopulse/internal/domain/models"
)

// rangeScale is the number of fractional digits kept when rounding a
// normalized range (half-up).
const rangeScale = 10

// MinByPrice returns the observation with the lowest price, or nil when the
// input is empty. On equal prices the first one encountered wins.
func MinByPrice(obs []models.Observation) *models.Observation {
	var min *models.Observation
	for i := range obs {
		if min == nil || obs[i].Price.LessThan(min.Price) {
			min = &obs[i]
		}
	}
	return min
}

// MaxByPrice returns the observation with the highest price, or nil when the
// input is empty. On equal prices the first one encountered wins.
func MaxByPrice(obs []models.Observation) *models.Observation {
	var max *models.Observation
	for i := range obs {
		if max == nil || obs[i].Price.GreaterThan(max.Price) {
			max = &obs[i]
		}
	}
	return max
}

// Oldest returns the observation with the earliest date, or nil when the
// input is empty. Ties keep the first one encountered.
func Oldest(obs []models.Observation) *models.Observation {
	var oldest *models.Observation
	for i := range obs {
		if oldest == nil || obs[i].Date.Before(oldest.Date) {
			oldest = &obs[i]
		}
	}
	return oldest
}

// Newest returns the observation with the latest date, or nil when the
// input is empty. Ties keep the first one encountered.
func Newest(obs []models.Observation) *models.Observation {
	var newest *models.Observation
	for i := range obs {
		if newest == nil || obs[i].Date.After(newest.Date) {
			newest = &obs[i]
		}
	}
	return newest
}

// NormalizedRange computes (max - min) / min over the given observations,
// rounded half-up to 10 fractional digits.
//
// It returns zero for an empty input and for a zero minimum price; both are
// deliberate saturating defaults, not errors.
func NormalizedRange(obs []models.Observation) decimal.Decimal {
	if len(obs) == 0 {
		return decimal.Zero
	}

	min := MinByPrice(obs)
	max := MaxByPrice(obs)

	if min.Price.IsZero() {
		return decimal.Zero
	}

	return max.Price.Sub(min.Price).DivRound(min.Price, rangeScale)
}

// FilterBySymbol returns the observations whose symbol matches the given one,
// ignoring case, in their original order.
func FilterBySymbol(symbol string, obs []models.Observation) []models.Observation {
	var out []models.Observation
	for _, o := range obs {
		if strings.EqualFold(o.Symbol, symbol) {
			out = append(out, o)
		}
	}
	return out
}

// FilterByDate returns the observations dated exactly equal to the given
// calendar day, in their original order.
func FilterByDate(date time.Time, obs []models.Observation) []models.Observation {
	var out []models.Observation
	for _, o := range obs {
		if o.Date.Equal(date) {
			out = append(out, o)
		}
	}
	return out
}
