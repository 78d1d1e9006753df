package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cryptopulse/internal/domain/models"
)

// parseFile reads one price history CSV and returns its observations in
// line order.
//
// Expected format: a header line (skipped), then rows of
//
//	timestamp_millis,symbol,price
//
// where timestamp_millis is Unix epoch milliseconds, interpreted in the
// host's local calendar to derive the observation date.
//
// Any malformed row (wrong column count, non-numeric timestamp or price)
// fails the whole file; the caller decides whether to skip it. Nothing is
// written to the store from here, so a failed file never corrupts data
// ingested from other files.
func parseFile(path string) ([]models.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column count checked per row below

	// Skip the header line.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var out []models.Observation
	line := 1 // header already read

	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", line, err)
		}
		line++

		if len(rec) != 3 {
			return nil, fmt.Errorf("invalid column count on line %d: expected 3 got %d", line, len(rec))
		}

		obs, err := recordToObservation(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, obs)
	}

	return out, nil
}

// recordToObservation converts one already length-checked CSV record into an
// observation. It is strict: every field must parse.
func recordToObservation(rec []string) (models.Observation, error) {
	var o models.Observation

	millis, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
	if err != nil {
		return o, fmt.Errorf("invalid timestamp: %v", err)
	}
	o.Date = models.DateOf(time.UnixMilli(millis))

	o.Symbol = strings.TrimSpace(rec[1])

	price, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
	if err != nil {
		return o, fmt.Errorf("invalid price: %v", err)
	}
	o.Price = price

	return o, nil
}
