package ingestion

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"cryptopulse/internal/domain/models"
	"cryptopulse/internal/logger"
	"cryptopulse/internal/store"
)

const maxParallelFiles = 8

// ProcessDirectory ingests every *.csv file under dir into the store.
//
// Behavior:
//   - Files are parsed concurrently, bounded by min(maxParallelFiles, NumCPU)
//     or the provided parallel override (clamped to 1..maxParallelFiles).
//   - A file that fails to parse is logged and skipped; the remaining files
//     still ingest (partial ingestion is acceptable by design).
//   - Observations are appended to the store strictly in sorted filename
//     order after all parsing finishes, so insertion order is deterministic
//     and queries never observe a half-ingested file.
//
// Returns:
//   - the number of observations ingested and the number of files skipped.
//   - error: only for directory-level failures or context cancellation.
func ProcessDirectory(ctx context.Context, dir string, st *store.ObservationStore, parallel int) (int, int, error) {
	pattern := filepath.Join(dir, "*.csv")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return 0, 0, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(files) == 0 {
		logger.L().Warn().Str("dir", dir).Msg("no csv files found")
		return 0, 0, nil
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("ingestion start")

	maxParallel := maxParallelFiles
	if parallel > 0 {
		if parallel > maxParallelFiles {
			parallel = maxParallelFiles
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	// Parse concurrently into per-file slots; a failed file leaves its slot
	// nil. Workers only log and skip on parse errors, so the group never
	// cancels siblings for a bad file.
	parsed := make([][]models.Observation, len(files))
	failed := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			base := filepath.Base(f)

			obs, err := parseFile(f)
			if err != nil {
				failed[idx] = true
				logger.L().Error().Str("file", base).Err(err).Msg("file skipped")
				return nil
			}

			parsed[idx] = obs
			logger.L().Info().Str("file", base).Int("rows", len(obs)).Dur("elapsed", time.Since(start)).Msg("file parsed")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	// Append in filename order. filepath.Glob returns sorted paths, so the
	// resulting store order is stable across runs.
	total := 0
	skipped := 0
	for i := range files {
		if failed[i] {
			skipped++
			continue
		}
		st.Ingest(parsed[i])
		total += len(parsed[i])
	}

	logger.L().Info().Int("observations", total).Int("skipped_files", skipped).Msg("ingestion done")
	return total, skipped, nil
}
