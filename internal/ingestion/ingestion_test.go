package ingestion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptopulse/internal/store"
)

func TestProcessDirectory_IngestsAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "BTC_values.csv", header+jan1Millis+",BTC,46813.21\n"+jan1Millis+",BTC,47722.66\n")
	writeTempFile(t, dir, "ETH_values.csv", header+jan1Millis+",ETH,3715.32\n")

	st := store.New()
	total, skipped, err := ProcessDirectory(context.Background(), dir, st, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Zero(t, skipped)
	assert.Equal(t, 3, st.Len())
}

// Insertion order follows sorted filename order regardless of parse
// concurrency, so store iteration stays deterministic.
func TestProcessDirectory_DeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "b.csv", header+jan1Millis+",ETH,2\n")
	writeTempFile(t, dir, "a.csv", header+jan1Millis+",BTC,1\n")
	writeTempFile(t, dir, "c.csv", header+jan1Millis+",XRP,3\n")

	st := store.New()
	_, _, err := ProcessDirectory(context.Background(), dir, st, 3)
	require.NoError(t, err)

	all := st.All()
	require.Len(t, all, 3)
	assert.Equal(t, "BTC", all[0].Symbol)
	assert.Equal(t, "ETH", all[1].Symbol)
	assert.Equal(t, "XRP", all[2].Symbol)
}

// A malformed file is skipped without touching observations from the files
// that parsed cleanly.
func TestProcessDirectory_SkipsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "good.csv", header+jan1Millis+",BTC,100\n")
	writeTempFile(t, dir, "bad.csv", header+"garbage,BTC,notaprice\n")

	st := store.New()
	total, skipped, err := ProcessDirectory(context.Background(), dir, st, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, "BTC", st.All()[0].Symbol)
}

func TestProcessDirectory_EmptyDirectory(t *testing.T) {
	st := store.New()
	total, skipped, err := ProcessDirectory(context.Background(), t.TempDir(), st, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, skipped)
	assert.Zero(t, st.Len())
}

func TestProcessDirectory_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "good.csv", header+jan1Millis+",BTC,100\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := store.New()
	_, _, err := ProcessDirectory(ctx, dir, st, 1)
	require.Error(t, err)
	assert.Zero(t, st.Len())
}
