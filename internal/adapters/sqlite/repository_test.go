package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendScout/internal/adapters/logger"
	"trendScout/internal/domain"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(Config{
		DBPath: filepath.Join(t.TempDir(), "test.db"),
		Logger: logger.NewStdLogger(logger.LevelError),
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testCandles(n int) []*domain.Candlestick {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]*domain.Candlestick, n)
	for i := 0; i < n; i++ {
		open := base.Add(time.Duration(i) * time.Hour)
		candles[i] = &domain.Candlestick{
			OpenTime:  open,
			CloseTime: open.Add(time.Hour),
			Symbol:    "ETHUSDT",
			Interval:  "1h",
			Open:      100 + float64(i),
			High:      110 + float64(i),
			Low:       90 + float64(i),
			Close:     105 + float64(i),
			Volume:    1000,
		}
	}
	return candles
}

func TestRepository_RequiresLogger(t *testing.T) {
	_, err := NewRepository(Config{DBPath: filepath.Join(t.TempDir(), "test.db")})
	assert.Error(t, err)
}

func TestRepository_SaveAndFindCandles(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	candles := testCandles(10)

	require.NoError(t, repo.SaveCandles(ctx, candles))

	found, err := repo.FindCandles(ctx, "ETHUSDT", "1h",
		candles[0].OpenTime, candles[len(candles)-1].OpenTime)
	require.NoError(t, err)
	require.Len(t, found, 10)

	for i, c := range found {
		assert.True(t, c.OpenTime.Equal(candles[i].OpenTime), "ordering by open time")
		assert.Equal(t, candles[i].High, c.High)
		assert.Equal(t, candles[i].Low, c.Low)
		assert.Equal(t, candles[i].Close, c.Close)
	}
}

func TestRepository_FindCandles_Range(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	candles := testCandles(10)
	require.NoError(t, repo.SaveCandles(ctx, candles))

	found, err := repo.FindCandles(ctx, "ETHUSDT", "1h",
		candles[2].OpenTime, candles[5].OpenTime)
	require.NoError(t, err)
	assert.Len(t, found, 4, "range bounds are inclusive")

	found, err = repo.FindCandles(ctx, "BTCUSDT", "1h",
		candles[0].OpenTime, candles[9].OpenTime)
	require.NoError(t, err)
	assert.Empty(t, found, "unknown symbol yields no rows")
}

func TestRepository_SaveCandles_Upsert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	candles := testCandles(5)
	require.NoError(t, repo.SaveCandles(ctx, candles))

	// Re-save the same bars with an amended close price.
	candles[0].Close = 999
	require.NoError(t, repo.SaveCandles(ctx, candles))

	count, err := repo.CountCandles(ctx, "ETHUSDT", "1h")
	require.NoError(t, err)
	assert.Equal(t, 5, count, "re-saving must not duplicate bars")

	found, err := repo.FindCandles(ctx, "ETHUSDT", "1h", candles[0].OpenTime, candles[0].OpenTime)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 999.0, found[0].Close)
}

func TestRepository_SaveCandles_EmptyBatch(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.SaveCandles(context.Background(), nil))
}

func TestRepository_CountCandles(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.CountCandles(ctx, "ETHUSDT", "1h")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repo.SaveCandles(ctx, testCandles(7)))
	count, err = repo.CountCandles(ctx, "ETHUSDT", "1h")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
