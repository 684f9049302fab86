package ports

import (
	"context"
	"time"

	"trendScout/internal/domain"
)

// CandleRepository defines the interface for storing and retrieving
// candlestick history. Computed trend lines are deliberately not persisted;
// analysis recomputes from candles on every run.
type CandleRepository interface {
	// SaveCandles upserts a batch of candlesticks. Re-saving a bar for an
	// existing (symbol, interval, open time) overwrites it.
	SaveCandles(ctx context.Context, candles []*domain.Candlestick) error

	// FindCandles retrieves candlesticks for a symbol/interval whose open
	// time falls within [start, end], ordered ascending by open time.
	FindCandles(ctx context.Context, symbol, interval string, start, end time.Time) ([]*domain.Candlestick, error)

	// CountCandles returns the number of stored bars for a symbol/interval.
	CountCandles(ctx context.Context, symbol, interval string) (int, error)
}
