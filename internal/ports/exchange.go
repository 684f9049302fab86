package ports

import (
	"context"
	"time"

	"trendScout/internal/domain"
)

// MarketDataClient defines the interface for fetching candlestick data from
// an exchange. This abstraction decouples the analysis service from any
// specific exchange implementation.
type MarketDataClient interface {
	// Ping checks connectivity to the exchange API.
	Ping(ctx context.Context) error

	// GetServerTime retrieves the current server time from the exchange.
	GetServerTime(ctx context.Context) (time.Time, error)

	// GetKlines retrieves the most recent candlesticks for the given symbol
	// and interval, up to limit bars, ordered ascending by open time.
	GetKlines(ctx context.Context, symbol string, interval string, limit int) ([]*domain.Candlestick, error)

	// GetKlinesRange fetches all candlesticks for a symbol/interval between
	// start and end time, paginating as needed.
	GetKlinesRange(ctx context.Context, symbol, interval string, start, end time.Time) ([]*domain.Candlestick, error)
}
