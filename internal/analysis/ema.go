package analysis

import (
	"fmt"

	"trendScout/internal/domain"
)

// EMASeries computes an exponential moving average over candle closes,
// emitting one sample per candle from the point the average is seeded.
//
// The first `period` closes seed the series with their simple average; each
// later candle folds in with the standard 2/(period+1) multiplier. Sample
// timestamps are the candles' open times in unix seconds, matching swing
// point timestamps.
func EMASeries(candles []*domain.Candlestick, period int) ([]domain.EMAPoint, error) {
	if period <= 1 {
		return nil, fmt.Errorf("EMA period must be greater than 1, got %d", period)
	}
	if len(candles) < period {
		return nil, fmt.Errorf("not enough data (%d) to calculate EMA for period %d", len(candles), period)
	}

	var seed float64
	for i := 0; i < period; i++ {
		seed += candles[i].Close
	}
	seed /= float64(period)

	multiplier := 2.0 / float64(period+1)

	series := make([]domain.EMAPoint, 0, len(candles)-period+1)
	ema := seed
	series = append(series, domain.EMAPoint{Time: candles[period-1].OpenTime.Unix(), Value: ema})
	for i := period; i < len(candles); i++ {
		ema = (candles[i].Close-ema)*multiplier + ema
		series = append(series, domain.EMAPoint{Time: candles[i].OpenTime.Unix(), Value: ema})
	}

	return series, nil
}
