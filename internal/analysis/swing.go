package analysis

import (
	"trendScout/internal/domain"
)

// DetectSwingPoints scans an ordered candlestick series and flags local
// price extrema using a symmetric lookback window.
//
// A candle at index i is a swing high when its High is strictly greater than
// the High of every candle within LookbackBars on both sides; a swing low is
// the mirror using Low and strictly less. Equality with any neighbour in the
// window disqualifies the candle, so flat plateaus never produce points.
// The first and last LookbackBars candles lack a full window and are skipped.
//
// The result is ordered ascending by time. Series shorter than
// 2*LookbackBars+1 (or a non-positive lookback) yield an empty result.
func DetectSwingPoints(candles []*domain.Candlestick, cfg domain.SwingConfig) []domain.SwingPoint {
	lookback := cfg.LookbackBars
	if lookback <= 0 || len(candles) < 2*lookback+1 {
		return nil
	}

	points := make([]domain.SwingPoint, 0, len(candles)/5)
	for i := lookback; i <= len(candles)-1-lookback; i++ {
		isHigh, isLow := true, true
		for j := i - lookback; j <= i+lookback; j++ {
			if j == i {
				continue
			}
			if candles[j].High >= candles[i].High {
				isHigh = false
			}
			if candles[j].Low <= candles[i].Low {
				isLow = false
			}
			if !isHigh && !isLow {
				break
			}
		}
		if isHigh {
			points = append(points, domain.SwingPoint{
				Time:  candles[i].OpenTime.Unix(),
				Price: candles[i].High,
				Type:  domain.SwingHigh,
				Index: i,
			})
		}
		if isLow {
			points = append(points, domain.SwingPoint{
				Time:  candles[i].OpenTime.Unix(),
				Price: candles[i].Low,
				Type:  domain.SwingLow,
				Index: i,
			})
		}
	}
	return points
}
