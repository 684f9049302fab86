package analysis

import (
	"context"

	"trendScout/internal/domain"
	"trendScout/internal/ports"
)

// Detector runs the full trend line analysis pass: swing detection, line
// generation, and break marking against an EMA series. Each call works only
// on its inputs and local state, so a single Detector may be used from
// multiple goroutines (e.g., one analysis per symbol).
type Detector struct {
	cfg    domain.TrendLineConfig
	logger ports.Logger
}

// NewDetector creates a detector for the given configuration.
func NewDetector(cfg domain.TrendLineConfig, logger ports.Logger) *Detector {
	return &Detector{cfg: cfg, logger: logger}
}

// Detect computes swing points and trend lines for the candle series and
// marks every line broken or unbroken against the EMA series. Short input
// that cannot produce swing points yields a result with empty slices, not an
// error.
func (d *Detector) Detect(ctx context.Context, candles []*domain.Candlestick, ema []domain.EMAPoint) *domain.AnalysisResult {
	swingPoints := DetectSwingPoints(candles, d.cfg.Swing)
	support, resistance := GenerateTrendLines(swingPoints, d.cfg)

	brokenCount := 0
	for _, line := range support {
		line.IsBroken = IsTrendLineBroken(line, ema)
		if line.IsBroken {
			brokenCount++
		}
	}
	for _, line := range resistance {
		line.IsBroken = IsTrendLineBroken(line, ema)
		if line.IsBroken {
			brokenCount++
		}
	}

	if d.logger != nil {
		d.logger.Debug(ctx, "Trend line detection complete", map[string]interface{}{
			"candles":         len(candles),
			"swingPoints":     len(swingPoints),
			"supportLines":    len(support),
			"resistanceLines": len(resistance),
			"brokenLines":     brokenCount,
		})
	}

	return &domain.AnalysisResult{
		SupportLines:    support,
		ResistanceLines: resistance,
		SwingPoints:     swingPoints,
	}
}
