package analysis

import (
	"github.com/google/uuid"

	"trendScout/internal/domain"
)

// GenerateTrendLines pairs up swing points of matching type into candidate
// trend lines. Support lines connect every time-ordered pair of swing lows
// where the later low is strictly higher (rising floor); resistance lines
// connect pairs of swing highs where the later high is strictly lower
// (falling ceiling). Flat pairs are rejected, so no horizontal lines are
// produced.
//
// Candidates are generated in nested-loop order over the time-ascending
// points and each type is truncated at cfg.MaxLines, keeping earlier-starting
// pairs when the cap is hit. Fewer than two points of a type yields an empty
// slice for that type.
func GenerateTrendLines(points []domain.SwingPoint, cfg domain.TrendLineConfig) (support, resistance []*domain.TrendLine) {
	var lows, highs []domain.SwingPoint
	for _, p := range points {
		switch p.Type {
		case domain.SwingLow:
			lows = append(lows, p)
		case domain.SwingHigh:
			highs = append(highs, p)
		}
	}

	support = make([]*domain.TrendLine, 0)
	resistance = make([]*domain.TrendLine, 0)

	for i := 0; i < len(lows) && len(support) < cfg.MaxLines; i++ {
		for j := i + 1; j < len(lows) && len(support) < cfg.MaxLines; j++ {
			if lows[j].Price > lows[i].Price {
				if line := newTrendLine(lows[i], lows[j], domain.Support); line != nil {
					support = append(support, line)
				}
			}
		}
	}

	for i := 0; i < len(highs) && len(resistance) < cfg.MaxLines; i++ {
		for j := i + 1; j < len(highs) && len(resistance) < cfg.MaxLines; j++ {
			if highs[j].Price < highs[i].Price {
				if line := newTrendLine(highs[i], highs[j], domain.Resistance); line != nil {
					resistance = append(resistance, line)
				}
			}
		}
	}

	return support, resistance
}

// newTrendLine builds a line through two time-ordered anchor points. Pairs
// with identical timestamps have no defined slope and are dropped.
func newTrendLine(start, end domain.SwingPoint, lineType domain.LineType) *domain.TrendLine {
	if end.Time == start.Time {
		return nil
	}
	return &domain.TrendLine{
		ID:         uuid.NewString(),
		StartPoint: start,
		EndPoint:   end,
		Type:       lineType,
		Slope:      (end.Price - start.Price) / float64(end.Time-start.Time),
	}
}

// PriceAtTime evaluates a trend line at an arbitrary unix-seconds timestamp
// using linear interpolation. Timestamps outside the [start, end] span
// extrapolate along the same slope. A zero-duration line (which generation
// never emits) falls back to the start price.
func PriceAtTime(line *domain.TrendLine, t int64) float64 {
	if line.EndPoint.Time == line.StartPoint.Time {
		return line.StartPoint.Price
	}
	return line.StartPoint.Price + line.Slope*float64(t-line.StartPoint.Time)
}

// IsTrendLineBroken reports whether the EMA series crosses the trend line
// within the line's own time span. Only samples with
// startPoint.Time <= t <= endPoint.Time are considered, scanned in order.
//
// A support line is broken by a downward crossing: the EMA sits at or above
// the interpolated line price at one sample and strictly below it at the
// next. A resistance line is broken by the mirror upward crossing. The first
// crossing decides; an empty series is never a break.
//
// The function does not modify line.IsBroken; callers assign the result.
func IsTrendLineBroken(line *domain.TrendLine, ema []domain.EMAPoint) bool {
	if len(ema) == 0 {
		return false
	}

	hasPrev := false
	prevHeld := false // previous in-range sample was on the holding side of the line
	for _, sample := range ema {
		if sample.Time < line.StartPoint.Time || sample.Time > line.EndPoint.Time {
			continue
		}
		linePrice := PriceAtTime(line, sample.Time)

		var held bool
		switch line.Type {
		case domain.Support:
			held = sample.Value >= linePrice
		case domain.Resistance:
			held = sample.Value <= linePrice
		}

		if hasPrev && prevHeld && !held {
			return true
		}
		hasPrev = true
		prevHeld = held
	}
	return false
}
