package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendScout/internal/domain"
)

func TestDetector_Detect(t *testing.T) {
	// Zigzag series with lookback 1: swing low at index 2 (90), swing high
	// at index 4 (112), swing low at index 6 (96), swing high at index 7
	// (111). Ascending lows form one support line, descending highs one
	// resistance line.
	highs := []float64{105, 104, 103, 108, 112, 109, 108, 111, 109}
	lows := []float64{95, 94, 90, 98, 102, 99, 96, 101, 99}
	candles := mkSeries(highs, lows)

	cfg := domain.TrendLineConfig{
		Swing:       domain.SwingConfig{LookbackBars: 1},
		MaxLines:    10,
		ExtendRight: true,
	}
	detector := NewDetector(cfg, nil)

	t2 := candles[2].OpenTime.Unix()
	t4 := candles[4].OpenTime.Unix()
	t6 := candles[6].OpenTime.Unix()
	t7 := candles[7].OpenTime.Unix()

	// The support line runs 90 -> 96 over t2..t6. An EMA sample above the
	// line followed by one below breaks it. The resistance line runs
	// 112 -> 111 over t4..t7 and the EMA stays underneath it.
	ema := []domain.EMAPoint{
		{Time: candles[3].OpenTime.Unix(), Value: 95},
		{Time: candles[5].OpenTime.Unix(), Value: 92},
		{Time: t6, Value: 93},
	}

	result := detector.Detect(context.Background(), candles, ema)

	require.Len(t, result.SwingPoints, 4)
	assert.Equal(t, domain.SwingLow, result.SwingPoints[0].Type)
	assert.Equal(t, 90.0, result.SwingPoints[0].Price)

	require.Len(t, result.SupportLines, 1)
	support := result.SupportLines[0]
	assert.Equal(t, t2, support.StartPoint.Time)
	assert.Equal(t, t6, support.EndPoint.Time)
	assert.True(t, support.IsBroken, "EMA crossed below the support line")

	require.Len(t, result.ResistanceLines, 1)
	resistance := result.ResistanceLines[0]
	assert.Equal(t, t4, resistance.StartPoint.Time)
	assert.Equal(t, t7, resistance.EndPoint.Time)
	assert.False(t, resistance.IsBroken, "EMA never rose above the resistance line")
}

func TestDetector_Detect_ShortInput(t *testing.T) {
	candles := mkSeries([]float64{100, 110, 100}, []float64{90, 95, 90})

	cfg := domain.TrendLineConfig{
		Swing:    domain.SwingConfig{LookbackBars: 5},
		MaxLines: 10,
	}
	result := NewDetector(cfg, nil).Detect(context.Background(), candles, nil)

	require.NotNil(t, result)
	assert.Empty(t, result.SwingPoints)
	assert.Empty(t, result.SupportLines)
	assert.Empty(t, result.ResistanceLines)
}

func TestDetector_Detect_Deterministic(t *testing.T) {
	highs := []float64{105, 104, 103, 108, 112, 109, 108, 111, 109}
	lows := []float64{95, 94, 90, 98, 102, 99, 96, 101, 99}
	candles := mkSeries(highs, lows)

	cfg := domain.TrendLineConfig{
		Swing:    domain.SwingConfig{LookbackBars: 1},
		MaxLines: 10,
	}
	detector := NewDetector(cfg, nil)

	first := detector.Detect(context.Background(), candles, nil)
	second := detector.Detect(context.Background(), candles, nil)

	require.Equal(t, len(first.SupportLines), len(second.SupportLines))
	require.Equal(t, len(first.ResistanceLines), len(second.ResistanceLines))
	assert.Equal(t, first.SwingPoints, second.SwingPoints)
	for i := range first.SupportLines {
		assert.Equal(t, first.SupportLines[i].StartPoint, second.SupportLines[i].StartPoint)
		assert.Equal(t, first.SupportLines[i].EndPoint, second.SupportLines[i].EndPoint)
		assert.Equal(t, first.SupportLines[i].Slope, second.SupportLines[i].Slope)
	}
}

// Detect only reads its inputs and owns all intermediate state, so a single
// detector is safe to share across goroutines.
func TestDetector_Detect_Concurrent(t *testing.T) {
	highs := []float64{105, 104, 103, 108, 112, 109, 108, 111, 109}
	lows := []float64{95, 94, 90, 98, 102, 99, 96, 101, 99}
	candles := mkSeries(highs, lows)

	cfg := domain.TrendLineConfig{
		Swing:    domain.SwingConfig{LookbackBars: 1},
		MaxLines: 10,
	}
	detector := NewDetector(cfg, nil)

	done := make(chan *domain.AnalysisResult, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- detector.Detect(context.Background(), candles, nil)
		}()
	}
	for i := 0; i < 8; i++ {
		result := <-done
		assert.Len(t, result.SwingPoints, 4)
		assert.Len(t, result.SupportLines, 1)
		assert.Len(t, result.ResistanceLines, 1)
	}
}
