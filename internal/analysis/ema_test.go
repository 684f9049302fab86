package analysis

import (
	"math"
	"testing"

	"trendScout/internal/domain"
)

func mkCloses(closes []float64) []*domain.Candlestick {
	candles := make([]*domain.Candlestick, len(closes))
	for i, c := range closes {
		candle := mkCandle(i, c+1, c-1)
		candle.Close = c
		candles[i] = candle
	}
	return candles
}

func TestEMASeries(t *testing.T) {
	tests := []struct {
		name        string
		closes      []float64
		period      int
		expected    []float64 // expected values, nil when an error is expected
		expectError bool
	}{
		{
			name:   "seeded with SMA then smoothed",
			closes: []float64{100, 102, 101, 103, 104},
			period: 3,
			// Seed (100+102+101)/3 = 101, multiplier 0.5:
			// then 102, then 103.
			expected: []float64{101, 102, 103},
		},
		{
			name:     "series length equals period",
			closes:   []float64{100, 102, 104},
			period:   3,
			expected: []float64{102},
		},
		{
			name:        "insufficient data",
			closes:      []float64{100, 102},
			period:      3,
			expectError: true,
		},
		{
			name:        "period of one is rejected",
			closes:      []float64{100, 102, 104},
			period:      1,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candles := mkCloses(tt.closes)
			series, err := EMASeries(candles, tt.period)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if len(series) != len(tt.expected) {
				t.Fatalf("Expected %d samples, got %d", len(tt.expected), len(series))
			}
			for i, want := range tt.expected {
				if math.Abs(series[i].Value-want) > 1e-9 {
					t.Errorf("Sample %d: expected %f, got %f", i, want, series[i].Value)
				}
				if want := candles[tt.period-1+i].OpenTime.Unix(); series[i].Time != want {
					t.Errorf("Sample %d: expected time %d, got %d", i, want, series[i].Time)
				}
			}
		})
	}
}
