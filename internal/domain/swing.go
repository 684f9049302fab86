package domain

// SwingType classifies a swing point as a local high or low.
type SwingType string

const (
	SwingHigh SwingType = "high"
	SwingLow  SwingType = "low"
)

// SwingPoint is a detected local price extremum.
type SwingPoint struct {
	Time  int64     // Unix seconds, taken from the candle's open time
	Price float64   // The candle's High for a swing high, Low for a swing low
	Type  SwingType // "high" or "low"
	Index int       // Position in the original candlestick slice
}

// SwingConfig controls the symmetric lookback window used by swing detection.
type SwingConfig struct {
	// LookbackBars is the number of bars examined on each side of a
	// candidate index. Must be positive.
	LookbackBars int
}
