package domain

// LineType classifies a trend line as support or resistance.
type LineType string

const (
	Support    LineType = "support"
	Resistance LineType = "resistance"
)

// TrendLine is a line segment connecting two swing points of the same kind.
// Support lines connect ascending swing lows, resistance lines connect
// descending swing highs. StartPoint.Time < EndPoint.Time always holds for
// generated lines.
type TrendLine struct {
	ID         string
	StartPoint SwingPoint
	EndPoint   SwingPoint
	Type       LineType
	Slope      float64 // Price change per second
	IsBroken   bool    // Set by the detector after the EMA crossing check
}

// TrendLineConfig holds the knobs for trend line generation.
type TrendLineConfig struct {
	Swing SwingConfig

	// MaxLines caps the generated lines per type; support and resistance
	// are counted separately.
	MaxLines int

	// ExtendRight tells renderers that price-at-time queries may extrapolate
	// beyond EndPoint.Time. The interpolator always supports extrapolation;
	// the flag is informational.
	ExtendRight bool
}

// EMAPoint is one sample of an exponential moving average series.
type EMAPoint struct {
	Time  int64 // Unix seconds
	Value float64
}

// AnalysisResult aggregates the output of a full trend line detection pass.
type AnalysisResult struct {
	SupportLines    []*TrendLine
	ResistanceLines []*TrendLine
	SwingPoints     []SwingPoint
}
