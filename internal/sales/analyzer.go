package sales

import (
	"log/slog"
	"math"
)

// Analyzer computes descriptive statistics over a loaded sales table.
// Every method is a pure function of its inputs; the analyzer itself only
// carries the logger.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer with the given logger
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// mean computes the arithmetic mean of values. Callers guarantee a
// non-empty slice.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev computes the Bessel-corrected standard deviation (divide by
// n-1). Returns 0 for fewer than 2 values.
func sampleStdDev(values []float64, mu float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sumSquared := 0.0
	for _, v := range values {
		sumSquared += (v - mu) * (v - mu)
	}
	return math.Sqrt(sumSquared / float64(len(values)-1))
}
