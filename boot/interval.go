package boot

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Interval is a percentile confidence interval built from empirical
// quantiles of a resample distribution.
type Interval struct {
	Lower float64
	Upper float64
	Level float64
}

// NewInterval creates a validated Interval.
func NewInterval(lower, upper, level float64) (*Interval, error) {
	if level <= 0 || level >= 1 {
		return nil, fmt.Errorf("%w: level must be in (0, 1), got %g", ErrInvalidResult, level)
	}
	if lower > upper {
		return nil, fmt.Errorf("%w: lower bound %g exceeds upper bound %g", ErrInvalidResult, lower, upper)
	}
	return &Interval{Lower: lower, Upper: upper, Level: level}, nil
}

// percentileInterval computes the percentile interval at the given
// confidence level. Quantiles use linear interpolation of the empirical
// CDF between order statistics (gonum stat.LinInterp), so the computation
// is reproducible across implementations.
func percentileInterval(dist []float64, level float64) (*Interval, error) {
	if len(dist) < 2 {
		return nil, fmt.Errorf("%w: percentile interval needs at least 2 samples, got %d", ErrInsufficientSamples, len(dist))
	}

	sorted := make([]float64, len(dist))
	copy(sorted, dist)
	sort.Float64s(sorted)

	alpha := (1 - level) / 2
	return NewInterval(
		stat.Quantile(alpha, stat.LinInterp, sorted, nil),
		stat.Quantile(1-alpha, stat.LinInterp, sorted, nil),
		level,
	)
}
