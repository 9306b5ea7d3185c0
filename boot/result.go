package boot

import (
	"fmt"
	"math"
)

// Result is the immutable outcome of one bootstrap run. It is validated
// once at construction; accessors return copies.
type Result struct {
	method       Method
	estimate     float64
	distribution []float64
	interval     *Interval
}

// NewResult creates a validated Result.
//
// The plugin method carries no distribution and no interval; the resampling
// methods carry both. dist is copied; it holds one statistic value per
// iteration.
func NewResult(method Method, est float64, dist []float64, iv *Interval) (*Result, error) {
	if !method.valid() {
		return nil, fmt.Errorf("%w: unknown method %d", ErrInvalidResult, int(method))
	}
	if math.IsNaN(est) || math.IsInf(est, 0) {
		return nil, fmt.Errorf("%w: estimate must be finite, got %v", ErrInvalidResult, est)
	}

	if method == Plugin {
		if len(dist) != 0 {
			return nil, fmt.Errorf("%w: plugin results carry no distribution, got %d values", ErrInvalidResult, len(dist))
		}
		if iv != nil {
			return nil, fmt.Errorf("%w: plugin results carry no interval", ErrInvalidResult)
		}
		return &Result{method: method, estimate: est}, nil
	}

	if len(dist) == 0 {
		return nil, fmt.Errorf("%w: %s results require a distribution", ErrInvalidResult, method)
	}
	if iv == nil {
		return nil, fmt.Errorf("%w: %s results require an interval", ErrInvalidResult, method)
	}
	checked, err := NewInterval(iv.Lower, iv.Upper, iv.Level)
	if err != nil {
		return nil, err
	}

	r := &Result{
		method:       method,
		estimate:     est,
		distribution: make([]float64, len(dist)),
		interval:     checked,
	}
	copy(r.distribution, dist)
	return r, nil
}

// Method returns the resampling method that produced the result.
func (r *Result) Method() Method { return r.method }

// Estimate returns the point estimate of the statistic.
func (r *Result) Estimate() float64 { return r.estimate }

// Iterations returns the number of resampling iterations (0 for plugin).
func (r *Result) Iterations() int { return len(r.distribution) }

// Distribution returns a copy of the resample distribution.
func (r *Result) Distribution() []float64 {
	out := make([]float64, len(r.distribution))
	copy(out, r.distribution)
	return out
}

// Interval returns the confidence interval and whether one is present.
// Plugin results carry no interval.
func (r *Result) Interval() (Interval, bool) {
	if r.interval == nil {
		return Interval{}, false
	}
	return *r.interval, true
}
