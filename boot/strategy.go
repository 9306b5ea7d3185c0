package boot

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/Data-Wise/medfit-sub001/estimate"
)

// StatisticFunc computes one scalar statistic from a named parameter vector.
// It is the calling convention for the parametric and plugin methods. The
// function must be pure and deterministic given its input.
type StatisticFunc func(params map[string]float64) (float64, error)

// RefitFunc refits the model on a resampled dataset and evaluates the
// statistic, returning one scalar. It is the calling convention for the
// nonparametric method.
type RefitFunc func(data *estimate.Dataset) (float64, error)

// sampler produces one statistic value per iteration from an
// iteration-owned random source.
type sampler interface {
	draw(rng *rand.Rand) (float64, error)
}

// evaluate runs the user statistic function with panic recovery and rejects
// non-finite results.
func evaluate(fn StatisticFunc, params map[string]float64) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, fmt.Errorf("%w: statistic panicked: %v", ErrStatistic, r)
		}
	}()

	v, err = fn(params)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStatistic, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: statistic returned non-finite value %v", ErrStatistic, v)
	}
	return v, nil
}

// parametricSampler draws parameter vectors from a multivariate normal
// distribution with mean and covariance taken from a ParameterEstimate.
// The covariance is Cholesky-factorized once at construction; a matrix that
// is not positive definite fails fast rather than degrading to a degenerate
// draw.
type parametricSampler struct {
	names     []string
	mu        []float64
	chol      mat.Cholesky
	statistic StatisticFunc
}

func newParametricSampler(est *estimate.ParameterEstimate, statistic StatisticFunc) (*parametricSampler, error) {
	s := &parametricSampler{
		names:     est.Names(),
		mu:        est.Mean(),
		statistic: statistic,
	}
	if ok := s.chol.Factorize(est.Covariance()); !ok {
		return nil, fmt.Errorf("%w: covariance matrix is not positive definite", ErrResampling)
	}
	return s, nil
}

func (s *parametricSampler) draw(rng *rand.Rand) (float64, error) {
	normal := distmv.NewNormalChol(s.mu, &s.chol, rng)
	vec := normal.Rand(nil)

	params := make(map[string]float64, len(s.names))
	for i, name := range s.names {
		params[name] = vec[i]
	}
	return evaluate(s.statistic, params)
}

// nonparametricSampler redraws observations with replacement and reruns the
// caller's refit callback on each resample. No distributional assumption is
// made.
type nonparametricSampler struct {
	data  *estimate.Dataset
	refit RefitFunc
}

func (s *nonparametricSampler) draw(rng *rand.Rand) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = 0, fmt.Errorf("%w: refit panicked: %v", ErrStatistic, r)
		}
	}()

	v, err = s.refit(s.data.Resample(rng))
	if err != nil {
		return 0, fmt.Errorf("%w: refit failed: %v", ErrResampling, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: refit returned non-finite value %v", ErrStatistic, v)
	}
	return v, nil
}
