package estimate

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ParameterEstimate holds point estimates and their covariance for a fitted
// mediation model. It is validated once at construction and immutable
// afterwards: the constructor deep-copies its inputs and accessors return
// copies.
//
// Covariance rows and columns follow Names() order, which is the lexically
// sorted order of the parameter names.
type ParameterEstimate struct {
	values     map[string]float64
	names      []string // sorted
	cov        *mat.SymDense
	data       *Dataset
	sampleSize int
	converged  bool
	source     string
}

// Option configures optional ParameterEstimate metadata.
type Option func(*ParameterEstimate)

// WithData attaches the reference dataset the model was fitted on.
func WithData(d *Dataset) Option {
	return func(p *ParameterEstimate) {
		p.data = d
	}
}

// WithSampleSize records the fitted sample size.
func WithSampleSize(n int) Option {
	return func(p *ParameterEstimate) {
		p.sampleSize = n
	}
}

// WithConverged records whether the fitting procedure converged.
func WithConverged(ok bool) Option {
	return func(p *ParameterEstimate) {
		p.converged = ok
	}
}

// WithSource tags the estimate with the model backend that produced it.
func WithSource(source string) Option {
	return func(p *ParameterEstimate) {
		p.source = source
	}
}

// New creates a validated ParameterEstimate.
//
// values maps parameter names to point estimates. cov is the parameter
// covariance matrix ordered by lexically sorted parameter names; its
// dimension must equal len(values) and its diagonal must be non-negative.
func New(values map[string]float64, cov *mat.SymDense, opts ...Option) (*ParameterEstimate, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: values must contain at least one parameter", ErrInvalidEstimate)
	}
	if cov == nil {
		return nil, fmt.Errorf("%w: covariance is required", ErrInvalidEstimate)
	}
	if n := cov.SymmetricDim(); n != len(values) {
		return nil, fmt.Errorf("%w: covariance dimension %d does not match %d parameters", ErrInvalidEstimate, n, len(values))
	}
	for i := 0; i < cov.SymmetricDim(); i++ {
		if cov.At(i, i) < 0 {
			return nil, fmt.Errorf("%w: covariance diagonal entry %d is negative (%g)", ErrInvalidEstimate, i, cov.At(i, i))
		}
	}

	p := &ParameterEstimate{
		values:    make(map[string]float64, len(values)),
		names:     make([]string, 0, len(values)),
		converged: true,
	}
	for name, v := range values {
		p.values[name] = v
		p.names = append(p.names, name)
	}
	sort.Strings(p.names)

	n := cov.SymmetricDim()
	p.cov = mat.NewSymDense(n, nil)
	p.cov.CopySym(cov)

	for _, opt := range opts {
		opt(p)
	}

	if p.sampleSize < 0 {
		return nil, fmt.Errorf("%w: sample size must be >= 1, got %d", ErrInvalidEstimate, p.sampleSize)
	}
	if p.data != nil && p.sampleSize > 0 && p.data.NumRows() != p.sampleSize {
		return nil, fmt.Errorf("%w: sample size %d does not match dataset rows %d", ErrInvalidEstimate, p.sampleSize, p.data.NumRows())
	}

	return p, nil
}

// Len returns the number of parameters.
func (p *ParameterEstimate) Len() int { return len(p.names) }

// Names returns the parameter names in lexically sorted order.
func (p *ParameterEstimate) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Value returns the point estimate for name.
func (p *ParameterEstimate) Value(name string) (float64, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Values returns a copy of the name-to-estimate mapping.
func (p *ParameterEstimate) Values() map[string]float64 {
	out := make(map[string]float64, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Mean returns the point-estimate vector in Names() order.
func (p *ParameterEstimate) Mean() []float64 {
	out := make([]float64, len(p.names))
	for i, name := range p.names {
		out[i] = p.values[name]
	}
	return out
}

// Covariance returns a copy of the covariance matrix in Names() order.
func (p *ParameterEstimate) Covariance() *mat.SymDense {
	out := mat.NewSymDense(p.cov.SymmetricDim(), nil)
	out.CopySym(p.cov)
	return out
}

// Data returns the reference dataset, if one was attached.
func (p *ParameterEstimate) Data() *Dataset { return p.data }

// SampleSize returns the fitted sample size, or 0 if unknown.
func (p *ParameterEstimate) SampleSize() int { return p.sampleSize }

// Converged reports whether the fitting procedure converged.
func (p *ParameterEstimate) Converged() bool { return p.converged }

// Source returns the model backend tag, if any.
func (p *ParameterEstimate) Source() string { return p.source }
