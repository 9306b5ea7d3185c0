package boot

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/Data-Wise/medfit-sub001/estimate"
	"github.com/Data-Wise/medfit-sub001/observe"
)

// Method selects the resampling strategy.
type Method int

const (
	// Parametric draws parameter vectors from a multivariate normal
	// distribution fitted to the ParameterEstimate.
	Parametric Method = iota

	// Nonparametric redraws observations with replacement and reruns the
	// refit callback on each resample.
	Nonparametric

	// Plugin evaluates the statistic once on the point estimates, with no
	// resampling and no interval.
	Plugin
)

func (m Method) valid() bool {
	return m >= Parametric && m <= Plugin
}

func (m Method) String() string {
	switch m {
	case Parametric:
		return "parametric"
	case Nonparametric:
		return "nonparametric"
	case Plugin:
		return "plugin"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod parses a method name.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "parametric":
		return Parametric, nil
	case "nonparametric":
		return Nonparametric, nil
	case "plugin":
		return Plugin, nil
	default:
		return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, s)
	}
}

type config struct {
	statistic  StatisticFunc
	est        *estimate.ParameterEstimate
	data       *estimate.Dataset
	refit      RefitFunc
	iterations int
	level      float64
	parallel   bool
	workers    int
	seed       uint64
	seedSet    bool
	logger     observe.Logger
	metrics    observe.Metrics
	tracer     observe.Tracer
}

// Option configures a bootstrap run.
type Option func(*config)

// WithStatistic supplies the statistic function evaluated on each drawn
// parameter vector (parametric and plugin methods).
func WithStatistic(fn StatisticFunc) Option {
	return func(c *config) { c.statistic = fn }
}

// WithEstimate supplies the parameter estimate (parametric and plugin
// methods). It is ignored by the nonparametric method.
func WithEstimate(est *estimate.ParameterEstimate) Option {
	return func(c *config) { c.est = est }
}

// WithData supplies the raw dataset resampled by the nonparametric method.
// It is ignored by the other methods.
func WithData(data *estimate.Dataset) Option {
	return func(c *config) { c.data = data }
}

// WithRefit supplies the refit-and-evaluate callback run on each
// nonparametric resample.
func WithRefit(fn RefitFunc) Option {
	return func(c *config) { c.refit = fn }
}

// WithIterations sets the number of resampling iterations.
// Default: 1000.
func WithIterations(n int) Option {
	return func(c *config) { c.iterations = n }
}

// WithLevel sets the confidence level for the percentile interval.
// Default: 0.95.
func WithLevel(level float64) Option {
	return func(c *config) { c.level = level }
}

// WithParallel distributes iterations across a bounded worker pool.
func WithParallel(parallel bool) Option {
	return func(c *config) { c.parallel = parallel }
}

// WithWorkers sets the worker pool size for parallel runs.
// Default: available cores minus one, floor 1.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithSeed fixes the master seed, making the run reproducible.
// Default: derived from the wall clock.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seedSet = true
	}
}

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l observe.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics sets the metrics recorder for run telemetry.
func WithMetrics(m observe.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithTracer sets the tracer used to span each run.
func WithTracer(t observe.Tracer) Option {
	return func(c *config) { c.tracer = t }
}

// Run performs one bootstrap call and returns its validated Result.
//
// All arguments are validated before any resampling begins. The input
// required by the chosen method (estimate for parametric/plugin, dataset
// plus refit callback for nonparametric) must be supplied; the other input
// is ignored.
func Run(ctx context.Context, method Method, opts ...Option) (*Result, error) {
	cfg := config{
		iterations: 1000,
		level:      0.95,
		workers:    defaultWorkers(),
		logger:     observe.NopLogger(),
		metrics:    observe.NopMetrics(),
		tracer:     observe.NopTracer(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seedSet {
		cfg.seed = uint64(time.Now().UnixNano())
	}

	if err := validate(method, &cfg); err != nil {
		return nil, err
	}

	meta := observe.RunMeta{Method: method.String(), Iterations: cfg.iterations, Seed: cfg.seed}
	ctx, span := cfg.tracer.StartSpan(ctx, meta)
	cfg.logger.Debug(ctx, "bootstrap run starting",
		observe.Field{Key: "method", Value: meta.Method},
		observe.Field{Key: "iterations", Value: meta.Iterations},
		observe.Field{Key: "seed", Value: meta.Seed},
		observe.Field{Key: "parallel", Value: cfg.parallel})

	start := time.Now()
	res, err := run(ctx, method, &cfg)
	cfg.tracer.EndSpan(span, err)
	cfg.metrics.RecordRun(ctx, meta, time.Since(start), err)
	if err != nil {
		cfg.logger.Error(ctx, "bootstrap run failed", observe.Field{Key: "error", Value: err.Error()})
		return nil, err
	}
	return res, nil
}

func defaultWorkers() int {
	if n := runtime.NumCPU() - 1; n > 1 {
		return n
	}
	return 1
}

// validate applies the full precondition table before any resampling.
func validate(method Method, cfg *config) error {
	if !method.valid() {
		return fmt.Errorf("%w: unknown method %d", ErrInvalidArgument, int(method))
	}
	if cfg.iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidArgument, cfg.iterations)
	}
	if cfg.level <= 0 || cfg.level >= 1 {
		return fmt.Errorf("%w: level must be in (0, 1), got %g", ErrInvalidArgument, cfg.level)
	}
	if cfg.workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidArgument, cfg.workers)
	}

	switch method {
	case Parametric, Plugin:
		if cfg.statistic == nil {
			return fmt.Errorf("%w: statistic function is required for %s", ErrInvalidArgument, method)
		}
		if cfg.est == nil {
			return fmt.Errorf("%w: parameter estimate is required for %s (WithEstimate)", ErrMissingInput, method)
		}
	case Nonparametric:
		if cfg.refit == nil {
			return fmt.Errorf("%w: refit callback is required for nonparametric (WithRefit)", ErrInvalidArgument)
		}
		if cfg.data == nil {
			return fmt.Errorf("%w: dataset is required for nonparametric (WithData)", ErrMissingInput)
		}
	}
	return nil
}

func run(ctx context.Context, method Method, cfg *config) (*Result, error) {
	if method == Plugin {
		v, err := evaluate(cfg.statistic, cfg.est.Values())
		if err != nil {
			return nil, err
		}
		return NewResult(Plugin, v, nil, nil)
	}

	var s sampler
	switch method {
	case Parametric:
		ps, err := newParametricSampler(cfg.est, cfg.statistic)
		if err != nil {
			return nil, err
		}
		s = ps
	case Nonparametric:
		s = &nonparametricSampler{data: cfg.data, refit: cfg.refit}
	}

	dist, err := runIterations(ctx, s, cfg.iterations, cfg.seed, cfg.parallel, cfg.workers, cfg.logger)
	if err != nil {
		return nil, err
	}

	sort.Float64s(dist)

	iv, err := percentileInterval(dist, cfg.level)
	if err != nil {
		return nil, err
	}
	return NewResult(method, stat.Mean(dist, nil), dist, iv)
}
