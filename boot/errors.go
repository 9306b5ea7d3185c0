package boot

import "errors"

// Sentinel errors for bootstrap runs.
var (
	// ErrInvalidArgument is returned when a run argument fails validation
	// before any resampling begins.
	ErrInvalidArgument = errors.New("boot: invalid argument")

	// ErrMissingInput is returned when the input required by the chosen
	// method was not supplied.
	ErrMissingInput = errors.New("boot: missing required input")

	// ErrStatistic is returned when the user statistic function fails or
	// returns a non-finite value.
	ErrStatistic = errors.New("boot: statistic evaluation failed")

	// ErrResampling is returned when a resample cannot be drawn, e.g. the
	// covariance matrix is not positive definite or a refit fails.
	ErrResampling = errors.New("boot: resampling failed")

	// ErrInsufficientSamples is returned when the resample distribution is
	// too small for the requested interval.
	ErrInsufficientSamples = errors.New("boot: insufficient samples")

	// ErrInvalidResult is returned when a Result or Interval violates a
	// construction invariant.
	ErrInvalidResult = errors.New("boot: invalid result")
)
