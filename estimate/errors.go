package estimate

import "errors"

// Sentinel errors for estimate construction and extraction.
var (
	// ErrInvalidEstimate is returned when a ParameterEstimate violates a
	// construction invariant.
	ErrInvalidEstimate = errors.New("estimate: invalid parameter estimate")

	// ErrInvalidDataset is returned when a Dataset violates a construction
	// invariant.
	ErrInvalidDataset = errors.New("estimate: invalid dataset")

	// ErrExtractorNotFound is returned when no extractor is registered for
	// the requested model kind.
	ErrExtractorNotFound = errors.New("estimate: extractor not found")
)
