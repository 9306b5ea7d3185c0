// Package estimate provides validated value objects for mediation inference.
//
// It provides ParameterEstimate, an immutable container for fitted model
// parameters and their covariance, Dataset for raw observations used by
// nonparametric resampling, and a Registry that maps fitted-model kinds to
// extraction routines.
package estimate
