// Package observe provides observability primitives for bootstrap runs.
//
// It is a pure instrumentation library: structured logging, OpenTelemetry
// run metrics and tracing, with no behavior of its own. The boot package
// wires these into each run; consumers that need exporters stand up an
// Observer.
package observe
