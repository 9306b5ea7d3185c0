package boot

import (
	"bytes"
	"context"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/Data-Wise/medfit-sub001/observe"
)

func TestRun_SequentialFallbackWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := observe.NewLoggerWithWriter("warn", &buf)

	// One worker cannot run in parallel: the engine must fall back to
	// sequential execution and warn instead of failing.
	res, err := Run(context.Background(), Parametric,
		WithStatistic(product), WithEstimate(testEstimate(t)),
		WithIterations(50), WithSeed(3),
		WithParallel(true), WithWorkers(1),
		WithLogger(logger))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Iterations() != 50 {
		t.Errorf("Iterations() = %d, want 50", res.Iterations())
	}
	if !strings.Contains(buf.String(), "falling back to sequential") {
		t.Errorf("expected fallback warning, got logs: %q", buf.String())
	}
}

func TestRun_FallbackMatchesSequential(t *testing.T) {
	ctx := context.Background()
	base := []Option{
		WithStatistic(product), WithEstimate(testEstimate(t)),
		WithIterations(60), WithSeed(11),
	}

	seq, err := Run(ctx, Parametric, base...)
	if err != nil {
		t.Fatalf("sequential Run() error = %v", err)
	}
	fallback, err := Run(ctx, Parametric, append(base, WithParallel(true), WithWorkers(1))...)
	if err != nil {
		t.Fatalf("fallback Run() error = %v", err)
	}

	if !reflect.DeepEqual(seq.Distribution(), fallback.Distribution()) {
		t.Error("fallback distribution differs from sequential")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	if runtime.GOMAXPROCS(0) < 2 {
		t.Skip("parallel execution requires GOMAXPROCS > 1")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The pool must drain without orphaned workers and surface the
	// cancellation.
	_, err := Run(ctx, Parametric,
		WithStatistic(product), WithEstimate(testEstimate(t)),
		WithIterations(500), WithSeed(1),
		WithParallel(true), WithWorkers(4))
	if err == nil {
		t.Error("Run() with cancelled context error = nil, want error")
	}
}
