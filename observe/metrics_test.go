package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectSum(t *testing.T, reader *sdkmetric.ManualReader, name string) (int64, bool) {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %q is %T, want Sum[int64]", name, m.Data)
			}
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total, true
		}
	}
	return 0, false
}

func TestMetrics_RecordRun(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	meta := RunMeta{Method: "parametric", Iterations: 1000, Seed: 123}
	ctx := context.Background()

	m.RecordRun(ctx, meta, 5*time.Millisecond, nil)
	m.RecordRun(ctx, meta, 8*time.Millisecond, nil)
	m.RecordRun(ctx, meta, 2*time.Millisecond, errors.New("singular covariance"))

	total, ok := collectSum(t, reader, "boot.runs.total")
	if !ok {
		t.Fatal("boot.runs.total not recorded")
	}
	if total != 3 {
		t.Errorf("boot.runs.total = %d, want 3", total)
	}

	errCount, ok := collectSum(t, reader, "boot.runs.errors")
	if !ok {
		t.Fatal("boot.runs.errors not recorded")
	}
	if errCount != 1 {
		t.Errorf("boot.runs.errors = %d, want 1", errCount)
	}
}

func TestNopMetrics(t *testing.T) {
	// Must not panic.
	NopMetrics().RecordRun(context.Background(), RunMeta{}, time.Second, errors.New("x"))
}
