package observe

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordingTracer(t *testing.T) (Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewTracer(tp.Tracer("test")), recorder
}

func TestRunMeta_SpanName(t *testing.T) {
	meta := RunMeta{Method: "parametric"}
	if got := meta.SpanName(); got != "boot.run.parametric" {
		t.Errorf("SpanName() = %q, want %q", got, "boot.run.parametric")
	}
}

func TestTracer_Success(t *testing.T) {
	tracer, recorder := recordingTracer(t)

	_, span := tracer.StartSpan(context.Background(), RunMeta{Method: "plugin"})
	tracer.EndSpan(span, nil)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Name() != "boot.run.plugin" {
		t.Errorf("span name = %q, want boot.run.plugin", spans[0].Name())
	}
	if spans[0].Status().Code != codes.Ok {
		t.Errorf("status = %v, want Ok", spans[0].Status().Code)
	}
}

func TestTracer_Error(t *testing.T) {
	tracer, recorder := recordingTracer(t)

	_, span := tracer.StartSpan(context.Background(), RunMeta{Method: "parametric"})
	tracer.EndSpan(span, errors.New("covariance matrix is not positive definite"))

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Status().Code != codes.Error {
		t.Errorf("status = %v, want Error", spans[0].Status().Code)
	}
	if len(spans[0].Events()) == 0 {
		t.Error("error span recorded no events")
	}
}

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()

	_, span := tracer.StartSpan(context.Background(), RunMeta{Method: "plugin"})
	tracer.EndSpan(span, errors.New("ignored"))
}
