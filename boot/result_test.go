package boot

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestNewResult_RoundTrip(t *testing.T) {
	iv, err := NewInterval(0.15, 0.26, 0.95)
	if err != nil {
		t.Fatalf("NewInterval() error = %v", err)
	}
	dist := []float64{0.15, 0.18, 0.2, 0.22, 0.26}

	res, err := NewResult(Parametric, 0.2, dist, iv)
	if err != nil {
		t.Fatalf("NewResult() error = %v", err)
	}

	if res.Method() != Parametric {
		t.Errorf("Method() = %v, want Parametric", res.Method())
	}
	if res.Estimate() != 0.2 {
		t.Errorf("Estimate() = %v, want 0.2", res.Estimate())
	}
	if res.Iterations() != 5 {
		t.Errorf("Iterations() = %d, want 5", res.Iterations())
	}
	if got := res.Distribution(); !reflect.DeepEqual(got, dist) {
		t.Errorf("Distribution() = %v, want %v", got, dist)
	}
	got, ok := res.Interval()
	if !ok {
		t.Fatal("Interval() ok = false, want true")
	}
	if got != *iv {
		t.Errorf("Interval() = %+v, want %+v", got, *iv)
	}
}

func TestNewResult_Plugin(t *testing.T) {
	res, err := NewResult(Plugin, 0.2, nil, nil)
	if err != nil {
		t.Fatalf("NewResult() error = %v", err)
	}

	if res.Iterations() != 0 {
		t.Errorf("Iterations() = %d, want 0", res.Iterations())
	}
	if _, ok := res.Interval(); ok {
		t.Error("plugin Interval() ok = true, want false")
	}
}

func TestNewResult_Invalid(t *testing.T) {
	iv := &Interval{Lower: 0.1, Upper: 0.3, Level: 0.95}
	dist := []float64{0.1, 0.2, 0.3}

	tests := []struct {
		name     string
		method   Method
		estimate float64
		dist     []float64
		interval *Interval
	}{
		{name: "unknown method", method: Method(99), estimate: 0.2, dist: dist, interval: iv},
		{name: "NaN estimate", method: Parametric, estimate: math.NaN(), dist: dist, interval: iv},
		{name: "infinite estimate", method: Parametric, estimate: math.Inf(1), dist: dist, interval: iv},
		{name: "plugin with distribution", method: Plugin, estimate: 0.2, dist: dist},
		{name: "plugin with interval", method: Plugin, estimate: 0.2, interval: iv},
		{name: "parametric without distribution", method: Parametric, estimate: 0.2, interval: iv},
		{name: "parametric without interval", method: Parametric, estimate: 0.2, dist: dist},
		{name: "inverted interval", method: Parametric, estimate: 0.2, dist: dist, interval: &Interval{Lower: 0.3, Upper: 0.1, Level: 0.95}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResult(tt.method, tt.estimate, tt.dist, tt.interval)
			if !errors.Is(err, ErrInvalidResult) {
				t.Errorf("NewResult() error = %v, want ErrInvalidResult", err)
			}
		})
	}
}

func TestResult_DistributionCopied(t *testing.T) {
	iv, _ := NewInterval(0.1, 0.3, 0.95)
	dist := []float64{0.1, 0.2, 0.3}

	res, err := NewResult(Nonparametric, 0.2, dist, iv)
	if err != nil {
		t.Fatalf("NewResult() error = %v", err)
	}

	dist[0] = 99
	res.Distribution()[1] = 99
	if got := res.Distribution(); got[0] != 0.1 || got[1] != 0.2 {
		t.Errorf("Distribution() = %v, want untouched [0.1 0.2 0.3]", got)
	}
}

func TestMethod_String(t *testing.T) {
	tests := []struct {
		method Method
		want   string
	}{
		{Parametric, "parametric"},
		{Nonparametric, "nonparametric"},
		{Plugin, "plugin"},
		{Method(99), "method(99)"},
	}

	for _, tt := range tests {
		if got := tt.method.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.method), got, tt.want)
		}
	}
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{Parametric, Nonparametric, Plugin} {
		got, err := ParseMethod(m.String())
		if err != nil {
			t.Errorf("ParseMethod(%q) error = %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMethod(%q) = %v, want %v", m.String(), got, m)
		}
	}

	if _, err := ParseMethod("jackknife"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseMethod(jackknife) error = %v, want ErrInvalidArgument", err)
	}
}
