package trajectory

import (
	"errors"
	"math"
	"testing"
	"time"
)

// decayStepper multiplies the state by (1 - rate*dt) each step, a first
// order approximation of exponential decay.
type decayStepper struct {
	dt   float64
	rate float64
}

func (s *decayStepper) Step(t float64, x float64) float64 {
	return x * (1 - s.rate*s.dt)
}

func valueObs() []Observable[float64] {
	return []Observable[float64]{{Name: "x", Fn: func(x float64) float64 { return x }}}
}

func TestRunSamplingContract(t *testing.T) {
	dt := 0.1
	p := &decayStepper{dt: dt, rate: 1}

	// span holds 10 micro-steps; requesting more points clamps to 10
	result, err := Run[float64](p, 1.0, Span{T0: 0, Tmax: 1.0}, valueObs(),
		Options{Dt: dt, Points: 1000, Quiet: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Times) != 10 {
		t.Errorf("expected 10 samples, got %d", len(result.Times))
	}
	if result.Times[0] != 0 {
		t.Errorf("first sample time = %v, want t0", result.Times[0])
	}
	// stride 1: every micro-step recorded, last sample within one step of tmax
	last := result.Times[len(result.Times)-1]
	if math.Abs(last-0.9) > 1e-12 {
		t.Errorf("last sample time = %v, want 0.9", last)
	}
	for i := 1; i < len(result.Times); i++ {
		if math.Abs(result.Times[i]-result.Times[i-1]-dt) > 1e-12 {
			t.Fatalf("uneven grid spacing at %d", i)
		}
	}

	series := result.Series("x")
	if series == nil {
		t.Fatal("missing series")
	}
	if series[0] != 1.0 {
		t.Errorf("first sample = %v, want initial state", series[0])
	}
	want := 1.0 * math.Exp(-0.9)
	if math.Abs(series[len(series)-1]-want) > 0.05 {
		t.Errorf("final sample = %v, want ~%v", series[len(series)-1], want)
	}
}

func TestRunStride(t *testing.T) {
	dt := 0.1
	p := &decayStepper{dt: dt, rate: 0}

	result, err := Run[float64](p, 1.0, Span{T0: 0, Tmax: 1.0}, valueObs(),
		Options{Dt: dt, Points: 5, Quiet: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Times) != 5 {
		t.Errorf("expected 5 samples, got %d", len(result.Times))
	}
	// stride = ceil(10/5) = 2 micro-steps per sample
	for i := 1; i < len(result.Times); i++ {
		if math.Abs(result.Times[i]-result.Times[i-1]-2*dt) > 1e-12 {
			t.Fatalf("grid spacing should equal stride*dt, got %v", result.Times[i]-result.Times[i-1])
		}
	}
	if result.Steps != 8 {
		t.Errorf("micro-steps taken = %d, want 8", result.Steps)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	p := &decayStepper{dt: 0.1, rate: 1}

	tests := []struct {
		name string
		span Span
		opts Options
		want error
	}{
		{"negative dt", Span{0, 1}, Options{Dt: -0.1, Quiet: true}, ErrInvalidTimeStep},
		{"reversed span", Span{1, 0}, Options{Dt: 0.1, Quiet: true}, ErrInvalidSpan},
		{"empty span", Span{2, 2}, Options{Dt: 0.1, Quiet: true}, ErrInvalidSpan},
		{"dt exceeds span", Span{0, 0.05}, Options{Dt: 0.1, Quiet: true}, ErrInvalidTimeStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run[float64](p, 1.0, tt.span, valueObs(), tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRunRequiresObservables(t *testing.T) {
	p := &decayStepper{dt: 0.1, rate: 1}
	_, err := Run[float64](p, 1.0, Span{0, 1}, nil, Options{Dt: 0.1, Quiet: true})
	if !errors.Is(err, ErrNoObservables) {
		t.Errorf("expected ErrNoObservables, got %v", err)
	}
}

type recordingReporter struct {
	started   bool
	clamped   bool
	requested int
	granted   int
	samples   int
	done      bool
}

func (r *recordingReporter) Start(int, int) { r.started = true }
func (r *recordingReporter) Clamped(requested, granted int) {
	r.clamped = true
	r.requested = requested
	r.granted = granted
}
func (r *recordingReporter) Sample(int, float64)          { r.samples++ }
func (r *recordingReporter) Done(int, int, time.Duration) { r.done = true }

func TestRunReportsProgress(t *testing.T) {
	dt := 0.1
	p := &decayStepper{dt: dt, rate: 1}
	rep := &recordingReporter{}

	result, err := Run[float64](p, 1.0, Span{0, 1}, valueObs(),
		Options{Dt: dt, Points: 100, Reporter: rep})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !rep.started || !rep.done {
		t.Error("reporter lifecycle calls missing")
	}
	if !rep.clamped {
		t.Error("expected clamp notice for points > steps")
	}
	if rep.samples != len(result.Times) {
		t.Errorf("reporter saw %d samples, result has %d", rep.samples, len(result.Times))
	}
}

func TestRunStrideCapNotice(t *testing.T) {
	dt := 0.1
	p := &decayStepper{dt: dt, rate: 0}
	rep := &recordingReporter{}

	// 10 micro-steps at stride ceil(10/7) = 2 fit only 6 samples; the
	// reduction must be reported, not silent.
	result, err := Run[float64](p, 1.0, Span{0, 1}, valueObs(),
		Options{Dt: dt, Points: 7, Reporter: rep})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Times) != 6 {
		t.Errorf("expected 6 samples, got %d", len(result.Times))
	}
	if !rep.clamped || rep.requested != 7 || rep.granted != 6 {
		t.Errorf("clamp notice = (%v, %d, %d), want (true, 7, 6)", rep.clamped, rep.requested, rep.granted)
	}
	if result.Steps != 10 {
		t.Errorf("micro-steps taken = %d, want 10", result.Steps)
	}
	last := result.Times[len(result.Times)-1]
	if math.Abs(last-1.0) > 1e-12 {
		t.Errorf("last sample time = %v, want tmax", last)
	}
}

type countingObserver struct {
	count  int
	lastT  float64
	values []float64
}

func (o *countingObserver) OnSample(index int, t float64, values []float64) {
	o.count++
	o.lastT = t
	o.values = values
}

func TestRunObservers(t *testing.T) {
	dt := 0.1
	p := &decayStepper{dt: dt, rate: 1}
	obs := &countingObserver{}

	result, err := Run[float64](p, 1.0, Span{0, 1}, valueObs(),
		Options{Dt: dt, Points: 5, Quiet: true}, obs)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if obs.count != len(result.Times) {
		t.Errorf("observer saw %d samples, result has %d", obs.count, len(result.Times))
	}
	if len(obs.values) != 1 {
		t.Errorf("observer values length = %d, want 1", len(obs.values))
	}
}

func TestRunDefaults(t *testing.T) {
	p := &decayStepper{dt: DefaultDt, rate: 1}

	result, err := Run[float64](p, 1.0, Span{0, 0.5}, valueObs(), Options{Quiet: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// 0.5 / 1e-4 = 5000 steps, default 1000 points
	if len(result.Times) != DefaultPoints {
		t.Errorf("expected %d samples with default options, got %d", DefaultPoints, len(result.Times))
	}
}
