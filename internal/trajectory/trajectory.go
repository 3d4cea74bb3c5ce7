// Package trajectory drives a sampled evolution: it applies a propagator
// repeatedly at a fixed micro-step and records observable values at evenly
// strided sample points.
package trajectory

import (
	"errors"
	"time"
)

// Defaults applied by Run for zero-valued options.
const (
	DefaultDt     = 1e-4
	DefaultPoints = 1000
)

var (
	// ErrInvalidTimeStep indicates a zero or negative micro-step, which
	// would never terminate the stepping loop.
	ErrInvalidTimeStep = errors.New("trajectory: dt must be positive")

	// ErrInvalidSpan indicates tmax <= t0.
	ErrInvalidSpan = errors.New("trajectory: time span must be ascending")

	// ErrNoObservables indicates an empty observable list.
	ErrNoObservables = errors.New("trajectory: at least one observable required")
)

// Span is the simulated time interval [T0, Tmax].
type Span struct {
	T0, Tmax float64
}

// Observable maps a state to one recordable value.
type Observable[S any] struct {
	Name string
	Fn   func(S) float64
}

// Options configures a trajectory run. The micro-step size is always the
// physics step; Points only controls how often samples are recorded.
type Options struct {
	Dt       float64  // micro-step size, DefaultDt when zero
	Points   int      // target sample count, clamped to available steps
	Quiet    bool     // suppress the progress reporter
	Reporter Reporter // destination for progress, LogReporter when nil
}

// Observer receives every recorded sample as it is taken, values in
// observable order. Observers see the data the caller will get; they cannot
// change it.
type Observer interface {
	OnSample(index int, t float64, values []float64)
}

// Result is a completed trajectory: the sample time grid plus one series of
// recorded values per observable, in grid order. The arrays are owned by
// the caller once Run returns.
type Result struct {
	Times   []float64
	Names   []string
	Values  [][]float64 // Values[i][j] is observable i at Times[j]
	Steps   int         // micro-steps actually taken
	Elapsed time.Duration
}

// Series returns the recorded values for the named observable, or nil.
func (r *Result) Series(name string) []float64 {
	for i, n := range r.Names {
		if n == name {
			return r.Values[i]
		}
	}
	return nil
}
