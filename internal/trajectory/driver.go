package trajectory

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/qevolve/internal/propagator"
)

// Run evolves init under p across span, recording every observable at up
// to min(opts.Points, N) evenly strided samples, where N is the number of
// dt-sized micro-steps in the span. The first sample is the initial state;
// each later sample is reached by applying p stride-many times at the fixed
// micro-step. The propagator output is fed back in as the next input, so p
// sees a strictly advancing time argument.
func Run[S any](p propagator.Stepper[S], init S, span Span, obs []Observable[S], opts Options, observers ...Observer) (*Result, error) {
	if err := validate(span, obs, &opts); err != nil {
		return nil, err
	}

	rep := opts.Reporter
	if rep == nil {
		rep = NewLogReporter(os.Stderr)
	}
	if opts.Quiet {
		rep = NopReporter{}
	}

	dt := opts.Dt
	steps := int((span.Tmax - span.T0) / dt)
	samples := opts.Points
	if samples > steps {
		rep.Clamped(samples, steps)
		samples = steps
	}
	stride := (steps + opts.Points - 1) / opts.Points // ceil(N / points)
	// A constant stride cannot always pack the requested samples into N
	// steps; cap so the final sample stays within one stride of tmax.
	if limit := steps/stride + 1; samples > limit {
		rep.Clamped(samples, limit)
		samples = limit
	}

	result := &Result{
		Times: make([]float64, 0, samples),
		Names: make([]string, len(obs)),
	}
	for i, o := range obs {
		result.Names[i] = o.Name
		result.Values = append(result.Values, make([]float64, 0, samples))
	}

	rep.Start(steps, samples)
	start := time.Now()

	state := init
	t := span.T0
	record(result, obs, t, state, observers)
	rep.Sample(0, t)

	for i := 1; i < samples; i++ {
		for j := 0; j < stride; j++ {
			state = p.Step(t, state)
			t += dt
			result.Steps++
		}
		record(result, obs, t, state, observers)
		rep.Sample(i, t)
	}

	result.Elapsed = time.Since(start)
	rep.Done(result.Steps, samples, result.Elapsed)
	return result, nil
}

func record[S any](r *Result, obs []Observable[S], t float64, state S, observers []Observer) {
	r.Times = append(r.Times, t)
	values := make([]float64, len(obs))
	for i, o := range obs {
		v := o.Fn(state)
		values[i] = v
		r.Values[i] = append(r.Values[i], v)
	}
	for _, w := range observers {
		w.OnSample(len(r.Times)-1, t, values)
	}
}

func validate[S any](span Span, obs []Observable[S], opts *Options) error {
	if opts.Dt == 0 {
		opts.Dt = DefaultDt
	}
	if opts.Points == 0 {
		opts.Points = DefaultPoints
	}
	if opts.Dt < 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidTimeStep, opts.Dt)
	}
	if span.Tmax <= span.T0 {
		return fmt.Errorf("%w: t0=%g tmax=%g", ErrInvalidSpan, span.T0, span.Tmax)
	}
	if int((span.Tmax-span.T0)/opts.Dt) < 1 {
		return fmt.Errorf("%w: dt %g exceeds span", ErrInvalidTimeStep, opts.Dt)
	}
	if len(obs) == 0 {
		return ErrNoObservables
	}
	if opts.Points < 0 {
		return fmt.Errorf("trajectory: points must be positive, got %d", opts.Points)
	}
	return nil
}
