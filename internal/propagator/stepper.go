package propagator

import "errors"

// Stepper advances a state by exactly one fixed time step. Implementations
// built from time-independent generators ignore t except as a label;
// time-varying ones re-evaluate the generator at t on every call.
type Stepper[S any] interface {
	Step(t float64, s S) S
}

var (
	// ErrInvalidTimeStep indicates a zero or negative dt.
	ErrInvalidTimeStep = errors.New("propagator: time step must be positive")

	// ErrStepTooLarge indicates dt too large relative to the dissipation
	// rates, so the no-jump operator's square-root argument lost positivity.
	ErrStepTooLarge = errors.New("propagator: time step too large for jump-no-jump approximation")
)
