package sim

import "fmt"

// RatePolicy resolves the effective transmission rate at simulation time t.
// Implementations must be pure: the same t always yields the same beta.
type RatePolicy interface {
	BetaAt(t float64) float64
}

// ConstantRate returns a fixed transmission rate for all t.
type ConstantRate struct {
	Beta float64
}

func (r ConstantRate) BetaAt(float64) float64 { return r.Beta }

// Validate rejects negative transmission rates.
func (r ConstantRate) Validate() error {
	if r.Beta < 0 {
		return fmt.Errorf("beta must be non-negative, got %f", r.Beta)
	}
	return nil
}

// StepRate models a one-time intervention: Before applies while
// t < InterventionTime, After applies from t == InterventionTime onward.
// The comparison is strict; scenario analyses key percentage reductions off
// this boundary convention.
type StepRate struct {
	Before           float64
	After            float64
	InterventionTime float64
}

func (r StepRate) BetaAt(t float64) float64 {
	if t < r.InterventionTime {
		return r.Before
	}
	return r.After
}

// Validate rejects negative transmission rates on either side of the step.
func (r StepRate) Validate() error {
	if r.Before < 0 {
		return fmt.Errorf("beta_before must be non-negative, got %f", r.Before)
	}
	if r.After < 0 {
		return fmt.Errorf("beta_after must be non-negative, got %f", r.After)
	}
	return nil
}
