package sim

// State holds the per-compartment counts at one instant. Counts are
// real-valued under the deterministic integrator and integer-valued under
// the stochastic simulator (which only ever moves whole units, so float64
// arithmetic stays exact there). Unused compartments stay zero: SIR runs
// never touch Exposed.
type State struct {
	Susceptible float64
	Exposed     float64
	Infectious  float64
	Recovered   float64
}

// Count returns the count for one compartment.
func (s State) Count(c Compartment) float64 {
	switch c {
	case Susceptible:
		return s.Susceptible
	case Exposed:
		return s.Exposed
	case Infectious:
		return s.Infectious
	case Recovered:
		return s.Recovered
	default:
		return 0
	}
}

// Sum returns the total population accounted for by the state. Both engines
// conserve this at every recorded sample.
func (s State) Sum() float64 {
	return s.Susceptible + s.Exposed + s.Infectious + s.Recovered
}

// ptr gives engines write access by compartment. Kept unexported so callers
// see State as a value type.
func (s *State) ptr(c Compartment) *float64 {
	switch c {
	case Susceptible:
		return &s.Susceptible
	case Exposed:
		return &s.Exposed
	case Infectious:
		return &s.Infectious
	case Recovered:
		return &s.Recovered
	default:
		panic("sim: unknown compartment " + c.String())
	}
}

// Sample is one recorded (time, state) point of a trajectory.
type Sample struct {
	Time  float64
	State State
}

// Trajectory is the time-ordered output of one simulation run: an
// append-only sequence of samples with strictly increasing times, the first
// sample being the initial condition. A Trajectory is created fresh by one
// engine invocation, never mutated after the run completes, and owned
// exclusively by the caller that requested it.
type Trajectory struct {
	Variant Variant
	Samples []Sample
}

// newTrajectory seeds a trajectory with the initial condition. capHint
// presizes the sample slice so per-event appends stay amortized O(1).
func newTrajectory(v Variant, t0 float64, initial State, capHint int) *Trajectory {
	samples := make([]Sample, 0, capHint)
	samples = append(samples, Sample{Time: t0, State: initial})
	return &Trajectory{Variant: v, Samples: samples}
}

func (tr *Trajectory) append(t float64, s State) {
	tr.Samples = append(tr.Samples, Sample{Time: t, State: s})
}

// Len returns the number of recorded samples.
func (tr *Trajectory) Len() int { return len(tr.Samples) }

// Final returns the last recorded sample.
func (tr *Trajectory) Final() Sample { return tr.Samples[len(tr.Samples)-1] }

// Series extracts the count series of one compartment, in sample order.
func (tr *Trajectory) Series(c Compartment) []float64 {
	out := make([]float64, len(tr.Samples))
	for i, s := range tr.Samples {
		out[i] = s.State.Count(c)
	}
	return out
}

// Times extracts the sample times, in order.
func (tr *Trajectory) Times() []float64 {
	out := make([]float64, len(tr.Samples))
	for i, s := range tr.Samples {
		out[i] = s.Time
	}
	return out
}
