package sim

import (
	"fmt"
	"math/rand"
)

// Simulate runs the exact stochastic simulation algorithm (Gillespie SSA)
// for one realization: exponential waiting times at the current total event
// rate, event selection proportional to each edge's rate, and unit-step
// transitions (one individual moves per event).
//
// The (edge, rate) list is recomputed from the current state and the rate
// policy at the start of every waiting interval, so a time-varying beta
// takes effect at the first event drawn after the intervention time without
// an artificially inserted event there. This is the standard
// piecewise-constant-rate approximation: the waiting-time draw uses the
// rate in effect at the start of the interval.
//
// The run terminates when the total event rate reaches zero (extinction of
// all disease-carrying compartments, or degenerate all-zero rates) or when
// the clock passes maxTime. The final recorded event may land past maxTime:
// a waiting interval started before the horizon always completes.
//
// Reproducibility: the entire event sequence is a pure function of the
// inputs and the rng stream, so identical seeds give identical trajectories.
func Simulate(v Variant, p Params, initial State, maxTime float64, rng *rand.Rand) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if maxTime < 0 {
		return nil, fmt.Errorf("max time must be non-negative, got %f", maxTime)
	}
	if rng == nil {
		return nil, fmt.Errorf("nil rng: each run needs its own random source")
	}

	traj := newTrajectory(v, 0, initial, trajectoryCapHint(initial, maxTime))
	state := initial
	t := 0.0
	for t < maxTime {
		rates := v.Rates(state, p, t)
		totalRate := 0.0
		for _, fr := range rates {
			totalRate += fr.Rate
		}
		if totalRate <= 0 {
			break
		}

		t += rng.ExpFloat64() / totalRate

		// Categorical draw over the edge-rate list, proportional to rate.
		u := rng.Float64() * totalRate
		chosen := rates[len(rates)-1].Flow
		for _, fr := range rates {
			if u < fr.Rate {
				chosen = fr.Flow
				break
			}
			u -= fr.Rate
		}

		*state.ptr(chosen.From) -= 1
		*state.ptr(chosen.To) += 1
		traj.append(t, state)
	}
	return traj, nil
}

// trajectoryCapHint estimates the event count so the sample slice grows
// amortized rather than per event. Every individual passes through each
// downstream compartment at most once, so 2N+1 bounds an SIR outbreak that
// burns through the whole population; short horizons stay small anyway.
func trajectoryCapHint(initial State, maxTime float64) int {
	if maxTime == 0 {
		return 1
	}
	hint := int(2*initial.Sum()) + 1
	if hint > 1<<16 {
		hint = 1 << 16
	}
	return hint
}
