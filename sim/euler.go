package sim

import "fmt"

// Integrate advances the mean-field compartmental flow equations with a
// forward-Euler discretization in unit time steps. It produces exactly
// timesteps samples at integer times 1..timesteps, the first being the
// initial condition.
//
// Each step applies every flow edge synchronously: all edges read the
// pre-update state, so evaluation order never matters and every unit of
// outflow is an equal unit of inflow somewhere else (exact conservation).
// No clamping is performed; oversized rate constants can legitimately push
// compartment counts negative or past the population bounds. That is a
// known property of fixed-step Euler integration and is surfaced as-is to
// match reference outputs.
//
// The rate policy is evaluated at the zero-based step index, so an
// intervention at time T takes effect on the update computed at step T.
func Integrate(v Variant, p Params, initial State, timesteps int) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	if timesteps < 1 {
		return nil, fmt.Errorf("timesteps must be >= 1, got %d", timesteps)
	}

	traj := newTrajectory(v, 1, initial, timesteps)
	current := initial
	for t := 0; t < timesteps-1; t++ {
		next := current
		for _, fr := range v.Rates(current, p, float64(t)) {
			*next.ptr(fr.Flow.From) -= fr.Rate
			*next.ptr(fr.Flow.To) += fr.Rate
		}
		current = next
		traj.append(float64(t+2), current)
	}
	return traj, nil
}
