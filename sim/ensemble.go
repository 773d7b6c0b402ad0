package sim

import (
	"fmt"
	"sync"
)

// RunEnsemble produces runs independent, identically parameterized SSA
// realizations. Trajectories are returned in run order regardless of
// completion order.
//
// Runs execute concurrently: each owns disjoint mutable state and an RNG
// stream derived from seed via the partitioned-RNG scheme, so no
// synchronization is needed beyond collecting results. All streams are
// derived up front on the calling goroutine (PartitionedRNG is not
// thread-safe), then handed off, one per worker.
//
// Callers that want a single realization rather than an ensemble should
// call Simulate directly; the CLI preserves that single-trajectory output
// shape for runs == 1.
func RunEnsemble(v Variant, p Params, initial State, maxTime float64, runs int, seed int64) ([]*Trajectory, error) {
	if runs < 1 {
		return nil, fmt.Errorf("run count must be >= 1, got %d", runs)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	prng := NewPartitionedRNG(NewSimulationKey(seed))
	trajectories := make([]*Trajectory, runs)
	errs := make([]error, runs)

	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		rng := prng.ForStream(StreamRun(i))
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			trajectories[idx], errs[idx] = Simulate(v, p, initial, maxTime, rng)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return trajectories, nil
}
