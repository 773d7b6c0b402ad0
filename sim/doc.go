// Package sim provides the core simulation engine for compartmental
// epidemic models (SIR and SEIR).
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - compartment.go: compartments, model variants, and the flow edges with
//     their instantaneous rate expressions (shared by both engines)
//   - euler.go: the deterministic forward-Euler integrator
//   - gillespie.go: the exact stochastic simulation algorithm (SSA)
//
// # Architecture
//
// Both engines consult Variant.Rates as the single source of transition
// semantics, so the mean-field flow equations and the stochastic event
// rates can never drift apart. A RatePolicy (policy.go) resolves the
// effective transmission rate at a given simulation time, which is how
// interventions (step changes in beta) enter both engines.
//
// Trajectories (trajectory.go) are append-only time series of compartment
// states, produced fresh by each engine invocation and never mutated after
// a run completes. ensemble.go fans out independent SSA realizations with
// per-run RNG streams derived from a master seed (rng.go), and summary.go
// computes the outbreak statistics downstream consumers report on.
package sim
