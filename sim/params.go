package sim

import "fmt"

// Default parameter values shared by the CLI, scenario presets, and tests.
const (
	DefaultPopulation       = 1000.0
	DefaultInitialInfected  = 1.0
	DefaultInitialRecovered = 0.0
	DefaultBeta             = 0.3
	DefaultGamma            = 0.1
	DefaultSigma            = 0.2
	DefaultBetaBefore       = 0.3
	DefaultBetaAfter        = 0.15
	DefaultInterventionTime = 40.0
	DefaultTimesteps        = 160
)

// Params is the immutable per-run parameter record. Construct it once,
// validate it, and hand it to an engine; engines never mutate it.
type Params struct {
	// N is the total population size, fixed for the duration of a run.
	N float64
	// Beta resolves the transmission rate at a given simulation time.
	Beta RatePolicy
	// Gamma is the recovery rate (infectious -> recovered).
	Gamma float64
	// Sigma is the incubation rate (exposed -> infectious, SEIR only).
	Sigma float64
}

// DefaultParams returns the baseline parameter set with a constant
// transmission rate.
func DefaultParams() Params {
	return Params{
		N:     DefaultPopulation,
		Beta:  ConstantRate{Beta: DefaultBeta},
		Gamma: DefaultGamma,
		Sigma: DefaultSigma,
	}
}

// Validate rejects parameter sets the engines must not run with.
// It is called by both engines before any simulation work (fail fast).
func (p Params) Validate() error {
	if p.N <= 0 {
		return fmt.Errorf("population size must be positive, got %f", p.N)
	}
	if p.Beta == nil {
		return fmt.Errorf("transmission rate policy must be set")
	}
	if v, ok := p.Beta.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	if p.Gamma < 0 {
		return fmt.Errorf("gamma must be non-negative, got %f", p.Gamma)
	}
	if p.Sigma < 0 {
		return fmt.Errorf("sigma must be non-negative, got %f", p.Sigma)
	}
	return nil
}

// NewState builds the initial compartment state for a run: susceptible is
// whatever remains of the population after the seeded compartments.
// Rejects negative counts and seeds that exceed the population.
func NewState(v Variant, p Params, exposed, infected, recovered float64) (State, error) {
	if exposed < 0 || infected < 0 || recovered < 0 {
		return State{}, fmt.Errorf("initial compartment counts must be non-negative, got E=%f I=%f R=%f",
			exposed, infected, recovered)
	}
	if v == SIR && exposed != 0 {
		return State{}, fmt.Errorf("SIR model has no exposed compartment, got E=%f", exposed)
	}
	susceptible := p.N - exposed - infected - recovered
	if susceptible < 0 {
		return State{}, fmt.Errorf("initial compartment counts exceed population: E+I+R=%f > N=%f",
			exposed+infected+recovered, p.N)
	}
	return State{
		Susceptible: susceptible,
		Exposed:     exposed,
		Infectious:  infected,
		Recovered:   recovered,
	}, nil
}
