package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario holds a complete simulation configuration, loadable from a YAML
// file. Nil pointer fields mean "not set in YAML" and fall back to the
// package defaults, so a scenario file only needs to name what it changes.
type Scenario struct {
	Name       string            `yaml:"name"`
	Model      string            `yaml:"model"`
	Population *float64          `yaml:"population"`
	Initial    InitialConfig     `yaml:"initial"`
	Rates      RatesConfig       `yaml:"rates"`
	Horizon    HorizonConfig     `yaml:"horizon"`
	Runs       *int              `yaml:"runs"`
	Seed       *int64            `yaml:"seed"`
	Intervene  *InterventionSpec `yaml:"intervention"`
}

// InitialConfig seeds the non-susceptible compartments.
type InitialConfig struct {
	Exposed   *float64 `yaml:"exposed"`
	Infected  *float64 `yaml:"infected"`
	Recovered *float64 `yaml:"recovered"`
}

// RatesConfig holds the constant rate parameters.
type RatesConfig struct {
	Beta  *float64 `yaml:"beta"`
	Gamma *float64 `yaml:"gamma"`
	Sigma *float64 `yaml:"sigma"`
}

// HorizonConfig bounds a run: Timesteps for the deterministic integrator,
// MaxTime for the stochastic simulator.
type HorizonConfig struct {
	Timesteps *int     `yaml:"timesteps"`
	MaxTime   *float64 `yaml:"max_time"`
}

// InterventionSpec describes a step change in transmission rate. Its
// presence in a scenario switches the run to a StepRate policy.
type InterventionSpec struct {
	BetaBefore *float64 `yaml:"beta_before"`
	BetaAfter  *float64 `yaml:"beta_after"`
	Time       *float64 `yaml:"time"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

func orFloat(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

// Variant resolves the model selector (default "sir").
func (sc *Scenario) Variant() (Variant, error) {
	if sc.Model == "" {
		return SIR, nil
	}
	return ParseVariant(sc.Model)
}

// Params materializes the rate parameter record, applying defaults for
// unset fields and the intervention policy when one is present.
func (sc *Scenario) Params() (Params, error) {
	p := Params{
		N:     orFloat(sc.Population, DefaultPopulation),
		Gamma: orFloat(sc.Rates.Gamma, DefaultGamma),
		Sigma: orFloat(sc.Rates.Sigma, DefaultSigma),
	}
	if sc.Intervene != nil {
		p.Beta = StepRate{
			Before:           orFloat(sc.Intervene.BetaBefore, DefaultBetaBefore),
			After:            orFloat(sc.Intervene.BetaAfter, DefaultBetaAfter),
			InterventionTime: orFloat(sc.Intervene.Time, DefaultInterventionTime),
		}
	} else {
		p.Beta = ConstantRate{Beta: orFloat(sc.Rates.Beta, DefaultBeta)}
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// InitialState materializes the initial compartment state.
func (sc *Scenario) InitialState() (State, error) {
	v, err := sc.Variant()
	if err != nil {
		return State{}, err
	}
	p, err := sc.Params()
	if err != nil {
		return State{}, err
	}
	return NewState(v, p,
		orFloat(sc.Initial.Exposed, 0),
		orFloat(sc.Initial.Infected, DefaultInitialInfected),
		orFloat(sc.Initial.Recovered, DefaultInitialRecovered))
}

// Timesteps resolves the deterministic horizon (default DefaultTimesteps).
func (sc *Scenario) Timesteps() int {
	if sc.Horizon.Timesteps != nil {
		return *sc.Horizon.Timesteps
	}
	return DefaultTimesteps
}

// MaxTime resolves the stochastic horizon. Defaults to the deterministic
// horizon so the two engines cover the same simulated span.
func (sc *Scenario) MaxTime() float64 {
	if sc.Horizon.MaxTime != nil {
		return *sc.Horizon.MaxTime
	}
	return float64(sc.Timesteps())
}

// Validate checks the scenario without materializing it: model name, rate
// signs, seed compartments, and run count.
func (sc *Scenario) Validate() error {
	if _, err := sc.Variant(); err != nil {
		return err
	}
	if _, err := sc.Params(); err != nil {
		return err
	}
	if _, err := sc.InitialState(); err != nil {
		return err
	}
	if sc.Horizon.Timesteps != nil && *sc.Horizon.Timesteps < 1 {
		return fmt.Errorf("timesteps must be >= 1, got %d", *sc.Horizon.Timesteps)
	}
	if sc.Horizon.MaxTime != nil && *sc.Horizon.MaxTime < 0 {
		return fmt.Errorf("max_time must be non-negative, got %f", *sc.Horizon.MaxTime)
	}
	if sc.Runs != nil && *sc.Runs < 1 {
		return fmt.Errorf("runs must be >= 1, got %d", *sc.Runs)
	}
	return nil
}
