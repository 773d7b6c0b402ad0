package sim

// Built-in scenario presets for common outbreak analyses.
// Each returns a valid Scenario ready to materialize with Params and
// InitialState, sharing the package defaults for anything unlisted.

func floatPtr(v float64) *float64 { return &v }

// ScenarioBaseline is the reference SIR outbreak: one seed infection in a
// population of 1000 with R0 = 3.
func ScenarioBaseline() *Scenario {
	return &Scenario{Name: "baseline", Model: "sir"}
}

// ScenarioSEIR is the baseline outbreak with an incubation period.
func ScenarioSEIR() *Scenario {
	return &Scenario{Name: "seir-baseline", Model: "seir"}
}

// ScenarioDistancing halves the transmission rate at day 40, the canonical
// intervention comparison against ScenarioBaseline.
func ScenarioDistancing() *Scenario {
	return &Scenario{
		Name:  "distancing",
		Model: "sir",
		Intervene: &InterventionSpec{
			BetaBefore: floatPtr(DefaultBetaBefore),
			BetaAfter:  floatPtr(DefaultBetaAfter),
			Time:       floatPtr(DefaultInterventionTime),
		},
	}
}

// ScenarioEarlyLockdown cuts transmission to near zero at day 10, before
// the outbreak takes off.
func ScenarioEarlyLockdown() *Scenario {
	return &Scenario{
		Name:  "early-lockdown",
		Model: "sir",
		Intervene: &InterventionSpec{
			BetaBefore: floatPtr(DefaultBetaBefore),
			BetaAfter:  floatPtr(0.02),
			Time:       floatPtr(10),
		},
	}
}

// ScenarioHighR0 models a fast-spreading pathogen (R0 = 6).
func ScenarioHighR0() *Scenario {
	return &Scenario{
		Name:  "high-r0",
		Model: "sir",
		Rates: RatesConfig{Beta: floatPtr(0.6)},
	}
}

// Presets maps preset names to their constructors, for CLI lookup.
var Presets = map[string]func() *Scenario{
	"baseline":       ScenarioBaseline,
	"seir":           ScenarioSEIR,
	"distancing":     ScenarioDistancing,
	"early-lockdown": ScenarioEarlyLockdown,
	"high-r0":        ScenarioHighR0,
}
