package sim

import "fmt"

// Compartment is a mutually exclusive population subgroup.
type Compartment int

const (
	Susceptible Compartment = iota
	Exposed
	Infectious
	Recovered
)

// String returns the lowercase compartment name used in CSV headers and logs.
func (c Compartment) String() string {
	switch c {
	case Susceptible:
		return "susceptible"
	case Exposed:
		return "exposed"
	case Infectious:
		return "infectious"
	case Recovered:
		return "recovered"
	default:
		return fmt.Sprintf("compartment(%d)", int(c))
	}
}

// Variant selects the compartment structure of a simulation run.
// It is chosen once per run and never mutated mid-run.
type Variant int

const (
	// SIR is the three-compartment susceptible/infectious/recovered model.
	SIR Variant = iota
	// SEIR adds an exposed (infected but not yet infectious) compartment.
	SEIR
)

func (v Variant) String() string {
	switch v {
	case SIR:
		return "sir"
	case SEIR:
		return "seir"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant maps a model name from CLI flags or scenario files to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "sir":
		return SIR, nil
	case "seir":
		return SEIR, nil
	default:
		return 0, fmt.Errorf("unknown model variant %q (want \"sir\" or \"seir\")", name)
	}
}

// Compartments returns the ordered compartment list for the variant.
func (v Variant) Compartments() []Compartment {
	if v == SEIR {
		return []Compartment{Susceptible, Exposed, Infectious, Recovered}
	}
	return []Compartment{Susceptible, Infectious, Recovered}
}

// Flow is a directed edge between two compartments.
type Flow struct {
	From Compartment
	To   Compartment
}

// FlowRate pairs a flow edge with its instantaneous rate under a given state.
type FlowRate struct {
	Flow Flow
	Rate float64
}

// Flows returns the directed flow edges of the variant, in a fixed order.
func (v Variant) Flows() []Flow {
	if v == SEIR {
		return []Flow{
			{From: Susceptible, To: Exposed},
			{From: Exposed, To: Infectious},
			{From: Infectious, To: Recovered},
		}
	}
	return []Flow{
		{From: Susceptible, To: Infectious},
		{From: Infectious, To: Recovered},
	}
}

// Rates returns the (edge, instantaneous rate) pairs for the current state
// at simulation time t. This is a pure query with no side effects; both the
// deterministic integrator and the stochastic simulator consult it so the
// two engines stay mechanically consistent.
//
// Rate expressions:
//
//	susceptible -> exposed|infectious: beta(t) * S * I / N
//	exposed -> infectious:             sigma * E   (SEIR only)
//	infectious -> recovered:           gamma * I
func (v Variant) Rates(s State, p Params, t float64) []FlowRate {
	transmission := p.Beta.BetaAt(t) * s.Susceptible * s.Infectious / p.N
	if v == SEIR {
		return []FlowRate{
			{Flow: Flow{From: Susceptible, To: Exposed}, Rate: transmission},
			{Flow: Flow{From: Exposed, To: Infectious}, Rate: p.Sigma * s.Exposed},
			{Flow: Flow{From: Infectious, To: Recovered}, Rate: p.Gamma * s.Infectious},
		}
	}
	return []FlowRate{
		{Flow: Flow{From: Susceptible, To: Infectious}, Rate: transmission},
		{Flow: Flow{From: Infectious, To: Recovered}, Rate: p.Gamma * s.Infectious},
	}
}
