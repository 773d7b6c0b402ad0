package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant_KnownNames(t *testing.T) {
	v, err := ParseVariant("sir")
	require.NoError(t, err)
	assert.Equal(t, SIR, v)

	v, err = ParseVariant("seir")
	require.NoError(t, err)
	assert.Equal(t, SEIR, v)
}

func TestParseVariant_UnknownName_Errors(t *testing.T) {
	_, err := ParseVariant("sirs")
	assert.Error(t, err)
}

func TestVariant_Compartments_Ordered(t *testing.T) {
	assert.Equal(t, []Compartment{Susceptible, Infectious, Recovered}, SIR.Compartments())
	assert.Equal(t, []Compartment{Susceptible, Exposed, Infectious, Recovered}, SEIR.Compartments())
}

func TestVariant_Flows(t *testing.T) {
	assert.Equal(t, []Flow{
		{From: Susceptible, To: Infectious},
		{From: Infectious, To: Recovered},
	}, SIR.Flows())

	assert.Equal(t, []Flow{
		{From: Susceptible, To: Exposed},
		{From: Exposed, To: Infectious},
		{From: Infectious, To: Recovered},
	}, SEIR.Flows())
}

func TestRates_SIR_Expressions(t *testing.T) {
	// GIVEN the default parameters and the initial state S=999, I=1
	p := DefaultParams()
	s := State{Susceptible: 999, Infectious: 1}

	// WHEN rates are queried
	rates := SIR.Rates(s, p, 0)

	// THEN transmission is beta*S*I/N and recovery is gamma*I
	require.Len(t, rates, 2)
	assert.Equal(t, Flow{From: Susceptible, To: Infectious}, rates[0].Flow)
	assert.InDelta(t, 0.3*999*1/1000, rates[0].Rate, 1e-12)
	assert.Equal(t, Flow{From: Infectious, To: Recovered}, rates[1].Flow)
	assert.InDelta(t, 0.1*1, rates[1].Rate, 1e-12)
}

func TestRates_SEIR_Expressions(t *testing.T) {
	p := DefaultParams()
	s := State{Susceptible: 990, Exposed: 5, Infectious: 4, Recovered: 1}

	rates := SEIR.Rates(s, p, 0)

	require.Len(t, rates, 3)
	assert.Equal(t, Flow{From: Susceptible, To: Exposed}, rates[0].Flow)
	assert.InDelta(t, 0.3*990*4/1000, rates[0].Rate, 1e-12)
	assert.Equal(t, Flow{From: Exposed, To: Infectious}, rates[1].Flow)
	assert.InDelta(t, 0.2*5, rates[1].Rate, 1e-12)
	assert.Equal(t, Flow{From: Infectious, To: Recovered}, rates[2].Flow)
	assert.InDelta(t, 0.1*4, rates[2].Rate, 1e-12)
}

func TestRates_UsesPolicyAtQueryTime(t *testing.T) {
	// GIVEN a step policy that zeroes transmission at t=10
	p := DefaultParams()
	p.Beta = StepRate{Before: 0.3, After: 0, InterventionTime: 10}
	s := State{Susceptible: 900, Infectious: 100}

	// THEN the transmission edge rate follows the policy at the queried time
	assert.Greater(t, SIR.Rates(s, p, 9)[0].Rate, 0.0)
	assert.Zero(t, SIR.Rates(s, p, 10)[0].Rate)
}

func TestRates_PureQuery_DoesNotMutateState(t *testing.T) {
	p := DefaultParams()
	s := State{Susceptible: 999, Infectious: 1}
	before := s

	SIR.Rates(s, p, 0)
	SIR.Rates(s, p, 50)

	assert.Equal(t, before, s)
}
