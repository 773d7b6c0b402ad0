package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epidemic-sim/epidemic-sim/sim"
)

var (
	// CLI flags shared across subcommands
	seed     int64  // Master seed for stochastic runs
	logLevel string // Log verbosity level

	// Model selection and parameters
	model            string  // Model variant name ("sir" or "seir")
	population       float64 // Total population size N
	initialExposed   float64 // Initial exposed count (SEIR)
	initialInfected  float64 // Initial infectious count
	initialRecovered float64 // Initial recovered count
	beta             float64 // Transmission rate
	gamma            float64 // Recovery rate
	sigma            float64 // Incubation rate (SEIR)

	// Intervention policy
	intervention     bool    // Enable the step-change transmission policy
	betaBefore       float64 // Transmission rate before the intervention
	betaAfter        float64 // Transmission rate after the intervention
	interventionTime float64 // Simulation time of the step change

	// Horizons and run control
	timesteps int     // Deterministic horizon (discrete steps)
	maxTime   float64 // Stochastic horizon (simulation time)
	runs      int     // Ensemble size

	// Scenario sources and output
	scenarioPath string // YAML scenario file (overrides model/parameter flags)
	presetName   string // Built-in preset name (overrides model/parameter flags)
	outputPath   string // CSV destination ("-" for stdout)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "episim",
	Short: "Compartmental epidemic simulator (deterministic and stochastic)",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildScenario resolves the effective scenario: a YAML file or built-in
// preset when named, otherwise one assembled from the parameter flags.
// Horizon, runs, and seed flags override file/preset values when set
// explicitly on the command line.
func buildScenario(cmd *cobra.Command) (*sim.Scenario, error) {
	var sc *sim.Scenario
	switch {
	case scenarioPath != "":
		loaded, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			return nil, err
		}
		sc = loaded
	case presetName != "":
		ctor, ok := sim.Presets[presetName]
		if !ok {
			logrus.Fatalf("Unknown preset %q; available: baseline, seir, distancing, early-lockdown, high-r0", presetName)
		}
		sc = ctor()
	default:
		sc = scenarioFromFlags()
	}

	if cmd.Flags().Changed("timesteps") {
		sc.Horizon.Timesteps = &timesteps
	}
	if cmd.Flags().Changed("max-time") {
		sc.Horizon.MaxTime = &maxTime
	}
	if cmd.Flags().Changed("runs") {
		sc.Runs = &runs
	}
	if cmd.Flags().Changed("seed") {
		sc.Seed = &seed
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// scenarioFromFlags assembles a Scenario from the parameter flags.
func scenarioFromFlags() *sim.Scenario {
	sc := &sim.Scenario{
		Name:       "cli",
		Model:      model,
		Population: &population,
		Initial: sim.InitialConfig{
			Exposed:   &initialExposed,
			Infected:  &initialInfected,
			Recovered: &initialRecovered,
		},
		Rates: sim.RatesConfig{
			Beta:  &beta,
			Gamma: &gamma,
			Sigma: &sigma,
		},
		Horizon: sim.HorizonConfig{Timesteps: &timesteps, MaxTime: &maxTime},
		Runs:    &runs,
		Seed:    &seed,
	}
	if intervention {
		sc.Intervene = &sim.InterventionSpec{
			BetaBefore: &betaBefore,
			BetaAfter:  &betaAfter,
			Time:       &interventionTime,
		}
	}
	return sc
}

// scenarioSeed resolves the master seed for stochastic commands.
func scenarioSeed(sc *sim.Scenario) int64 {
	if sc.Seed != nil {
		return *sc.Seed
	}
	return seed
}

// addScenarioFlags registers the model and parameter flags on a subcommand.
func addScenarioFlags(c *cobra.Command) {
	c.Flags().StringVar(&model, "model", "sir", "Model variant (sir, seir)")
	c.Flags().Float64Var(&population, "population", sim.DefaultPopulation, "Total population size N")
	c.Flags().Float64Var(&initialExposed, "initial-exposed", 0, "Initial exposed count (SEIR only)")
	c.Flags().Float64Var(&initialInfected, "initial-infected", sim.DefaultInitialInfected, "Initial infectious count")
	c.Flags().Float64Var(&initialRecovered, "initial-recovered", sim.DefaultInitialRecovered, "Initial recovered count")
	c.Flags().Float64Var(&beta, "beta", sim.DefaultBeta, "Transmission rate")
	c.Flags().Float64Var(&gamma, "gamma", sim.DefaultGamma, "Recovery rate")
	c.Flags().Float64Var(&sigma, "sigma", sim.DefaultSigma, "Incubation rate (SEIR only)")
	c.Flags().BoolVar(&intervention, "intervention", false, "Apply a step change in transmission rate")
	c.Flags().Float64Var(&betaBefore, "beta-before", sim.DefaultBetaBefore, "Transmission rate before the intervention")
	c.Flags().Float64Var(&betaAfter, "beta-after", sim.DefaultBetaAfter, "Transmission rate after the intervention")
	c.Flags().Float64Var(&interventionTime, "intervention-time", sim.DefaultInterventionTime, "Time of the intervention step")
	c.Flags().IntVar(&timesteps, "timesteps", sim.DefaultTimesteps, "Deterministic horizon in unit steps")
	c.Flags().Float64Var(&maxTime, "max-time", float64(sim.DefaultTimesteps), "Stochastic horizon in simulation time")
	c.Flags().IntVar(&runs, "runs", 100, "Number of ensemble realizations")
	c.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides parameter flags)")
	c.Flags().StringVar(&presetName, "preset", "", "Built-in scenario preset (overrides parameter flags)")
	c.Flags().StringVar(&outputPath, "output", "-", "CSV output path (\"-\" for stdout)")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Master seed for stochastic runs")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	for _, c := range []*cobra.Command{runCmd, stochasticCmd, ensembleCmd, reportCmd} {
		addScenarioFlags(c)
		rootCmd.AddCommand(c)
	}
}
