package cmd

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epidemic-sim/epidemic-sim/sim"
)

// stochasticCmd executes a single exact-event (SSA) realization.
var stochasticCmd = &cobra.Command{
	Use:   "stochastic",
	Short: "Run a single stochastic (Gillespie SSA) realization",
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := buildScenario(cmd)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		variant, _ := sc.Variant()
		params, _ := sc.Params()
		initial, _ := sc.InitialState()
		masterSeed := scenarioSeed(sc)

		logrus.Infof("Starting stochastic %s run: N=%.0f, maxTime=%.1f, seed=%d",
			variant, params.N, sc.MaxTime(), masterSeed)

		rng := rand.New(rand.NewSource(masterSeed))
		traj, err := sim.Simulate(variant, params, initial, sc.MaxTime(), rng)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		w, closeOut, err := openOutput(outputPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		defer func() {
			if closeErr := closeOut(); closeErr != nil {
				logrus.Fatalf("Error closing output: %v", closeErr)
			}
		}()
		if err := writeTrajectoryCSV(w, traj); err != nil {
			logrus.Fatalf("Error writing trajectory: %v", err)
		}

		logrus.Infof("Run complete: %d events, final state S=%.0f I=%.0f R=%.0f",
			traj.Len()-1, traj.Final().State.Susceptible,
			traj.Final().State.Infectious, traj.Final().State.Recovered)
	},
}

// ensembleCmd executes independent SSA realizations concurrently. With a
// single run it degrades to the bare-trajectory output shape of
// stochasticCmd, so callers scripting around one run see no ensemble
// framing.
var ensembleCmd = &cobra.Command{
	Use:   "ensemble",
	Short: "Run an ensemble of independent stochastic realizations",
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := buildScenario(cmd)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		variant, _ := sc.Variant()
		params, _ := sc.Params()
		initial, _ := sc.InitialState()
		masterSeed := scenarioSeed(sc)

		runCount := runs
		if sc.Runs != nil {
			runCount = *sc.Runs
		}

		logrus.Infof("Starting %d-run %s ensemble: N=%.0f, maxTime=%.1f, seed=%d",
			runCount, variant, params.N, sc.MaxTime(), masterSeed)

		trajectories, err := sim.RunEnsemble(variant, params, initial, sc.MaxTime(), runCount, masterSeed)
		if err != nil {
			logrus.Fatalf("Ensemble failed: %v", err)
		}

		w, closeOut, err := openOutput(outputPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		defer func() {
			if closeErr := closeOut(); closeErr != nil {
				logrus.Fatalf("Error closing output: %v", closeErr)
			}
		}()

		if runCount == 1 {
			if err := writeTrajectoryCSV(w, trajectories[0]); err != nil {
				logrus.Fatalf("Error writing trajectory: %v", err)
			}
			return
		}
		if err := writeEnsembleCSV(w, trajectories); err != nil {
			logrus.Fatalf("Error writing ensemble: %v", err)
		}

		es := sim.SummarizeEnsemble(trajectories)
		logrus.Infof("Ensemble complete: mean peak %.1f (std %.1f), mean final recovered %.1f",
			es.MeanPeak, es.StdPeak, es.MeanFinalRecovered)
	},
}
