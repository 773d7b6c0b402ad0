package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epidemic-sim/epidemic-sim/sim"
)

// runCmd executes the deterministic integrator and emits the trajectory.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the deterministic forward-Euler model",
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := buildScenario(cmd)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		variant, _ := sc.Variant()
		params, _ := sc.Params()
		initial, _ := sc.InitialState()

		logrus.Infof("Starting deterministic %s run: N=%.0f, timesteps=%d",
			variant, params.N, sc.Timesteps())

		traj, err := sim.Integrate(variant, params, initial, sc.Timesteps())
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

		s := sim.Summarize(traj)
		logrus.Infof("Peak infectious %.0f at t=%.0f, final recovered %.0f",
			s.PeakInfectious, s.PeakTime, s.FinalRecovered)
	},
}
