package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/epidemic-sim/epidemic-sim/sim"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
)

var seriesColors = map[sim.Compartment]asciigraph.AnsiColor{
	sim.Susceptible: asciigraph.Blue,
	sim.Exposed:     asciigraph.Yellow,
	sim.Infectious:  asciigraph.Red,
	sim.Recovered:   asciigraph.Green,
}

// reportCmd runs the scenario through both engines and prints a terminal
// report: deterministic summary, compartment chart, intervention
// comparison, and ensemble statistics.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print an outbreak report with summary statistics and charts",
	Run: func(cmd *cobra.Command, args []string) {
		sc, err := buildScenario(cmd)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		variant, _ := sc.Variant()
		params, _ := sc.Params()
		initial, _ := sc.InitialState()

		traj, err := sim.Integrate(variant, params, initial, sc.Timesteps())
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		summary := sim.Summarize(traj)

		name := sc.Name
		if name == "" {
			name = variant.String()
		}
		fmt.Println(titleStyle.Render(fmt.Sprintf("Outbreak report: %s", name)))
		fmt.Println()
		printStat("Peak infectious", "%.0f", summary.PeakInfectious)
		printStat("Time to peak", "%.0f days", summary.PeakTime)
		printStat("Final recovered (total infected)", "%.0f", summary.FinalRecovered)
		printStat("Attack rate", "%.1f%%", summary.AttackRate*100)

		// Against the no-intervention counterpart, the headline number of a
		// step-policy scenario is the peak reduction.
		if step, ok := params.Beta.(sim.StepRate); ok {
			baseParams := params
			baseParams.Beta = sim.ConstantRate{Beta: step.Before}
			baseTraj, err := sim.Integrate(variant, baseParams, initial, sc.Timesteps())
			if err != nil {
				logrus.Fatalf("Baseline simulation failed: %v", err)
			}
			reduction := sim.PeakReduction(sim.Summarize(baseTraj), summary)
			printStat("Peak reduction vs no intervention", "%.1f%%", reduction)
		}

		fmt.Println()
		fmt.Println(plotTrajectory(traj))
		fmt.Println(legend(variant))

		runCount := runs
		if sc.Runs != nil {
			runCount = *sc.Runs
		}
		if runCount > 1 {
			trajectories, err := sim.RunEnsemble(variant, params, initial, sc.MaxTime(), runCount, scenarioSeed(sc))
			if err != nil {
				logrus.Fatalf("Ensemble failed: %v", err)
			}
			es := sim.SummarizeEnsemble(trajectories)

			fmt.Println()
			fmt.Println(titleStyle.Render(fmt.Sprintf("Stochastic ensemble (%d runs)", es.Runs)))
			fmt.Println()
			printStat("Mean peak infectious", "%.1f ± %.1f", es.MeanPeak, es.StdPeak)
			printStat("Median peak infectious", "%.1f", es.MedianPeak)
			printStat("90th percentile peak", "%.1f", es.P90Peak)
			printStat("Mean time to peak", "%.1f days", es.MeanPeakTime)
			printStat("Mean final recovered", "%.1f ± %.1f", es.MeanFinalRecovered, es.StdFinalRecovered)
		}
	},
}

func printStat(label, format string, vals ...any) {
	fmt.Printf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-34s", label+":")),
		valueStyle.Render(fmt.Sprintf(format, vals...)))
}

// plotTrajectory renders the compartment curves as a terminal chart.
func plotTrajectory(tr *sim.Trajectory) string {
	compartments := tr.Variant.Compartments()
	series := make([][]float64, len(compartments))
	colors := make([]asciigraph.AnsiColor, len(compartments))
	for i, c := range compartments {
		series[i] = tr.Series(c)
		colors[i] = seriesColors[c]
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption("compartment counts over time"))
}

func legend(v sim.Variant) string {
	out := " "
	for _, c := range v.Compartments() {
		swatch := lipgloss.NewStyle().Foreground(legendColor(c)).Render("■")
		out += fmt.Sprintf(" %s %s", swatch, c)
	}
	return out
}

func legendColor(c sim.Compartment) lipgloss.Color {
	switch c {
	case sim.Susceptible:
		return lipgloss.Color("4")
	case sim.Exposed:
		return lipgloss.Color("3")
	case sim.Infectious:
		return lipgloss.Color("1")
	case sim.Recovered:
		return lipgloss.Color("2")
	default:
		return lipgloss.Color("7")
	}
}
