package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/epidemic-sim/epidemic-sim/sim"
)

// openOutput resolves the --output flag: "-" means stdout. The returned
// cleanup closes file outputs and is a no-op for stdout.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" || path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

// writeTrajectoryCSV emits one trajectory as CSV with a time column and one
// column per compartment of the variant, the shape downstream plotting and
// report collaborators consume.
func writeTrajectoryCSV(w io.Writer, tr *sim.Trajectory) error {
	cw := csv.NewWriter(w)
	compartments := tr.Variant.Compartments()

	header := make([]string, 0, len(compartments)+1)
	header = append(header, "time")
	for _, c := range compartments {
		header = append(header, c.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for _, s := range tr.Samples {
		row[0] = formatCount(s.Time)
		for i, c := range compartments {
			row[i+1] = formatCount(s.State.Count(c))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeEnsembleCSV emits every run of an ensemble with a leading run column.
func writeEnsembleCSV(w io.Writer, trajectories []*sim.Trajectory) error {
	cw := csv.NewWriter(w)
	compartments := trajectories[0].Variant.Compartments()

	header := make([]string, 0, len(compartments)+2)
	header = append(header, "run", "time")
	for _, c := range compartments {
		header = append(header, c.String())
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for run, tr := range trajectories {
		row[0] = strconv.Itoa(run)
		for _, s := range tr.Samples {
			row[1] = formatCount(s.Time)
			for i, c := range compartments {
				row[i+2] = formatCount(s.State.Count(c))
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
