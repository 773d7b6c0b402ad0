package sim

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the outbreak statistics downstream reports are built from.
type Summary struct {
	PeakInfectious float64 // maximum infectious count over the run
	PeakTime       float64 // time of the first sample attaining the peak
	FinalRecovered float64 // recovered count at the last sample
	AttackRate     float64 // final recovered as a fraction of the population
}

// Summarize computes the Summary of one trajectory.
func Summarize(tr *Trajectory) Summary {
	peak := tr.Samples[0].State.Infectious
	peakTime := tr.Samples[0].Time
	for _, s := range tr.Samples[1:] {
		if s.State.Infectious > peak {
			peak = s.State.Infectious
			peakTime = s.Time
		}
	}
	final := tr.Final().State
	var attackRate float64
	if n := final.Sum(); n > 0 {
		attackRate = final.Recovered / n
	}
	return Summary{
		PeakInfectious: peak,
		PeakTime:       peakTime,
		FinalRecovered: final.Recovered,
		AttackRate:     attackRate,
	}
}

// PeakReduction returns the percentage reduction in peak infectious count
// of other relative to base. Zero if base never had a peak.
func PeakReduction(base, other Summary) float64 {
	if base.PeakInfectious == 0 {
		return 0
	}
	return (base.PeakInfectious - other.PeakInfectious) / base.PeakInfectious * 100
}

// EnsembleSummary aggregates per-run outbreak statistics across an ensemble.
type EnsembleSummary struct {
	Runs int

	MeanPeak   float64
	StdPeak    float64
	MedianPeak float64
	P90Peak    float64

	MeanPeakTime float64

	MeanFinalRecovered float64
	StdFinalRecovered  float64
}

// SummarizeEnsemble computes distribution statistics of the per-run peaks
// and final sizes. The ensemble must be non-empty.
func SummarizeEnsemble(trajectories []*Trajectory) EnsembleSummary {
	peaks := make([]float64, len(trajectories))
	peakTimes := make([]float64, len(trajectories))
	finals := make([]float64, len(trajectories))
	for i, tr := range trajectories {
		s := Summarize(tr)
		peaks[i] = s.PeakInfectious
		peakTimes[i] = s.PeakTime
		finals[i] = s.FinalRecovered
	}

	sorted := append([]float64(nil), peaks...)
	sort.Float64s(sorted)

	return EnsembleSummary{
		Runs:               len(trajectories),
		MeanPeak:           stat.Mean(peaks, nil),
		StdPeak:            stat.StdDev(peaks, nil),
		MedianPeak:         stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90Peak:            stat.Quantile(0.9, stat.Empirical, sorted, nil),
		MeanPeakTime:       stat.Mean(peakTimes, nil),
		MeanFinalRecovered: stat.Mean(finals, nil),
		StdFinalRecovered:  stat.StdDev(finals, nil),
	}
}
