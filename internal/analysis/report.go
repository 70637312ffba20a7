package analysis

import (
	"dcf-valuation/internal/montecarlo"
	"dcf-valuation/internal/valuation"
)

// Report is the flat reporting record the presentation layer consumes. It
// merges the deterministic base case with the Monte Carlo aggregates; field
// selection only, no computation beyond the risk rating.
type Report struct {
	DeterministicValue float64

	MCMean   float64
	MCMedian float64
	MCStdev  float64
	MCCILow  float64
	MCCIHigh float64
	MCCount  int

	Risk RiskRating
}

// RiskRating classifies valuation uncertainty by the coefficient of
// variation of the simulated per-share values.
type RiskRating string

const (
	RiskLow           RiskRating = "LOW"
	RiskModerate      RiskRating = "MODERATE"
	RiskHigh          RiskRating = "HIGH"
	RiskNotApplicable RiskRating = "N/A"
)

// RateRisk maps stdev/mean (coefficient of variation) to a rating band:
// <= 0.15 low, <= 0.30 moderate, above that high. A zero mean carries no
// meaningful CV and rates as not applicable.
func RateRisk(mean, stdev float64) RiskRating {
	if mean == 0 {
		return RiskNotApplicable
	}
	cv := stdev / mean
	switch {
	case cv <= 0.15:
		return RiskLow
	case cv <= 0.30:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// BuildReport merges one deterministic valuation and one simulation summary
// into the reporting record.
func BuildReport(det valuation.Result, mc montecarlo.Summary) Report {
	return Report{
		DeterministicValue: det.ValuePerShare,
		MCMean:             mc.Mean,
		MCMedian:           mc.Median,
		MCStdev:            mc.Stdev,
		MCCILow:            mc.CILow,
		MCCIHigh:           mc.CIHigh,
		MCCount:            mc.Count,
		Risk:               RateRisk(mc.Mean, mc.Stdev),
	}
}
