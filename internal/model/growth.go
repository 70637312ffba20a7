package model

import "fmt"

// GrowthSchedule is the ordered series of annual FCF growth rates for the
// explicit forecast years. Rates are fractions (0.08 = 8%), one per year.
type GrowthSchedule []float64

// TwoStageSchedule builds the canonical two-stage schedule: the stage-1 rate
// for the first two years, stepping down to the stage-2 rate for years 3..T.
func TwoStageSchedule(initialGrowth, stepDownGrowth float64, explicitYears int) (GrowthSchedule, error) {
	if explicitYears < MinExplicitYears || explicitYears > MaxExplicitYears {
		return nil, fmt.Errorf("explicitYears must be in [%d, %d]", MinExplicitYears, MaxExplicitYears)
	}
	s := make(GrowthSchedule, explicitYears)
	for t := range s {
		if t < 2 {
			s[t] = initialGrowth
		} else {
			s[t] = stepDownGrowth
		}
	}
	return s, nil
}

// Years is the number of explicit years the schedule covers.
func (s GrowthSchedule) Years() int { return len(s) }
