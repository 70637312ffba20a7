package montecarlo

import (
	"math"
	"sort"
)

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// populationStdev is the population (not sample) standard deviation.
func populationStdev(vals []float64, mu float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	ss := 0.0
	for _, v := range vals {
		d := v - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)))
}

// percentileSorted returns the q-th quantile (q in [0,1]) of an ascending
// slice, with linear interpolation between order statistics.
func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// summarize computes the aggregate statistics over the surviving per-share
// values. An empty input yields the all-zero degenerate summary.
func summarize(values []float64) Summary {
	s := Summary{
		Count:  len(values),
		Values: values,
	}
	if len(values) == 0 {
		return s
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s.Mean = mean(values)
	s.Stdev = populationStdev(values, s.Mean)
	s.Median = percentileSorted(sorted, 0.50)
	s.CILow = percentileSorted(sorted, 0.025)
	s.CIHigh = percentileSorted(sorted, 0.975)
	return s
}
