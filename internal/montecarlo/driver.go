package montecarlo

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"dcf-valuation/internal/model"
	"dcf-valuation/internal/valuation"
)

// Params configures one Monte Carlo sensitivity run. The discount rate and
// terminal growth rate are sampled independently (not paired or correlated)
// from Normal(WACCMean, WACCStdev) and Normal(GrowthMean, GrowthStdev).
type Params struct {
	WACCMean    float64
	WACCStdev   float64
	GrowthMean  float64
	GrowthStdev float64

	Draws int
	Seed  int64
}

// Summary aggregates the surviving per-share values of a simulation run.
// Count is the number of draws that survived the usability filter (<= Draws).
// With zero survivors every statistic is 0; the run itself never fails.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Stdev  float64
	CILow  float64
	CIHigh float64

	// Values holds the surviving per-share values in draw order. Ownership
	// passes to the caller (e.g. for distribution plotting or CSV export).
	Values []float64
}

// Simulate runs the Monte Carlo sensitivity analysis: it samples rate pairs,
// values each usable pair with the DCF kernel against the fixed growth
// schedule, and aggregates the surviving per-share values.
//
// Draws where the clamped discount rate does not strictly exceed the clamped
// growth rate are discarded entirely; they contribute nothing to Count or to
// any statistic. Discarding (instead of clipping to a valid value, or
// resampling) is deliberate: across thousands of draws an unusable pair is
// expected, not exceptional, and erroring per draw would make large
// simulations impractical.
func Simulate(profile model.CompanyProfile, schedule model.GrowthSchedule, p Params) (Summary, error) {
	if err := profile.Validate(); err != nil {
		return Summary{}, fmt.Errorf("invalid company profile: %w", err)
	}
	if schedule.Years() != profile.ExplicitYears {
		return Summary{}, fmt.Errorf("growth schedule has %d years, profile expects %d", schedule.Years(), profile.ExplicitYears)
	}
	if p.Draws <= 0 {
		return Summary{}, fmt.Errorf("draws must be > 0, got %d", p.Draws)
	}

	sampler := NewSampler(p.Seed)
	waccs := sampler.NormalRates(p.WACCMean, p.WACCStdev, p.Draws)
	growths := sampler.NormalRates(p.GrowthMean, p.GrowthStdev, p.Draws)

	draws := make([]model.RateDraw, p.Draws)
	for i := range draws {
		draws[i] = model.RateDraw{DiscountRate: waccs[i], TerminalGrowth: growths[i]}
	}

	perShare := valueDraws(profile, schedule, draws)

	// Keep survivors in draw order.
	values := make([]float64, 0, len(draws))
	for i, d := range draws {
		if d.Usable() {
			values = append(values, perShare[i])
		}
	}
	return summarize(values), nil
}

// valueDraws values every usable draw, fanning out across CPUs. Each draw is
// independent, so workers share nothing but the read-only inputs and write
// disjoint slots of the result slice — output order equals draw order.
func valueDraws(profile model.CompanyProfile, schedule model.GrowthSchedule, draws []model.RateDraw) []float64 {
	perShare := make([]float64, len(draws))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(draws) {
		workers = len(draws)
	}

	var g errgroup.Group
	chunk := (len(draws) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(draws) {
			hi = len(draws)
		}
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if !draws[i].Usable() {
					continue
				}
				perShare[i] = valuation.ValueSampled(profile, draws[i], schedule).ValuePerShare
			}
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()
	return perShare
}
