package valuation

import (
	"fmt"
	"math"

	"dcf-valuation/internal/model"
)

// Result holds the outputs of a single discounted cash flow valuation.
// A Result is produced fresh per call and never mutated afterwards.
type Result struct {
	EnterpriseValue float64
	EquityValue     float64
	ValuePerShare   float64

	PVExplicitFCFs  float64
	PVTerminalValue float64

	// Draw records the rate pair that produced this result.
	Draw model.RateDraw
}

// Value runs a two-stage DCF for one rate draw and returns the valuation.
//
// This is the deterministic entry point: an unusable draw (discount rate not
// strictly above terminal growth) is a user-input error and is surfaced,
// unlike the bulk-sampling path which silently discards such draws.
func Value(profile model.CompanyProfile, draw model.RateDraw, schedule model.GrowthSchedule) (Result, error) {
	if err := profile.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid company profile: %w", err)
	}
	if schedule.Years() != profile.ExplicitYears {
		return Result{}, fmt.Errorf("growth schedule has %d years, profile expects %d", schedule.Years(), profile.ExplicitYears)
	}
	if !draw.Usable() {
		return Result{}, fmt.Errorf("discount rate %.4f must exceed terminal growth %.4f", draw.DiscountRate, draw.TerminalGrowth)
	}
	return valueDraw(profile, draw, schedule), nil
}

// ValueSampled is the bulk-sampling variant of Value. It skips per-call
// validation and, instead of erroring on an unusable draw, returns the
// sentinel result with a zero terminal value so callers can filter it.
// Callers guarantee the profile is valid and the schedule covers T years.
func ValueSampled(profile model.CompanyProfile, draw model.RateDraw, schedule model.GrowthSchedule) Result {
	return valueDraw(profile, draw, schedule)
}

// valueDraw is the unchecked kernel shared by the deterministic and Monte
// Carlo paths. Preconditions (valid profile, schedule length == T) are the
// caller's responsibility. An unusable draw yields a zero terminal value
// rather than an error so bulk callers can filter cheaply.
func valueDraw(profile model.CompanyProfile, draw model.RateDraw, schedule model.GrowthSchedule) Result {
	pvExplicit, fcfLastYear := projectAndDiscount(profile.InitialFCF, draw.DiscountRate, schedule)

	pvTerminal := 0.0
	if draw.Usable() {
		// Gordon Growth: TV_T = FCF_{T+1} / (r - g), discounted back T years.
		fcfNext := fcfLastYear * (1 + draw.TerminalGrowth)
		tv := fcfNext / (draw.DiscountRate - draw.TerminalGrowth)
		pvTerminal = tv / math.Pow(1+draw.DiscountRate, float64(schedule.Years()))
	}

	ev := pvExplicit + pvTerminal
	equity := ev - profile.NetDebt

	return Result{
		EnterpriseValue: ev,
		EquityValue:     equity,
		ValuePerShare:   equity / profile.SharesOutstanding,
		PVExplicitFCFs:  pvExplicit,
		PVTerminalValue: pvTerminal,
		Draw:            draw,
	}
}

// projectAndDiscount folds the growth schedule into the present value of the
// explicit cash flows and the final undiscounted FCF after year T.
func projectAndDiscount(initialFCF, discountRate float64, schedule model.GrowthSchedule) (pvExplicit, fcfLastYear float64) {
	fcf := initialFCF
	pv := 0.0
	for t, g := range schedule {
		fcf *= 1 + g
		pv += fcf / math.Pow(1+discountRate, float64(t+1))
	}
	return pv, fcf
}

// ProjectFCFSeries returns the undiscounted projected FCF series including
// year 0, for reporting and plotting. Length is T+1.
func ProjectFCFSeries(profile model.CompanyProfile, schedule model.GrowthSchedule) []float64 {
	series := make([]float64, 0, schedule.Years()+1)
	fcf := profile.InitialFCF
	series = append(series, fcf)
	for _, g := range schedule {
		fcf *= 1 + g
		series = append(series, fcf)
	}
	return series
}
