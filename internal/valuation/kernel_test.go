package valuation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"dcf-valuation/internal/model"
)

func referenceProfile(t *testing.T) (model.CompanyProfile, model.GrowthSchedule) {
	t.Helper()
	profile, err := model.NewCompanyProfile("Reference Co", 150_000_000, 20_000_000, 25_000_000, 5)
	require.NoError(t, err)
	schedule, err := model.TwoStageSchedule(0.20, 0.08, 5)
	require.NoError(t, err)
	return profile, schedule
}

// Regression baseline for the canonical scenario: FCF0=150M, net debt=20M,
// 25M shares, 5 years at 20%/20%/8%/8%/8%, WACC 10%, perpetuity growth 2.5%.
func TestValueReferenceScenario(t *testing.T) {
	profile, schedule := referenceProfile(t)
	draw := model.RateDraw{DiscountRate: 0.10, TerminalGrowth: 0.025}

	res, err := Value(profile, draw, schedule)
	require.NoError(t, err)

	require.InDelta(t, 858446847.2719821, res.PVExplicitFCFs, 1e-3)
	require.InDelta(t, 2309001387.1382346, res.PVTerminalValue, 1e-3)
	require.InDelta(t, 3167448234.410217, res.EnterpriseValue, 1e-3)
	require.InDelta(t, 3147448234.410217, res.EquityValue, 1e-3)
	require.InDelta(t, 125.89792937640867, res.ValuePerShare, 1e-6)
	require.Equal(t, draw, res.Draw)
}

func TestProjectFCFSeries(t *testing.T) {
	profile, schedule := referenceProfile(t)

	series := ProjectFCFSeries(profile, schedule)
	require.Len(t, series, 6)

	want := []float64{150e6, 180e6, 216e6, 233.28e6, 251.9424e6, 272.097792e6}
	for year, w := range want {
		require.InDelta(t, w, series[year], 1e-3, "year %d", year)
	}
}

// The discounted terminal value must match the Gordon Growth closed form
// applied to the final projected FCF.
func TestTerminalValueMatchesGordonGrowth(t *testing.T) {
	profile, schedule := referenceProfile(t)

	for _, draw := range []model.RateDraw{
		{DiscountRate: 0.08, TerminalGrowth: 0.02},
		{DiscountRate: 0.10, TerminalGrowth: 0.025},
		{DiscountRate: 0.15, TerminalGrowth: 0.04},
	} {
		res, err := Value(profile, draw, schedule)
		require.NoError(t, err)

		series := ProjectFCFSeries(profile, schedule)
		fcfLast := series[len(series)-1]
		want := fcfLast * (1 + draw.TerminalGrowth) /
			(draw.DiscountRate - draw.TerminalGrowth) /
			math.Pow(1+draw.DiscountRate, float64(profile.ExplicitYears))

		require.InEpsilon(t, want, res.PVTerminalValue, 1e-9, "draw %+v", draw)
	}
}

func TestValuePerShareMonotonicInDiscountRate(t *testing.T) {
	profile, schedule := referenceProfile(t)

	prev := math.Inf(1)
	for _, r := range []float64{0.06, 0.08, 0.10, 0.12, 0.15, 0.20} {
		res, err := Value(profile, model.RateDraw{DiscountRate: r, TerminalGrowth: 0.025}, schedule)
		require.NoError(t, err)
		require.Less(t, res.ValuePerShare, prev, "value must decrease as discount rate rises (r=%.2f)", r)
		prev = res.ValuePerShare
	}
}

func TestValuePerShareMonotonicInTerminalGrowth(t *testing.T) {
	profile, schedule := referenceProfile(t)

	prev := math.Inf(-1)
	for _, g := range []float64{0.01, 0.02, 0.03, 0.04, 0.05} {
		res, err := Value(profile, model.RateDraw{DiscountRate: 0.10, TerminalGrowth: g}, schedule)
		require.NoError(t, err)
		require.Greater(t, res.ValuePerShare, prev, "value must increase as terminal growth rises (g=%.2f)", g)
		prev = res.ValuePerShare
	}
}

func TestValueIsPure(t *testing.T) {
	profile, schedule := referenceProfile(t)
	draw := model.RateDraw{DiscountRate: 0.10, TerminalGrowth: 0.025}

	first, err := Value(profile, draw, schedule)
	require.NoError(t, err)
	second, err := Value(profile, draw, schedule)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestValueRejectsBadInputs(t *testing.T) {
	profile, schedule := referenceProfile(t)

	// Discount rate at or below terminal growth is surfaced, not zeroed.
	_, err := Value(profile, model.RateDraw{DiscountRate: 0.02, TerminalGrowth: 0.025}, schedule)
	require.Error(t, err)
	_, err = Value(profile, model.RateDraw{DiscountRate: 0.025, TerminalGrowth: 0.025}, schedule)
	require.Error(t, err)

	// Schedule length must match the explicit horizon.
	short, err := model.TwoStageSchedule(0.20, 0.08, 4)
	require.NoError(t, err)
	_, err = Value(profile, model.RateDraw{DiscountRate: 0.10, TerminalGrowth: 0.025}, short)
	require.Error(t, err)

	// Non-positive shares outstanding fails profile validation.
	bad := profile
	bad.SharesOutstanding = 0
	_, err = Value(bad, model.RateDraw{DiscountRate: 0.10, TerminalGrowth: 0.025}, schedule)
	require.Error(t, err)
}

// The bulk-sampling path returns a sentinel instead of erroring so callers
// can filter unusable draws cheaply.
func TestValueSampledSentinelOnUnusableDraw(t *testing.T) {
	profile, schedule := referenceProfile(t)

	res := ValueSampled(profile, model.RateDraw{DiscountRate: 0.02, TerminalGrowth: 0.03}, schedule)
	require.Zero(t, res.PVTerminalValue)
	require.Equal(t, res.PVExplicitFCFs, res.EnterpriseValue)
}
