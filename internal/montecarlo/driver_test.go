package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dcf-valuation/internal/model"
	"dcf-valuation/internal/valuation"
)

func testProfile(t *testing.T) (model.CompanyProfile, model.GrowthSchedule) {
	t.Helper()
	profile, err := model.NewCompanyProfile("Test Co", 150_000_000, 20_000_000, 25_000_000, 5)
	require.NoError(t, err)
	schedule, err := model.TwoStageSchedule(0.20, 0.08, 5)
	require.NoError(t, err)
	return profile, schedule
}

// With zero volatility every draw collapses to the means, so the simulated
// mean must equal the deterministic per-share value.
func TestSimulateZeroStdevMatchesDeterministic(t *testing.T) {
	profile, schedule := testProfile(t)

	det, err := valuation.Value(profile, model.RateDraw{DiscountRate: 0.10, TerminalGrowth: 0.025}, schedule)
	require.NoError(t, err)

	summary, err := Simulate(profile, schedule, Params{
		WACCMean:   0.10,
		GrowthMean: 0.025,
		Draws:      500,
		Seed:       1,
	})
	require.NoError(t, err)

	require.Equal(t, 500, summary.Count)
	require.InDelta(t, det.ValuePerShare, summary.Mean, 1e-9)
	require.InDelta(t, det.ValuePerShare, summary.Median, 1e-9)
	require.InDelta(t, 0, summary.Stdev, 1e-9)
	require.InDelta(t, summary.CILow, summary.CIHigh, 1e-9)
}

// A WACC mean far below the growth mean with no volatility leaves nothing to
// aggregate: the degenerate all-zero summary, not an error.
func TestSimulateZeroSurvivors(t *testing.T) {
	profile, schedule := testProfile(t)

	summary, err := Simulate(profile, schedule, Params{
		WACCMean:   0.02,
		GrowthMean: 0.04,
		Draws:      1000,
		Seed:       1,
	})
	require.NoError(t, err)

	require.Zero(t, summary.Count)
	require.Zero(t, summary.Mean)
	require.Zero(t, summary.Median)
	require.Zero(t, summary.Stdev)
	require.Zero(t, summary.CILow)
	require.Zero(t, summary.CIHigh)
	require.Empty(t, summary.Values)
}

// Overlapping distributions discard some draws and keep others. Discarded
// draws must not be counted as zero-valued results.
func TestSimulateDiscardsInvalidDraws(t *testing.T) {
	profile, schedule := testProfile(t)

	summary, err := Simulate(profile, schedule, Params{
		WACCMean:    0.035,
		WACCStdev:   0.02,
		GrowthMean:  0.03,
		GrowthStdev: 0.01,
		Draws:       2000,
		Seed:        3,
	})
	require.NoError(t, err)

	require.Greater(t, summary.Count, 0)
	require.Less(t, summary.Count, 2000)
	require.Len(t, summary.Values, summary.Count)
	for i, v := range summary.Values {
		require.Greater(t, v, 0.0, "surviving value[%d] must come from a real valuation", i)
	}
}

func TestSimulateSummaryInvariants(t *testing.T) {
	profile, schedule := testProfile(t)

	summary, err := Simulate(profile, schedule, Params{
		WACCMean:    0.10,
		WACCStdev:   0.01,
		GrowthMean:  0.025,
		GrowthStdev: 0.005,
		Draws:       5000,
		Seed:        11,
	})
	require.NoError(t, err)

	require.LessOrEqual(t, summary.Count, 5000)
	require.Greater(t, summary.Count, 0)
	require.LessOrEqual(t, summary.CILow, summary.Median)
	require.LessOrEqual(t, summary.Median, summary.CIHigh)
	require.Greater(t, summary.Stdev, 0.0)
}

func TestSimulateReproducibleBySeed(t *testing.T) {
	profile, schedule := testProfile(t)

	p := Params{
		WACCMean:    0.10,
		WACCStdev:   0.01,
		GrowthMean:  0.025,
		GrowthStdev: 0.005,
		Draws:       1000,
		Seed:        99,
	}
	a, err := Simulate(profile, schedule, p)
	require.NoError(t, err)
	b, err := Simulate(profile, schedule, p)
	require.NoError(t, err)

	require.Equal(t, a.Count, b.Count)
	require.Equal(t, a.Mean, b.Mean)
	require.Equal(t, a.Values, b.Values)
}

func TestSimulateRejectsStructuralErrors(t *testing.T) {
	profile, schedule := testProfile(t)

	_, err := Simulate(profile, schedule, Params{WACCMean: 0.10, GrowthMean: 0.025, Draws: 0})
	require.Error(t, err)

	short, err := model.TwoStageSchedule(0.20, 0.08, 4)
	require.NoError(t, err)
	_, err = Simulate(profile, short, Params{WACCMean: 0.10, GrowthMean: 0.025, Draws: 10})
	require.Error(t, err)
}
