package main

import (
	"flag"
	"fmt"

	"dcf-valuation/internal/analysis"
	"dcf-valuation/internal/config"
	"dcf-valuation/internal/model"
	"dcf-valuation/internal/montecarlo"
	"dcf-valuation/internal/valuation"
)

// Demo:
// - Instantiate a mid-size example company
// - Run the deterministic base case and print the projected series
// - Run the Monte Carlo sensitivity and print the summary
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	draws := flag.Int("draws", 10000, "Number of Monte Carlo draws")
	seed := flag.Int64("seed", 42, "Random seed")
	flag.Parse()

	// Defaults simulate a mid-size company (can be overridden via --config).
	profile := model.CompanyProfile{
		Name:              "Example Mid-Cap Co",
		InitialFCF:        50_000_000,
		NetDebt:           20_000_000,
		SharesOutstanding: 10_000_000,
		ExplicitYears:     5,
	}
	scenario := config.ScenarioConfig{
		InitialGrowth:  0.15,
		StepDownGrowth: 0.08,
		WACC:           0.085,
		TerminalGrowth: 0.025,
	}
	sim := config.SimulationConfig{
		WACCStdev:   0.01,
		GrowthStdev: 0.005,
		Draws:       *draws,
		Seed:        *seed,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		profile, err = cfg.Company.ToProfile()
		if err != nil {
			panic(err)
		}
		scenario = cfg.Scenario
		sim = cfg.Simulation
	}

	schedule, err := model.TwoStageSchedule(scenario.InitialGrowth, scenario.StepDownGrowth, profile.ExplicitYears)
	if err != nil {
		panic(err)
	}

	draw := model.RateDraw{DiscountRate: scenario.WACC, TerminalGrowth: scenario.TerminalGrowth}
	det, err := valuation.Value(profile, draw, schedule)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s  (T=%d years, WACC=%.1f%%, g=%.1f%%)\n\n",
		profile.Name, profile.ExplicitYears, scenario.WACC*100, scenario.TerminalGrowth*100)

	for year, fcf := range valuation.ProjectFCFSeries(profile, schedule) {
		fmt.Printf("  year %d  fcf=%14.0f\n", year, fcf)
	}
	fmt.Printf("\nBase case value per share: $%.2f\n", det.ValuePerShare)
	fmt.Printf("  (EV=%.0f, equity=%.0f, PV explicit=%.0f, PV terminal=%.0f)\n\n",
		det.EnterpriseValue, det.EquityValue, det.PVExplicitFCFs, det.PVTerminalValue)

	summary, err := montecarlo.Simulate(profile, schedule, montecarlo.Params{
		WACCMean:    scenario.WACC,
		WACCStdev:   sim.WACCStdev,
		GrowthMean:  scenario.TerminalGrowth,
		GrowthStdev: sim.GrowthStdev,
		Draws:       sim.Draws,
		Seed:        sim.Seed,
	})
	if err != nil {
		panic(err)
	}
	report := analysis.BuildReport(det, summary)

	fmt.Printf("Monte Carlo sensitivity (%d scenarios, %d valid):\n", sim.Draws, summary.Count)
	fmt.Printf("  mean=$%.2f  median=$%.2f  stdev=$%.2f\n", summary.Mean, summary.Median, summary.Stdev)
	fmt.Printf("  95%% interval: $%.2f to $%.2f\n", summary.CILow, summary.CIHigh)
	fmt.Printf("  risk rating: %s\n", report.Risk)
}
