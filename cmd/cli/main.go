package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dcf-valuation/internal/analysis"
	"dcf-valuation/internal/config"
	"dcf-valuation/internal/model"
	"dcf-valuation/internal/montecarlo"
	"dcf-valuation/internal/reporting"
	"dcf-valuation/internal/valuation"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "value":
		cmdValue(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli value --config examples/config.yaml --out results/fcf_series.csv")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/simulation.csv --report results/report.md")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - value runs the deterministic base case and prints the projected FCF series")
	fmt.Println("  - simulate runs the Monte Carlo sensitivity and prints the summary statistics")
}

func cmdValue(args []string) {
	fs := flag.NewFlagSet("value", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional path to write the projected FCF series CSV")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, profile, schedule := loadInputs(*cfgPath)

	draw := model.RateDraw{DiscountRate: cfg.Scenario.WACC, TerminalGrowth: cfg.Scenario.TerminalGrowth}
	res, err := valuation.Value(profile, draw, schedule)
	if err != nil {
		fatal(err)
	}
	series := valuation.ProjectFCFSeries(profile, schedule)

	fmt.Printf("Company: %s\n", profile.Name)
	fmt.Printf("WACC=%.3f terminal growth=%.3f horizon=%d years\n\n", draw.DiscountRate, draw.TerminalGrowth, profile.ExplicitYears)
	for year, fcf := range series {
		fmt.Printf("  year %d  fcf=%16.2f\n", year, fcf)
	}
	fmt.Printf("\nPV explicit FCFs: %16.2f\n", res.PVExplicitFCFs)
	fmt.Printf("PV terminal value: %15.2f\n", res.PVTerminalValue)
	fmt.Printf("Enterprise value: %16.2f\n", res.EnterpriseValue)
	fmt.Printf("Equity value: %20.2f\n", res.EquityValue)
	fmt.Printf("Value per share: $%.2f\n", res.ValuePerShare)

	if *outPath != "" {
		mustWriteCSV(*outPath, func(p string) error { return reporting.WriteFCFSeriesCSV(p, series) })
	}
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional path to write simulated per-share values CSV")
	reportPath := fs.String("report", "", "Optional path to write the Markdown report")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, profile, schedule := loadInputs(*cfgPath)

	draw := model.RateDraw{DiscountRate: cfg.Scenario.WACC, TerminalGrowth: cfg.Scenario.TerminalGrowth}
	det, err := valuation.Value(profile, draw, schedule)
	if err != nil {
		fatal(err)
	}

	summary, err := montecarlo.Simulate(profile, schedule, montecarlo.Params{
		WACCMean:    cfg.Scenario.WACC,
		WACCStdev:   cfg.Simulation.WACCStdev,
		GrowthMean:  cfg.Scenario.TerminalGrowth,
		GrowthStdev: cfg.Simulation.GrowthStdev,
		Draws:       cfg.Simulation.Draws,
		Seed:        cfg.Simulation.Seed,
	})
	if err != nil {
		fatal(err)
	}
	report := analysis.BuildReport(det, summary)

	fmt.Printf("Company: %s\n", profile.Name)
	fmt.Printf("Deterministic value per share: $%.2f\n\n", report.DeterministicValue)
	fmt.Printf("Monte Carlo (%d of %d draws valid):\n", summary.Count, cfg.Simulation.Draws)
	fmt.Printf("  mean:   $%.2f\n", summary.Mean)
	fmt.Printf("  median: $%.2f\n", summary.Median)
	fmt.Printf("  stdev:  $%.2f\n", summary.Stdev)
	fmt.Printf("  95%% interval: $%.2f to $%.2f\n", summary.CILow, summary.CIHigh)
	fmt.Printf("  risk: %s\n", report.Risk)

	if *outPath != "" {
		mustWriteCSV(*outPath, func(p string) error { return reporting.WriteSimulationCSV(p, summary.Values) })
	}
	if *reportPath != "" {
		md := reporting.RenderMarkdown(report, reporting.Inputs{
			Profile:        profile,
			InitialGrowth:  cfg.Scenario.InitialGrowth,
			StepDownGrowth: cfg.Scenario.StepDownGrowth,
			WACCMean:       cfg.Scenario.WACC,
			WACCStdev:      cfg.Simulation.WACCStdev,
			GrowthMean:     cfg.Scenario.TerminalGrowth,
			GrowthStdev:    cfg.Simulation.GrowthStdev,
			Draws:          cfg.Simulation.Draws,
		}, time.Now())
		if err := os.MkdirAll(filepath.Dir(*reportPath), 0o755); err != nil {
			fatal(err)
		}
		if err := os.WriteFile(*reportPath, []byte(md), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote report: %s\n", *reportPath)
	}
}

func loadInputs(cfgPath string) (*config.Config, model.CompanyProfile, model.GrowthSchedule) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal(err)
	}
	profile, err := cfg.Company.ToProfile()
	if err != nil {
		fatal(err)
	}
	schedule, err := model.TwoStageSchedule(cfg.Scenario.InitialGrowth, cfg.Scenario.StepDownGrowth, profile.ExplicitYears)
	if err != nil {
		fatal(err)
	}
	return cfg, profile, schedule
}

func mustWriteCSV(path string, write func(string) error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fatal(err)
	}
	if err := write(path); err != nil {
		fatal(err)
	}
	fmt.Printf("\nWrote CSV: %s\n", path)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
