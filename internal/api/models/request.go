package models

import (
	"errors"
	"fmt"
)

// ValuationRequest is the request body for a deterministic valuation run.
type ValuationRequest struct {
	Company  CompanyParams  `json:"company" binding:"required"`
	Scenario ScenarioParams `json:"scenario" binding:"required"`
}

// SimulationRequest is the request body for a Monte Carlo sensitivity run.
type SimulationRequest struct {
	Company    CompanyParams     `json:"company" binding:"required"`
	Scenario   ScenarioParams    `json:"scenario" binding:"required"`
	Simulation SimulationParams  `json:"simulation" binding:"required"`
	Options    SimulationOptions `json:"options,omitempty"`
}

// CompanyParams defines the company inputs.
type CompanyParams struct {
	Name              string  `json:"name,omitempty"`
	InitialFCF        float64 `json:"initial_fcf"`
	NetDebt           float64 `json:"net_debt"`
	SharesOutstanding float64 `json:"shares_outstanding"`
	ExplicitYears     int     `json:"explicit_years"`
}

// ScenarioParams defines the deterministic base-case rates (fractions).
type ScenarioParams struct {
	InitialGrowth  float64 `json:"initial_growth"`
	StepDownGrowth float64 `json:"step_down_growth"`
	WACC           float64 `json:"wacc"`
	TerminalGrowth float64 `json:"terminal_growth"`
}

// SimulationParams defines the Monte Carlo distribution parameters. The WACC
// and terminal growth means come from the scenario block.
type SimulationParams struct {
	WACCStdev   float64 `json:"wacc_stdev"`
	GrowthStdev float64 `json:"growth_stdev"`
	Draws       int     `json:"draws"`
	Seed        int64   `json:"seed,omitempty"`
}

// SimulationOptions contains optional simulation parameters.
type SimulationOptions struct {
	// IncludeValues returns the full per-share value sequence for plotting.
	IncludeValues bool `json:"include_values,omitempty"`
}

// Input widget ranges mirrored from the UI contract: requests outside these
// bounds are rejected before they reach the valuation core.
const (
	maxStageOneGrowth = 0.25
	maxStageTwoGrowth = 0.15
	minWACC           = 0.03
	maxWACC           = 0.20
	minTerminalGrowth = 0.01
	maxTerminalGrowth = 0.05
	maxRateStdev      = 0.03
	minDraws          = 1
	maxDraws          = 50000
)

// Validate checks the scenario rates against the documented input ranges.
// Structural company validation happens in the model constructor.
func (s ScenarioParams) Validate() error {
	if s.InitialGrowth < 0 || s.InitialGrowth > maxStageOneGrowth {
		return fmt.Errorf("initial_growth must be in [0, %.2f]", maxStageOneGrowth)
	}
	if s.StepDownGrowth < 0 || s.StepDownGrowth > maxStageTwoGrowth {
		return fmt.Errorf("step_down_growth must be in [0, %.2f]", maxStageTwoGrowth)
	}
	if s.WACC < minWACC || s.WACC > maxWACC {
		return fmt.Errorf("wacc must be in [%.2f, %.2f]", minWACC, maxWACC)
	}
	if s.TerminalGrowth < minTerminalGrowth || s.TerminalGrowth > maxTerminalGrowth {
		return fmt.Errorf("terminal_growth must be in [%.2f, %.2f]", minTerminalGrowth, maxTerminalGrowth)
	}
	return nil
}

// Validate checks the Monte Carlo parameters.
func (s SimulationParams) Validate() error {
	if s.WACCStdev < 0 || s.WACCStdev > maxRateStdev {
		return fmt.Errorf("wacc_stdev must be in [0, %.2f]", maxRateStdev)
	}
	if s.GrowthStdev < 0 || s.GrowthStdev > maxRateStdev {
		return fmt.Errorf("growth_stdev must be in [0, %.2f]", maxRateStdev)
	}
	if s.Draws < minDraws || s.Draws > maxDraws {
		return fmt.Errorf("draws must be in [%d, %d]", minDraws, maxDraws)
	}
	if s.Seed < 0 {
		return errors.New("seed must be >= 0")
	}
	return nil
}
