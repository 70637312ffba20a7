package handlers

import (
	"net/http"

	"dcf-valuation/internal/analysis"
	"dcf-valuation/internal/api/models"
	"dcf-valuation/internal/model"
	"dcf-valuation/internal/montecarlo"
	"dcf-valuation/internal/valuation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ValuationHandler handles valuation-related requests
type ValuationHandler struct{}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler() *ValuationHandler {
	return &ValuationHandler{}
}

// RunValuation handles POST /api/v1/valuation
func (h *ValuationHandler) RunValuation(c *gin.Context) {
	var req models.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	profile, schedule, ok := buildInputs(c, req.Company, req.Scenario)
	if !ok {
		return
	}

	draw := model.RateDraw{DiscountRate: req.Scenario.WACC, TerminalGrowth: req.Scenario.TerminalGrowth}
	res, err := valuation.Value(profile, draw, schedule)
	if err != nil {
		// A single bad deterministic input is a user error worth surfacing.
		respondError(c, http.StatusBadRequest, "INVALID_INPUTS", "check your inputs: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ValuationResponse{
		ID:            uuid.NewString(),
		Status:        "completed",
		Valuation:     toValuationSummary(res),
		ProjectedFCFs: valuation.ProjectFCFSeries(profile, schedule),
	})
}

// RunSimulation handles POST /api/v1/valuation/simulate
func (h *ValuationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if err := req.Simulation.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_SIMULATION", err.Error())
		return
	}

	profile, schedule, ok := buildInputs(c, req.Company, req.Scenario)
	if !ok {
		return
	}

	draw := model.RateDraw{DiscountRate: req.Scenario.WACC, TerminalGrowth: req.Scenario.TerminalGrowth}
	det, err := valuation.Value(profile, draw, schedule)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_INPUTS", "check your inputs: "+err.Error())
		return
	}

	summary, err := montecarlo.Simulate(profile, schedule, montecarlo.Params{
		WACCMean:    req.Scenario.WACC,
		WACCStdev:   req.Simulation.WACCStdev,
		GrowthMean:  req.Scenario.TerminalGrowth,
		GrowthStdev: req.Simulation.GrowthStdev,
		Draws:       req.Simulation.Draws,
		Seed:        req.Simulation.Seed,
	})
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_INPUTS", "check your inputs: "+err.Error())
		return
	}

	report := analysis.BuildReport(det, summary)

	resp := models.SimulationResponse{
		ID:            uuid.NewString(),
		Status:        "completed",
		Deterministic: toValuationSummary(det),
		Simulation: models.SimulationSummary{
			Count:  report.MCCount,
			Draws:  req.Simulation.Draws,
			Mean:   report.MCMean,
			Median: report.MCMedian,
			Stdev:  report.MCStdev,
			CILow:  report.MCCILow,
			CIHigh: report.MCCIHigh,
			Risk:   string(report.Risk),
		},
	}
	if req.Options.IncludeValues {
		resp.Values = summary.Values
	}
	c.JSON(http.StatusOK, resp)
}

// buildInputs validates the request blocks and constructs the profile and
// schedule. On failure it writes the error response and returns ok=false.
func buildInputs(c *gin.Context, company models.CompanyParams, scenario models.ScenarioParams) (model.CompanyProfile, model.GrowthSchedule, bool) {
	if err := scenario.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_SCENARIO", err.Error())
		return model.CompanyProfile{}, nil, false
	}
	profile, err := model.NewCompanyProfile(company.Name, company.InitialFCF, company.NetDebt, company.SharesOutstanding, company.ExplicitYears)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_COMPANY", err.Error())
		return model.CompanyProfile{}, nil, false
	}
	schedule, err := model.TwoStageSchedule(scenario.InitialGrowth, scenario.StepDownGrowth, profile.ExplicitYears)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_SCENARIO", err.Error())
		return model.CompanyProfile{}, nil, false
	}
	return profile, schedule, true
}

func toValuationSummary(res valuation.Result) models.ValuationSummary {
	return models.ValuationSummary{
		EnterpriseValue: res.EnterpriseValue,
		EquityValue:     res.EquityValue,
		ValuePerShare:   res.ValuePerShare,
		PVExplicitFCFs:  res.PVExplicitFCFs,
		PVTerminalValue: res.PVTerminalValue,
		WACC:            res.Draw.DiscountRate,
		TerminalGrowth:  res.Draw.TerminalGrowth,
	}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
