package models

// ValuationResponse is the response from a deterministic valuation run.
type ValuationResponse struct {
	ID        string           `json:"id,omitempty"`
	Status    string           `json:"status"`
	Valuation ValuationSummary `json:"valuation"`

	// ProjectedFCFs is the undiscounted FCF series, year 0 through T.
	ProjectedFCFs []float64 `json:"projected_fcfs"`
}

// ValuationSummary contains the key outputs of one DCF valuation.
type ValuationSummary struct {
	EnterpriseValue float64 `json:"enterprise_value"`
	EquityValue     float64 `json:"equity_value"`
	ValuePerShare   float64 `json:"value_per_share"`
	PVExplicitFCFs  float64 `json:"pv_explicit_fcfs"`
	PVTerminalValue float64 `json:"pv_terminal_value"`
	WACC            float64 `json:"wacc"`
	TerminalGrowth  float64 `json:"terminal_growth"`
}

// SimulationResponse is the response from a Monte Carlo sensitivity run.
type SimulationResponse struct {
	ID            string            `json:"id,omitempty"`
	Status        string            `json:"status"`
	Deterministic ValuationSummary  `json:"deterministic"`
	Simulation    SimulationSummary `json:"simulation"`

	// Values holds the surviving per-share values in draw order, included
	// only when requested via options.include_values.
	Values []float64 `json:"values,omitempty"`
}

// SimulationSummary contains the aggregated Monte Carlo statistics.
type SimulationSummary struct {
	Count  int     `json:"count"`
	Draws  int     `json:"draws"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Stdev  float64 `json:"stdev"`
	CILow  float64 `json:"ci_low"`
	CIHigh float64 `json:"ci_high"`
	Risk   string  `json:"risk"`
}

// CompanyInfo represents one company preset available on disk.
type CompanyInfo struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	File  string       `json:"file"`
	Specs CompanySpecs `json:"specs"`
}

// CompanySpecs contains headline company figures.
type CompanySpecs struct {
	InitialFCF        float64 `json:"initial_fcf"`
	NetDebt           float64 `json:"net_debt"`
	SharesOutstanding float64 `json:"shares_outstanding"`
	ExplicitYears     int     `json:"explicit_years"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
