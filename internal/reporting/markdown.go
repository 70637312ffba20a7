package reporting

import (
	"fmt"
	"strings"
	"time"

	"dcf-valuation/internal/analysis"
	"dcf-valuation/internal/model"
)

// Inputs captures the scenario assumptions echoed back into the report.
type Inputs struct {
	Profile model.CompanyProfile

	InitialGrowth  float64
	StepDownGrowth float64

	WACCMean    float64
	WACCStdev   float64
	GrowthMean  float64
	GrowthStdev float64

	Draws int
}

// RenderMarkdown renders the valuation report as a Markdown document: the
// key inputs, the base-case and simulated results, and an interpretation of
// the simulated value distribution.
func RenderMarkdown(r analysis.Report, in Inputs, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("# DCF Valuation Report\n\n")
	if in.Profile.Name != "" {
		sb.WriteString(fmt.Sprintf("Company: %s\n\n", in.Profile.Name))
	}
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", generatedAt.Format(time.RFC3339)))

	sb.WriteString("## Key Model Inputs (Base Case)\n\n")
	sb.WriteString("| Parameter | Value | Notes |\n")
	sb.WriteString("|-----------|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Initial FCF (Year 0) | $%s | Base for FCF projections. |\n", formatAmount(in.Profile.InitialFCF)))
	sb.WriteString(fmt.Sprintf("| Net Debt | $%s | Subtracted to find equity value. |\n", formatAmount(in.Profile.NetDebt)))
	sb.WriteString(fmt.Sprintf("| Shares Outstanding | %s | Used for per-share value. |\n", formatAmount(in.Profile.SharesOutstanding)))
	sb.WriteString(fmt.Sprintf("| Explicit Years | %d | Two-stage projection horizon. |\n", in.Profile.ExplicitYears))
	sb.WriteString(fmt.Sprintf("| Growth (Stage 1, Years 1-2) | %.1f%% | High growth for the early expansion phase. |\n", in.InitialGrowth*100))
	sb.WriteString(fmt.Sprintf("| Growth (Stage 2, Years 3-T) | %.1f%% | Stepped-down growth. |\n", in.StepDownGrowth*100))
	sb.WriteString(fmt.Sprintf("| WACC (Mean Discount Rate) | %.2f%% | Primary discounting factor. |\n", in.WACCMean*100))
	sb.WriteString(fmt.Sprintf("| Perpetuity Growth (Mean) | %.2f%% | Long-term growth assumption. |\n", in.GrowthMean*100))
	sb.WriteString("\n")

	sb.WriteString("## Valuation Results\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Deterministic Value Per Share | $%.2f |\n", r.DeterministicValue))
	sb.WriteString(fmt.Sprintf("| Monte Carlo Mean | $%.2f |\n", r.MCMean))
	sb.WriteString(fmt.Sprintf("| Monte Carlo Median | $%.2f |\n", r.MCMedian))
	sb.WriteString(fmt.Sprintf("| Std. Dev. (Risk) | $%.2f |\n", r.MCStdev))
	sb.WriteString(fmt.Sprintf("| 95%% Interval | $%.2f to $%.2f |\n", r.MCCILow, r.MCCIHigh))
	sb.WriteString(fmt.Sprintf("| Valid Scenarios | %d of %d |\n", r.MCCount, in.Draws))
	sb.WriteString(fmt.Sprintf("| Risk Rating | %s |\n", r.Risk))
	sb.WriteString("\n")

	sb.WriteString("## Interpretation of the Value Distribution\n\n")
	sb.WriteString(interpretation(r, in))
	sb.WriteString("\n")

	return sb.String()
}

// interpretation writes the distribution commentary: dispersion relative to
// the mean and the mean/median skew direction.
func interpretation(r analysis.Report, in Inputs) string {
	if r.MCCount == 0 {
		return "No scenarios survived the sampling filter (discount rate must exceed " +
			"terminal growth in every kept draw). Widen the gap between the WACC mean " +
			"and the perpetuity growth mean, or reduce their volatilities.\n"
	}

	var adjective, skew string
	switch r.Risk {
	case analysis.RiskLow:
		adjective = "limited"
		skew = "The distribution is highly symmetrical, indicating uniform uncertainty across the range."
	case analysis.RiskModerate:
		adjective = "significant"
		skew = skewComment(r.MCMean, r.MCMedian)
	default:
		adjective = "extreme"
		skew = "The distribution shows notable positive skew, meaning the model forecasts a higher, albeit less probable, potential upside."
	}

	return fmt.Sprintf(
		"The base-case valuation is primarily driven by the two-stage growth assumption "+
			"(starting at %.1f%%) over a %d-year horizon, producing a mean simulated value of "+
			"**$%.2f** per share. The cost of capital (%.2f%%) is the critical factor: small "+
			"fluctuations in the discount rate, combined with volatility in the perpetuity "+
			"growth rate, create the final spread of values.\n\n"+
			"The simulation shows a **%s** dispersion around the mean (std. dev. $%.2f). The "+
			"95%% interval runs from $%.2f to $%.2f. %s\n",
		in.InitialGrowth*100, in.Profile.ExplicitYears,
		r.MCMean, in.WACCMean*100,
		adjective, r.MCStdev, r.MCCILow, r.MCCIHigh, skew,
	)
}

func skewComment(mean, median float64) string {
	if mean > median {
		return fmt.Sprintf("The mean ($%.2f) sits above the median ($%.2f), a slight positive skew: a longer tail towards higher values and therefore greater potential for upside surprises.", mean, median)
	}
	if mean < median {
		return fmt.Sprintf("The mean ($%.2f) sits below the median ($%.2f), a slight negative skew towards lower values.", mean, median)
	}
	return "Mean and median coincide; the distribution is symmetric around the central value."
}

// formatAmount renders a currency-scale float with thousands separators and
// no decimals.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var out strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(ch)
	}
	if neg {
		return "-" + out.String()
	}
	return out.String()
}
