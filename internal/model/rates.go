package model

// RateDraw pairs a discount rate with a terminal growth rate. It is either
// the single deterministic base case or one of many Monte Carlo samples.
// Rates are fractions (0.10 = 10%), not percentages.
type RateDraw struct {
	DiscountRate   float64
	TerminalGrowth float64
}

// Usable reports whether the Gordon Growth terminal value is defined for
// this draw. The perpetuity denominator (r - g) must be strictly positive.
func (d RateDraw) Usable() bool {
	return d.DiscountRate > d.TerminalGrowth
}
