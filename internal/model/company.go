package model

import (
	"errors"
	"fmt"
)

// Explicit forecast horizon bounds. The projection loop is only meaningful
// for a handful of years before the terminal value dominates.
const (
	MinExplicitYears = 3
	MaxExplicitYears = 10
)

// CompanyProfile defines the company-level inputs of a valuation run.
// Units:
// - InitialFCF: currency units (latest reported Free Cash Flow, year 0)
// - NetDebt: currency units (total debt minus cash & equivalents)
// - SharesOutstanding: share count
// - ExplicitYears: number of explicitly projected years T
//
// A profile is immutable once constructed; every valuation and simulation
// run reads it without modifying it.
type CompanyProfile struct {
	Name              string
	InitialFCF        float64
	NetDebt           float64
	SharesOutstanding float64
	ExplicitYears     int
}

func NewCompanyProfile(name string, initialFCF, netDebt, sharesOutstanding float64, explicitYears int) (CompanyProfile, error) {
	p := CompanyProfile{
		Name:              name,
		InitialFCF:        initialFCF,
		NetDebt:           netDebt,
		SharesOutstanding: sharesOutstanding,
		ExplicitYears:     explicitYears,
	}
	if err := p.Validate(); err != nil {
		return CompanyProfile{}, err
	}
	return p, nil
}

func (p CompanyProfile) Validate() error {
	if p.InitialFCF < 0 {
		return errors.New("InitialFCF must be >= 0")
	}
	if p.NetDebt < 0 {
		return errors.New("NetDebt must be >= 0")
	}
	if p.SharesOutstanding <= 0 {
		return errors.New("SharesOutstanding must be > 0")
	}
	if p.ExplicitYears < MinExplicitYears || p.ExplicitYears > MaxExplicitYears {
		return fmt.Errorf("ExplicitYears must be in [%d, %d]", MinExplicitYears, MaxExplicitYears)
	}
	return nil
}
