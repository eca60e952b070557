// Package investments implements investment growth projections.
package investments

import (
	"math"

	"github.com/iwvelando/finance-calc/pkg/constants"
)

// Terms describes the scalar inputs for an investment projection.
type Terms struct {
	InitialBalance      float64
	MonthlyContribution float64
	AnnualRatePercent   float64
	Years               int
}

// GrowthResult holds the closed-form projection of an investment.
type GrowthResult struct {
	FutureValue        float64
	TotalContributions float64
	TotalInterest      float64
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// ComputeGrowth projects an initial balance plus monthly contributions
// compounded monthly over the term, using the ordinary annuity future-value
// formula. A non-positive term yields the zero result.
func ComputeGrowth(terms Terms) GrowthResult {
	if terms.Years <= 0 {
		return GrowthResult{}
	}

	months := terms.Years * constants.MonthsPerYear
	r := monthlyRate(terms.AnnualRatePercent)

	var futureValue float64
	if r == 0 {
		futureValue = terms.InitialBalance + terms.MonthlyContribution*float64(months)
	} else {
		power := math.Pow(1.00+r, float64(months))
		futureValue = terms.InitialBalance*power + terms.MonthlyContribution*(power-1.00)/r
	}

	contributions := terms.InitialBalance + terms.MonthlyContribution*float64(months)
	return GrowthResult{
		FutureValue:        futureValue,
		TotalContributions: contributions,
		TotalInterest:      futureValue - contributions,
	}
}
