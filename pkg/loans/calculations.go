// Package loans implements loan payment and amortization calculations.
package loans

import (
	"math"

	"github.com/iwvelando/finance-calc/pkg/constants"
)

// PaymentResult holds the derived payment values for a fully amortizing loan.
type PaymentResult struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
}

// MonthlyRate converts an annual percentage rate to a monthly decimal rate.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// PaymentCount returns the number of monthly payments for a term in years.
func PaymentCount(years int) int {
	return years * constants.MonthsPerYear
}

// MonthlyPayment calculates the fixed payment that fully amortizes the
// principal over the term using the standard annuity formula. Non-positive
// principal or term yields the zero result.
func MonthlyPayment(principal, annualRatePercent float64, years int) PaymentResult {
	if principal <= 0 || years <= 0 {
		return PaymentResult{}
	}

	n := PaymentCount(years)
	var payment float64
	if annualRatePercent == 0 {
		// For zero interest, simply divide the principal by term
		payment = principal / float64(n)
	} else {
		r := MonthlyRate(annualRatePercent)
		power := math.Pow(1.00+r, float64(n))
		discountFactor := (power - 1.00) / power
		payment = principal * r / discountFactor
	}

	total := payment * float64(n)
	return PaymentResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - principal,
	}
}

// InterestPortion calculates the interest portion of a payment on the
// remaining balance.
func InterestPortion(remainingPrincipal, annualRatePercent float64) float64 {
	return remainingPrincipal * MonthlyRate(annualRatePercent)
}
