package loans

// MortgageTerms describes a home purchase financed by a standard loan plus
// monthly carrying costs that are billed alongside the loan payment.
type MortgageTerms struct {
	HomePrice         float64
	DownPayment       float64
	AnnualRatePercent float64
	Years             int
	MonthlyTax        float64
	MonthlyInsurance  float64
	MonthlyHOA        float64
}

// MortgageResult combines the amortized loan payment with carrying costs.
// Carrying costs are pass-through amounts; they do not affect the
// amortization math.
type MortgageResult struct {
	Loan           PaymentResult
	Principal      float64
	MonthlyCosts   float64
	MonthlyTotal   float64
	TotalOfAllCost float64
}

// ComputeMortgage derives the financed principal from price minus down
// payment and adds the monthly carrying costs on top of the loan payment.
func ComputeMortgage(terms MortgageTerms) MortgageResult {
	principal := terms.HomePrice - terms.DownPayment
	if principal < 0 {
		principal = 0
	}

	loan := MonthlyPayment(principal, terms.AnnualRatePercent, terms.Years)
	costs := terms.MonthlyTax + terms.MonthlyInsurance + terms.MonthlyHOA
	months := float64(PaymentCount(terms.Years))

	result := MortgageResult{
		Loan:         loan,
		Principal:    principal,
		MonthlyCosts: costs,
		MonthlyTotal: loan.MonthlyPayment + costs,
	}
	if terms.Years > 0 {
		result.TotalOfAllCost = loan.TotalPayment + costs*months
	}
	return result
}
