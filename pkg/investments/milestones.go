package investments

import "github.com/iwvelando/finance-calc/pkg/constants"

// maxProjectionYears bounds milestone searches for targets the account
// never reaches, e.g. a zero-rate account with no contributions.
const maxProjectionYears = 200

// MonthsToReach returns the number of months until the balance first
// reaches the target, simulating monthly compounding plus contributions.
// It returns 0 when the initial balance already meets the target and -1
// when the target is not reached within the projection bound.
func MonthsToReach(terms Terms, target float64) int {
	if terms.InitialBalance >= target {
		return 0
	}

	r := monthlyRate(terms.AnnualRatePercent)
	balance := terms.InitialBalance

	limit := maxProjectionYears * constants.MonthsPerYear
	for month := 1; month <= limit; month++ {
		balance = balance*(1.00+r) + terms.MonthlyContribution
		if balance >= target {
			return month
		}
	}
	return -1
}

// Doubled returns the number of months until the balance first reaches
// twice the initial balance, or -1 if it never does.
func Doubled(terms Terms) int {
	if terms.InitialBalance <= 0 {
		return -1
	}
	return MonthsToReach(terms, terms.InitialBalance*2)
}
