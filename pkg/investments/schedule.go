package investments

import "github.com/iwvelando/finance-calc/pkg/constants"

// GrowthRow holds the year-end state of an investment. Year 0 is the
// initial state before any growth.
type GrowthRow struct {
	Year          int
	Contributions float64
	Interest      float64
	Balance       float64
}

// Schedule generates year-by-year growth rows. Contributions are added at
// the end of each month after that month's growth, matching the ordinary
// annuity convention of ComputeGrowth; the closed form and the final row
// agree within floating-point tolerance.
func Schedule(terms Terms) []GrowthRow {
	if terms.Years <= 0 {
		return nil
	}

	r := monthlyRate(terms.AnnualRatePercent)

	rows := make([]GrowthRow, 0, terms.Years+1)
	rows = append(rows, GrowthRow{
		Year:          0,
		Contributions: terms.InitialBalance,
		Balance:       terms.InitialBalance,
	})

	balance := terms.InitialBalance
	contributions := terms.InitialBalance

	for year := 1; year <= terms.Years; year++ {
		for month := 0; month < constants.MonthsPerYear; month++ {
			balance = balance*(1.00+r) + terms.MonthlyContribution
			contributions += terms.MonthlyContribution
		}
		rows = append(rows, GrowthRow{
			Year:          year,
			Contributions: contributions,
			Interest:      balance - contributions,
			Balance:       balance,
		})
	}

	return rows
}
