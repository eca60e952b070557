package loans

import (
	"fmt"

	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/mathutil"
	"go.uber.org/zap"
)

// Row holds the values for a single schedule period.
type Row struct {
	Period              int
	Payment             float64
	Principal           float64
	Interest            float64
	RemainingBalance    float64
	CumulativePrincipal float64
	CumulativeInterest  float64
}

// ScheduleGenerator produces amortization schedules. The same month loop
// backs both the row-level schedules and the extra-payment simulator so
// their results cannot diverge.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// Monthly generates one row per month until the balance reaches zero. The
// returned flag reports whether the loan paid off before the safety cap of
// twice the scheduled payment count.
func (g *ScheduleGenerator) Monthly(principal, annualRatePercent float64, years int, policy ExtraPaymentPolicy) ([]Row, bool) {
	if principal <= 0 || years <= 0 {
		return nil, true
	}

	standard := MonthlyPayment(principal, annualRatePercent, years)
	n := PaymentCount(years)
	cap := n * constants.SafetyCapFactor

	rows := make([]Row, 0, n)
	balance := principal
	cumPrincipal := 0.0
	cumInterest := 0.0

	for month := 1; month <= cap; month++ {
		interest := InterestPortion(balance, annualRatePercent)

		// The scheduled payment never exceeds what settles the loan.
		payment := mathutil.Min(standard.MonthlyPayment, balance+interest)

		extra := policy.AmountForMonth(month, standard.MonthlyPayment)
		basePrincipal := payment - interest
		if extra > balance-basePrincipal {
			extra = mathutil.ClampNonNegative(balance - basePrincipal)
			g.logger.Debug("capping extra payment to prevent overpayment",
				zap.Int("month", month),
				zap.Float64("capped_to", extra),
			)
		}

		principalPortion := basePrincipal + extra
		balance = mathutil.ClampNonNegative(balance - principalPortion)

		// A residual below the epsilon is never reported as outstanding;
		// fold it into the final payment instead.
		if balance <= constants.BalanceEpsilon && balance > 0 {
			principalPortion += balance
			payment += balance
			balance = 0
		}

		cumPrincipal += principalPortion
		cumInterest += interest

		rows = append(rows, Row{
			Period:              month,
			Payment:             payment + extra,
			Principal:           principalPortion,
			Interest:            interest,
			RemainingBalance:    balance,
			CumulativePrincipal: cumPrincipal,
			CumulativeInterest:  cumInterest,
		})

		if balance <= constants.BalanceEpsilon {
			return rows, true
		}
	}

	g.logger.Debug(fmt.Sprintf("schedule did not converge within %d months", cap),
		zap.Float64("remaining_balance", balance),
	)
	return rows, false
}

// Yearly generates one row per year, aggregating twelve months of payment,
// principal, and interest while reporting the end-of-year balance.
func (g *ScheduleGenerator) Yearly(principal, annualRatePercent float64, years int, policy ExtraPaymentPolicy) ([]Row, bool) {
	monthly, converged := g.Monthly(principal, annualRatePercent, years, policy)
	if len(monthly) == 0 {
		return nil, converged
	}

	var rows []Row
	var current Row
	for i, row := range monthly {
		current.Payment += row.Payment
		current.Principal += row.Principal
		current.Interest += row.Interest
		current.RemainingBalance = row.RemainingBalance
		current.CumulativePrincipal = row.CumulativePrincipal
		current.CumulativeInterest = row.CumulativeInterest

		yearEnd := (i+1)%constants.MonthsPerYear == 0
		if yearEnd || i == len(monthly)-1 {
			current.Period = i/constants.MonthsPerYear + 1
			rows = append(rows, current)
			current = Row{}
		}
	}
	return rows, converged
}

// MonthlySchedule generates a monthly amortization schedule without logging.
func MonthlySchedule(principal, annualRatePercent float64, years int, policy ExtraPaymentPolicy) []Row {
	rows, _ := NewScheduleGenerator(nil).Monthly(principal, annualRatePercent, years, policy)
	return rows
}

// YearlySchedule generates a yearly-aggregated amortization schedule
// without logging.
func YearlySchedule(principal, annualRatePercent float64, years int, policy ExtraPaymentPolicy) []Row {
	rows, _ := NewScheduleGenerator(nil).Yearly(principal, annualRatePercent, years, policy)
	return rows
}
