// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/finance-calc/pkg/format"
	"github.com/iwvelando/finance-calc/pkg/investments"
	"github.com/iwvelando/finance-calc/pkg/loans"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyPayment outputs a human-readable summary of a payment result.
func PrettyPayment(w io.Writer, name string, result loans.PaymentResult) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Results for loan %s ---\n", name)
	_, _ = p.Fprintf(w, "Monthly payment | $%.2f\n", result.MonthlyPayment)
	_, _ = p.Fprintf(w, "Total payment   | $%.2f\n", result.TotalPayment)
	_, _ = p.Fprintf(w, "Total interest  | $%.2f\n", result.TotalInterest)
}

// PrettySchedule outputs a human-readable amortization table.
func PrettySchedule(w io.Writer, name string, rows []loans.Row) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Amortization schedule for %s ---\n", name)
	fmt.Fprintf(w, "Period | Payment       | Principal     | Interest      | Balance\n")
	fmt.Fprintf(w, "______ | _____________ | _____________ | _____________ | _____________\n")
	for _, row := range rows {
		_, _ = p.Fprintf(w, "%6d | $%.2f | $%.2f | $%.2f | $%.2f\n",
			row.Period, row.Payment, row.Principal, row.Interest, row.RemainingBalance)
	}
}

// PrettyExtraPayments outputs a human-readable extra-payment comparison.
func PrettyExtraPayments(w io.Writer, name string, result loans.ExtraPaymentResult) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Extra-payment results for loan %s ---\n", name)
	_, _ = p.Fprintf(w, "Standard payoff | %s with $%.2f interest\n",
		format.Months(result.StandardMonths), result.Standard.TotalInterest)
	_, _ = p.Fprintf(w, "Actual payoff   | %s with $%.2f interest\n",
		format.Months(result.ActualMonths), result.ActualInterest)
	_, _ = p.Fprintf(w, "Saved           | %s and $%.2f\n",
		format.Months(result.MonthsSaved), result.InterestSaved)
	if !result.Converged {
		fmt.Fprintf(w, "Warning: the payoff simulation did not converge; results are truncated\n")
	}
}

// PrettyGrowth outputs a human-readable investment projection.
func PrettyGrowth(w io.Writer, name string, result investments.GrowthResult) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "--- Results for investment %s ---\n", name)
	_, _ = p.Fprintf(w, "Future value        | $%.2f\n", result.FutureValue)
	_, _ = p.Fprintf(w, "Total contributions | $%.2f\n", result.TotalContributions)
	_, _ = p.Fprintf(w, "Total interest      | $%.2f\n", result.TotalInterest)
}

// CsvSchedule outputs an amortization schedule in comma-separated value
// format.
func CsvSchedule(w io.Writer, rows []loans.Row) {
	fmt.Fprintf(w, `"period","payment","principal","interest","balance","cumulative principal","cumulative interest"`)
	fmt.Fprintf(w, "\n")
	for _, row := range rows {
		fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			row.Period, row.Payment, row.Principal, row.Interest,
			row.RemainingBalance, row.CumulativePrincipal, row.CumulativeInterest)
		fmt.Fprintf(w, "\n")
	}
}

// CsvGrowthSchedule outputs an investment growth schedule in
// comma-separated value format.
func CsvGrowthSchedule(w io.Writer, rows []investments.GrowthRow) {
	fmt.Fprintf(w, `"year","contributions","interest","balance"`)
	fmt.Fprintf(w, "\n")
	for _, row := range rows {
		fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f"`,
			row.Year, row.Contributions, row.Interest, row.Balance)
		fmt.Fprintf(w, "\n")
	}
}

// SummaryLine renders a one-line loan summary for logs and notes.
func SummaryLine(name string, result loans.PaymentResult) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(format.Currency(result.MonthlyPayment))
	b.WriteString("/month, ")
	b.WriteString(format.Currency(result.TotalInterest))
	b.WriteString(" total interest")
	return b.String()
}
