package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iwvelando/finance-calc/pkg/investments"
	"github.com/iwvelando/finance-calc/pkg/loans"
)

func TestPrettyPayment(t *testing.T) {
	var buf bytes.Buffer
	PrettyPayment(&buf, "Car Loan", loans.PaymentResult{
		MonthlyPayment: 500.95,
		TotalPayment:   30056.92,
		TotalInterest:  5056.92,
	})

	out := buf.String()
	for _, want := range []string{
		"--- Results for loan Car Loan ---",
		"$500.95",
		"$30,056.92",
		"$5,056.92",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettySchedule(t *testing.T) {
	var buf bytes.Buffer
	rows := loans.MonthlySchedule(10000, 6, 1, loans.ExtraPaymentPolicy{})
	PrettySchedule(&buf, "Short Loan", rows)

	out := buf.String()
	if !strings.Contains(out, "--- Amortization schedule for Short Loan ---") {
		t.Errorf("missing header:\n%s", out)
	}
	// Header, separator, and one line per period.
	lines := strings.Count(out, "\n")
	if lines != 3+len(rows) {
		t.Errorf("expected %d lines, got %d", 3+len(rows), lines)
	}
}

func TestPrettyExtraPayments(t *testing.T) {
	var buf bytes.Buffer
	PrettyExtraPayments(&buf, "Car Loan", loans.ExtraPaymentResult{
		StandardMonths: 60,
		ActualMonths:   49,
		MonthsSaved:    11,
		ActualInterest: 4043.31,
		InterestSaved:  1013.61,
		Converged:      true,
	})

	out := buf.String()
	for _, want := range []string{"5 years", "4 years 1 months", "11 months", "$1,013.61"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "did not converge") {
		t.Errorf("converged result should not warn:\n%s", out)
	}
}

func TestPrettyExtraPayments_NotConverged(t *testing.T) {
	var buf bytes.Buffer
	PrettyExtraPayments(&buf, "Stuck Loan", loans.ExtraPaymentResult{Converged: false})

	if !strings.Contains(buf.String(), "did not converge") {
		t.Errorf("truncated result should warn:\n%s", buf.String())
	}
}

func TestPrettyGrowth(t *testing.T) {
	var buf bytes.Buffer
	PrettyGrowth(&buf, "Retirement", investments.GrowthResult{
		FutureValue:        343778.24,
		TotalContributions: 130000,
		TotalInterest:      213778.24,
	})

	out := buf.String()
	for _, want := range []string{"--- Results for investment Retirement ---", "$343,778.24", "$130,000.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCsvSchedule(t *testing.T) {
	var buf bytes.Buffer
	rows := loans.MonthlySchedule(10000, 6, 1, loans.ExtraPaymentPolicy{})
	CsvSchedule(&buf, rows)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1+len(rows) {
		t.Fatalf("expected %d lines, got %d", 1+len(rows), len(lines))
	}
	if lines[0] != `"period","payment","principal","interest","balance","cumulative principal","cumulative interest"` {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"1",`) {
		t.Errorf("first data line should start with period 1, got %q", lines[1])
	}
}

func TestCsvGrowthSchedule(t *testing.T) {
	var buf bytes.Buffer
	rows := investments.Schedule(investments.Terms{
		InitialBalance: 1000, MonthlyContribution: 100, AnnualRatePercent: 5, Years: 2,
	})
	CsvGrowthSchedule(&buf, rows)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1+len(rows) {
		t.Fatalf("expected %d lines, got %d", 1+len(rows), len(lines))
	}
	if lines[0] != `"year","contributions","interest","balance"` {
		t.Errorf("unexpected header %q", lines[0])
	}
}

func TestSummaryLine(t *testing.T) {
	line := SummaryLine("Car Loan", loans.PaymentResult{MonthlyPayment: 500.95, TotalInterest: 5056.92})
	if line != "Car Loan: $500.95/month, $5,056.92 total interest" {
		t.Errorf("unexpected summary line %q", line)
	}
}
