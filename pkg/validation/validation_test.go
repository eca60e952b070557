package validation

import (
	"strings"
	"testing"

	"github.com/iwvelando/finance-calc/pkg/loans"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) returned unexpected error %v", format, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Errorf("ValidateOutputFormat(\"xml\") should fail")
	}
}

func TestValidateLoanTerms(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		years     int
		warnings  int
	}{
		{"Typical loan", 25000, 7.5, 5, 0},
		{"Zero principal", 0, 6, 30, 1},
		{"Negative rate", 100000, -1, 30, 1},
		{"Decimal rate mistake", 100000, 0.065 * 1000, 30, 1},
		{"Zero term", 100000, 6, 0, 1},
		{"Century loan", 100000, 6, 100, 1},
		{"Everything wrong", -1, -1, -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateLoanTerms(tt.name, tt.principal, tt.rate, tt.years)
			if len(warnings) != tt.warnings {
				t.Errorf("got %d warnings, expected %d: %v", len(warnings), tt.warnings, warnings)
			}
		})
	}
}

func TestValidateGracePolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   loans.GracePolicy
		warnings int
	}{
		{"No grace", loans.GracePolicy{}, 0},
		{"Valid interest-only", loans.GracePolicy{Kind: loans.GraceInterestOnly, Months: 6}, 0},
		{"Valid no-payment", loans.GracePolicy{Kind: loans.GraceNoPayment, Months: 12}, 0},
		{"Months without kind", loans.GracePolicy{Months: 6}, 1},
		{"Kind without months", loans.GracePolicy{Kind: loans.GraceNoPayment}, 1},
		{"Unknown kind", loans.GracePolicy{Kind: "deferred", Months: 6}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateGracePolicy(tt.name, tt.policy)
			if len(warnings) != tt.warnings {
				t.Errorf("got %d warnings, expected %d: %v", len(warnings), tt.warnings, warnings)
			}
		})
	}
}

func TestValidateExtraPaymentPolicy(t *testing.T) {
	tests := []struct {
		name     string
		policy   loans.ExtraPaymentPolicy
		warnings int
	}{
		{"No extra payments", loans.ExtraPaymentPolicy{}, 0},
		{"Valid monthly", loans.ExtraPaymentPolicy{Kind: loans.ExtraMonthly, MonthlyAmount: 100}, 0},
		{"Valid yearly", loans.ExtraPaymentPolicy{Kind: loans.ExtraYearly, YearlyAmount: 1000, YearlyMonth: 6}, 0},
		{"Biweekly needs no amounts", loans.ExtraPaymentPolicy{Kind: loans.ExtraBiweekly}, 0},
		{"Amount without kind", loans.ExtraPaymentPolicy{MonthlyAmount: 100}, 1},
		{"Monthly without amount", loans.ExtraPaymentPolicy{Kind: loans.ExtraMonthly}, 1},
		{"Yearly without amount or month", loans.ExtraPaymentPolicy{Kind: loans.ExtraYearly}, 2},
		{"Yearly month out of range", loans.ExtraPaymentPolicy{Kind: loans.ExtraYearly, YearlyAmount: 1000, YearlyMonth: 13}, 1},
		{"Unknown kind", loans.ExtraPaymentPolicy{Kind: "weekly"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateExtraPaymentPolicy(tt.name, tt.policy)
			if len(warnings) != tt.warnings {
				t.Errorf("got %d warnings, expected %d: %v", len(warnings), tt.warnings, warnings)
			}
		})
	}
}

func TestValidateLoanTerms_MessagesNameTheLoan(t *testing.T) {
	warnings := ValidateLoanTerms("Car Loan", 0, 6, 5)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "Car Loan") {
		t.Errorf("warning should name the loan: %v", warnings)
	}
}
