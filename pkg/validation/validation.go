// Package validation provides input validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/loans"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format %s; must be one of %s, %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}

// ValidateLoanTerms returns warnings for loan inputs that compute a defined
// result but probably indicate a mistake. Degenerate inputs are not errors;
// the engine returns zero results for them.
func ValidateLoanTerms(name string, principal, annualRatePercent float64, years int) []string {
	var warnings []string

	if principal <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has non-positive principal; all results will be zero", name))
	}
	if years <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has non-positive term; all results will be zero", name))
	}
	if annualRatePercent < 0 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a negative interest rate", name))
	}
	if annualRatePercent > 30 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has an interest rate above 30%%; check that the rate is a percentage, not a decimal", name))
	}
	if years > 50 {
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has a term above 50 years", name))
	}

	return warnings
}

// ValidateGracePolicy returns warnings for inconsistent grace settings.
func ValidateGracePolicy(name string, policy loans.GracePolicy) []string {
	var warnings []string

	switch policy.Kind {
	case loans.GraceNone, "":
		if policy.Months > 0 {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' sets grace months without a grace kind; the grace phase is ignored", name))
		}
	case loans.GraceInterestOnly, loans.GraceNoPayment:
		if policy.Months <= 0 {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' sets grace kind %s with no duration; the grace phase is ignored", name, policy.Kind))
		}
	default:
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has unknown grace kind %s", name, policy.Kind))
	}

	return warnings
}

// ValidateExtraPaymentPolicy returns warnings for inconsistent
// extra-payment settings.
func ValidateExtraPaymentPolicy(name string, policy loans.ExtraPaymentPolicy) []string {
	var warnings []string

	switch policy.Kind {
	case loans.ExtraNone, "":
		if policy.MonthlyAmount > 0 || policy.YearlyAmount > 0 {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' sets extra amounts without an extra-payment kind; they are ignored", name))
		}
	case loans.ExtraMonthly:
		if policy.MonthlyAmount <= 0 {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' uses extra_monthly with no monthly amount", name))
		}
	case loans.ExtraYearly:
		if policy.YearlyAmount <= 0 {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' uses extra_yearly with no yearly amount", name))
		}
		if policy.YearlyMonth < 1 || policy.YearlyMonth > 12 {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' has extra-payment month %d outside 1-12", name, policy.YearlyMonth))
		}
	case loans.ExtraBiweekly:
		// Derived from the monthly payment; nothing to check.
	default:
		warnings = append(warnings, fmt.Sprintf("Loan '%s' has unknown extra-payment kind %s", name, policy.Kind))
	}

	return warnings
}
