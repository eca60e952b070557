package loans

import (
	"math"

	"github.com/iwvelando/finance-calc/pkg/constants"
)

// GraceKind selects the behavior of an initial grace period.
type GraceKind string

const (
	// GraceNone disables the grace phase.
	GraceNone GraceKind = "none"

	// GraceInterestOnly charges flat monthly interest on the undiminished
	// principal during the grace phase.
	GraceInterestOnly GraceKind = "interest_only"

	// GraceNoPayment defers all payments during the grace phase and
	// capitalizes interest monthly.
	GraceNoPayment GraceKind = "no_payment"
)

// GracePolicy describes an initial deferral or interest-only phase.
type GracePolicy struct {
	Kind   GraceKind
	Months int
}

// GraceResult extends PaymentResult with the grace-phase values.
type GraceResult struct {
	PaymentResult
	GracePayment        float64
	PrincipalAfterGrace float64
	GraceInterest       float64
}

// ComputeWithGrace calculates payments for a loan with an initial grace
// period. The amortization phase always runs over the full original term,
// so the effective loan life exceeds the nominal term by the grace
// duration.
func ComputeWithGrace(principal, annualRatePercent float64, years int, policy GracePolicy) GraceResult {
	if principal <= 0 || years <= 0 {
		return GraceResult{}
	}

	if policy.Kind == GraceNone || policy.Kind == "" || policy.Months <= 0 {
		standard := MonthlyPayment(principal, annualRatePercent, years)
		return GraceResult{
			PaymentResult:       standard,
			PrincipalAfterGrace: principal,
		}
	}

	r := MonthlyRate(annualRatePercent)

	switch policy.Kind {
	case GraceNoPayment:
		// Unpaid interest compounds onto the principal each grace month.
		principalAfterGrace := principal * math.Pow(1.00+r, float64(policy.Months))
		amortized := MonthlyPayment(principalAfterGrace, annualRatePercent, years)
		total := amortized.TotalPayment
		return GraceResult{
			PaymentResult: PaymentResult{
				MonthlyPayment: amortized.MonthlyPayment,
				TotalPayment:   total,
				TotalInterest:  total - principal,
			},
			PrincipalAfterGrace: principalAfterGrace,
			GraceInterest:       principalAfterGrace - principal,
		}
	case GraceInterestOnly:
		gracePayment := principal * r
		graceInterest := gracePayment * float64(policy.Months)
		amortized := MonthlyPayment(principal, annualRatePercent, years)
		total := graceInterest + amortized.TotalPayment
		return GraceResult{
			PaymentResult: PaymentResult{
				MonthlyPayment: amortized.MonthlyPayment,
				TotalPayment:   total,
				TotalInterest:  total - principal,
			},
			GracePayment:        gracePayment,
			PrincipalAfterGrace: principal,
			GraceInterest:       graceInterest,
		}
	default:
		return GraceResult{}
	}
}

// EffectiveMonths returns the total number of payment months implied by a
// grace policy on top of the nominal term.
func (p GracePolicy) EffectiveMonths(years int) int {
	months := years * constants.MonthsPerYear
	if p.Kind == GraceNone || p.Kind == "" {
		return months
	}
	return months + p.Months
}
