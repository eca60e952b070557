package loans

import (
	"math"
	"testing"
)

func TestComputeWithGrace_NoPayment(t *testing.T) {
	result := ComputeWithGrace(100000, 6.0, 5, GracePolicy{Kind: GraceNoPayment, Months: 6})

	// Interest capitalizes monthly during the deferral phase.
	expectedPrincipal := 100000 * math.Pow(1.005, 6)
	if result.PrincipalAfterGrace != expectedPrincipal {
		t.Errorf("PrincipalAfterGrace = %v, expected exactly %v", result.PrincipalAfterGrace, expectedPrincipal)
	}
	if math.Abs(result.PrincipalAfterGrace-103037.75) > 0.01 {
		t.Errorf("PrincipalAfterGrace = %.2f, expected 103037.75", result.PrincipalAfterGrace)
	}
	if math.Abs(result.GraceInterest-(expectedPrincipal-100000)) > 1e-9 {
		t.Errorf("GraceInterest = %.2f, expected %.2f", result.GraceInterest, expectedPrincipal-100000)
	}
	if result.GracePayment != 0 {
		t.Errorf("GracePayment = %.2f, expected 0 during full deferral", result.GracePayment)
	}

	// The capitalized balance amortizes over the full original term.
	expectedMonthly := MonthlyPayment(expectedPrincipal, 6.0, 5).MonthlyPayment
	if math.Abs(result.MonthlyPayment-expectedMonthly) > 1e-9 {
		t.Errorf("MonthlyPayment = %.2f, expected %.2f", result.MonthlyPayment, expectedMonthly)
	}
	if math.Abs(result.MonthlyPayment-1992.01) > 0.01 {
		t.Errorf("MonthlyPayment = %.2f, expected 1992.01", result.MonthlyPayment)
	}

	// Total interest is measured against the original principal.
	if math.Abs(result.TotalInterest-(result.TotalPayment-100000)) > 1e-6 {
		t.Errorf("TotalInterest = %.2f, expected TotalPayment-principal = %.2f",
			result.TotalInterest, result.TotalPayment-100000)
	}
}

func TestComputeWithGrace_InterestOnly(t *testing.T) {
	result := ComputeWithGrace(100000, 6.0, 5, GracePolicy{Kind: GraceInterestOnly, Months: 6})

	// Flat monthly interest on the undiminished principal.
	if math.Abs(result.GracePayment-500.00) > 0.01 {
		t.Errorf("GracePayment = %.2f, expected 500.00", result.GracePayment)
	}
	if math.Abs(result.GraceInterest-3000.00) > 0.01 {
		t.Errorf("GraceInterest = %.2f, expected 3000.00", result.GraceInterest)
	}
	if result.PrincipalAfterGrace != 100000 {
		t.Errorf("PrincipalAfterGrace = %.2f, expected unchanged principal", result.PrincipalAfterGrace)
	}

	standard := MonthlyPayment(100000, 6.0, 5)
	if result.MonthlyPayment != standard.MonthlyPayment {
		t.Errorf("MonthlyPayment = %.2f, expected the standard payment %.2f",
			result.MonthlyPayment, standard.MonthlyPayment)
	}
	if math.Abs(result.TotalPayment-(standard.TotalPayment+3000.00)) > 0.01 {
		t.Errorf("TotalPayment = %.2f, expected standard total plus grace interest", result.TotalPayment)
	}
}

func TestComputeWithGrace_NoneDelegatesToStandard(t *testing.T) {
	tests := []struct {
		name   string
		policy GracePolicy
	}{
		{"Explicit none", GracePolicy{Kind: GraceNone}},
		{"Empty kind", GracePolicy{}},
		{"Zero months", GracePolicy{Kind: GraceNoPayment, Months: 0}},
	}

	standard := MonthlyPayment(25000, 7.5, 5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeWithGrace(25000, 7.5, 5, tt.policy)
			if result.PaymentResult != standard {
				t.Errorf("ComputeWithGrace() = %+v, expected the standard result %+v", result.PaymentResult, standard)
			}
			if result.PrincipalAfterGrace != 25000 {
				t.Errorf("PrincipalAfterGrace = %.2f, expected 25000", result.PrincipalAfterGrace)
			}
			if result.GracePayment != 0 || result.GraceInterest != 0 {
				t.Errorf("grace fields should be zero without a grace phase")
			}
		})
	}
}

// The amortization phase runs over the full original term for both grace
// kinds, so total loan life is the nominal term plus the grace duration.
// This is intended product behavior, not an off-by-one.
func TestComputeWithGrace_FullTermAfterGrace(t *testing.T) {
	policy := GracePolicy{Kind: GraceNoPayment, Months: 12}
	result := ComputeWithGrace(100000, 6.0, 10, policy)

	amortized := MonthlyPayment(result.PrincipalAfterGrace, 6.0, 10)
	if math.Abs(result.TotalPayment-amortized.TotalPayment) > 1e-6 {
		t.Errorf("amortization phase should cover the full 120 months; TotalPayment = %.2f, expected %.2f",
			result.TotalPayment, amortized.TotalPayment)
	}

	if got := policy.EffectiveMonths(10); got != 132 {
		t.Errorf("EffectiveMonths(10) = %d, expected 132", got)
	}
}

func TestComputeWithGrace_DegenerateInputs(t *testing.T) {
	if result := ComputeWithGrace(0, 6.0, 5, GracePolicy{Kind: GraceNoPayment, Months: 6}); result != (GraceResult{}) {
		t.Errorf("zero principal should yield the zero result, got %+v", result)
	}
	if result := ComputeWithGrace(1000, 6.0, 0, GracePolicy{Kind: GraceInterestOnly, Months: 6}); result != (GraceResult{}) {
		t.Errorf("zero term should yield the zero result, got %+v", result)
	}
}
