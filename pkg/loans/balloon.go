package loans

import "math"

// BalloonResult holds the values for an interest-only loan with the full
// principal due at maturity.
type BalloonResult struct {
	MonthlyPayment float64
	BalloonPayment float64
	TotalPayment   float64
	TotalInterest  float64
}

// BulletResult holds the values for a loan with no periodic payments and
// compounded interest due at maturity.
type BulletResult struct {
	FinalPayment  float64
	TotalPayment  float64
	TotalInterest float64
}

// ComputeBalloon calculates an interest-only loan: flat interest every
// month and the unchanged principal due as a balloon payment at maturity.
func ComputeBalloon(principal, annualRatePercent float64, years int) BalloonResult {
	if principal <= 0 || years <= 0 {
		return BalloonResult{}
	}

	months := PaymentCount(years)
	monthly := principal * MonthlyRate(annualRatePercent)
	totalInterest := monthly * float64(months)
	return BalloonResult{
		MonthlyPayment: monthly,
		BalloonPayment: principal,
		TotalPayment:   totalInterest + principal,
		TotalInterest:  totalInterest,
	}
}

// ComputeBullet calculates a loan with no periodic payments; principal and
// monthly-compounded interest are due in a single payment at maturity.
func ComputeBullet(principal, annualRatePercent float64, years int) BulletResult {
	if principal <= 0 || years <= 0 {
		return BulletResult{}
	}

	months := PaymentCount(years)
	r := MonthlyRate(annualRatePercent)
	finalPayment := principal * math.Pow(1.00+r, float64(months))
	return BulletResult{
		FinalPayment:  finalPayment,
		TotalPayment:  finalPayment,
		TotalInterest: finalPayment - principal,
	}
}
