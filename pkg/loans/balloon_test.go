package loans

import (
	"math"
	"testing"
)

func TestComputeBalloon(t *testing.T) {
	result := ComputeBalloon(100000, 5.0, 10)

	if result.BalloonPayment != 100000 {
		t.Errorf("BalloonPayment = %.2f, expected exactly 100000", result.BalloonPayment)
	}

	expectedMonthly := 100000 * (0.05 / 12)
	if math.Abs(result.MonthlyPayment-expectedMonthly) > 1e-9 {
		t.Errorf("MonthlyPayment = %v, expected %v", result.MonthlyPayment, expectedMonthly)
	}

	expectedInterest := expectedMonthly * 120
	if math.Abs(result.TotalInterest-expectedInterest) > 1e-6 {
		t.Errorf("TotalInterest = %.2f, expected %.2f", result.TotalInterest, expectedInterest)
	}
	if math.Abs(result.TotalPayment-(expectedInterest+100000)) > 1e-6 {
		t.Errorf("TotalPayment = %.2f, expected interest plus principal", result.TotalPayment)
	}
}

func TestComputeBullet(t *testing.T) {
	result := ComputeBullet(50000, 6.0, 3)

	expectedFinal := 50000 * math.Pow(1+0.06/12, 36)
	if math.Abs(result.FinalPayment-expectedFinal) > 1e-9 {
		t.Errorf("FinalPayment = %v, expected %v", result.FinalPayment, expectedFinal)
	}
	if math.Abs(result.FinalPayment-59834.03) > 0.01 {
		t.Errorf("FinalPayment = %.2f, expected 59834.03", result.FinalPayment)
	}
	if math.Abs(result.TotalInterest-(expectedFinal-50000)) > 1e-9 {
		t.Errorf("TotalInterest = %.2f, expected %.2f", result.TotalInterest, expectedFinal-50000)
	}
	if result.TotalPayment != result.FinalPayment {
		t.Errorf("TotalPayment = %.2f, expected the single final payment", result.TotalPayment)
	}
}

func TestBalloonBullet_DegenerateInputs(t *testing.T) {
	if result := ComputeBalloon(0, 5.0, 10); result != (BalloonResult{}) {
		t.Errorf("zero principal balloon should yield the zero result, got %+v", result)
	}
	if result := ComputeBalloon(100000, 5.0, 0); result != (BalloonResult{}) {
		t.Errorf("zero term balloon should yield the zero result, got %+v", result)
	}
	if result := ComputeBullet(-5, 5.0, 10); result != (BulletResult{}) {
		t.Errorf("negative principal bullet should yield the zero result, got %+v", result)
	}
	if result := ComputeBullet(100000, 5.0, -2); result != (BulletResult{}) {
		t.Errorf("negative term bullet should yield the zero result, got %+v", result)
	}
}

func TestComputeBullet_ZeroRate(t *testing.T) {
	result := ComputeBullet(50000, 0, 3)
	if result.FinalPayment != 50000 {
		t.Errorf("zero-rate bullet FinalPayment = %.2f, expected the principal", result.FinalPayment)
	}
	if result.TotalInterest != 0 {
		t.Errorf("zero-rate bullet TotalInterest = %.2f, expected 0", result.TotalInterest)
	}
}
