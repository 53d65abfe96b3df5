package forecast

import (
	"math"
	"testing"
	"time"
)

func TestBurnSingleElementEqualsElement(t *testing.T) {
	if got := Burn([]float64{120}); got != 120 {
		t.Fatalf("Burn([120]) = %.2f, want 120", got)
	}
}

func TestBurnAllZerosIsZero(t *testing.T) {
	if got := Burn([]float64{0, 0, 0, 0}); got != 0 {
		t.Fatalf("Burn(zeros) = %.2f, want 0", got)
	}
}

func TestBurnEmptySeriesIsZero(t *testing.T) {
	if got := Burn(nil); got != 0 {
		t.Fatalf("Burn(nil) = %.2f, want 0", got)
	}
}

func TestBurnEWMAWeighting(t *testing.T) {
	// seed=100, then 0.4*200 + 0.6*100 = 140
	got := Burn([]float64{100, 200})
	if math.Abs(got-140) > 1e-9 {
		t.Fatalf("Burn([100 200]) = %.2f, want 140", got)
	}
}

func TestBurnSkipsNegativeEntries(t *testing.T) {
	if got := Burn([]float64{-5, 120}); got != 120 {
		t.Fatalf("Burn([-5 120]) = %.2f, want 120 (negative filtered, 120 seeds)", got)
	}
}

func TestProjectBalanceExact(t *testing.T) {
	f := Project(8000, 500, 1200, nil, time.Now())
	if f.Balance != 7300 {
		t.Fatalf("Balance = %.2f, want 7300", f.Balance)
	}
}

func TestProjectZeroBurnIsUnbounded(t *testing.T) {
	f := Project(8000, 0, 0, []float64{0, 0}, time.Now())
	if !f.Unbounded {
		t.Fatal("expected unbounded runway with zero burn")
	}
	if f.RunoutDate != nil {
		t.Fatalf("RunoutDate = %v, want nil", f.RunoutDate)
	}
}

func TestProjectScenarioA(t *testing.T) {
	// allowance=8000, one 120 spend on day 1: series=[120], burn=120,
	// balance=7880, daysLeft=floor(7880/120)=65.
	today := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := Project(8000, 0, 120, []float64{120}, today)

	if f.Balance != 7880 {
		t.Fatalf("Balance = %.2f, want 7880", f.Balance)
	}
	if f.Burn != 120 {
		t.Fatalf("Burn = %.2f, want 120", f.Burn)
	}
	if f.Unbounded {
		t.Fatal("unexpectedly unbounded")
	}
	if f.DaysLeft != 65 {
		t.Fatalf("DaysLeft = %d, want 65", f.DaysLeft)
	}
	wantRunout := today.AddDate(0, 0, 65)
	if f.RunoutDate == nil || !f.RunoutDate.Equal(wantRunout) {
		t.Fatalf("RunoutDate = %v, want %v", f.RunoutDate, wantRunout)
	}
}

func TestProjectNegativeBalanceClampsToZeroDays(t *testing.T) {
	f := Project(100, 0, 500, []float64{50}, time.Now())
	if f.Balance != -400 {
		t.Fatalf("Balance = %.2f, want -400", f.Balance)
	}
	if f.DaysLeft != 0 {
		t.Fatalf("DaysLeft = %d, want 0 (negative balance clamps)", f.DaysLeft)
	}
}

func TestProjectTruncatesPartialDays(t *testing.T) {
	// 100 / 30 = 3.33 days: never rounded up.
	f := Project(100, 0, 0, []float64{30}, time.Now())
	if f.DaysLeft != 3 {
		t.Fatalf("DaysLeft = %d, want 3", f.DaysLeft)
	}
}
