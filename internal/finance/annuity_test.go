package finance

import (
	"errors"
	"math"
	"testing"
)

func TestFutureValueEnd(t *testing.T) {
	// npf.fv(0.075, 20, -2000, 0, 0) = 86609.362673042924
	fv := NewFutureValue(0.075, 20, -2000, 0, End)
	want := 86609.362673042924
	if got := fv.Get(); !closeTo(got, want) {
		t.Errorf("FutureValue = %v, want %v", got, want)
	}
}

func TestFutureValueBegin(t *testing.T) {
	// npf.fv(0.075, 20, -2000, 0, 1) = 93105.064874
	fv := NewFutureValue(0.075, 20, -2000, 0, Begin)
	want := 93105.064874
	if got := fv.Get(); !closeTo(got, want) {
		t.Errorf("FutureValue = %v, want %v", got, want)
	}
}

func TestFutureValueZeroRate(t *testing.T) {
	fv := NewFutureValue(0, 20, -100, 0, End)
	want := 2000.0
	if got := fv.Get(); !closeTo(got, want) {
		t.Errorf("FutureValue = %v, want %v", got, want)
	}
}

func TestPresentValueEnd(t *testing.T) {
	// npf.pv(0.07, 20, 12000, 0) = -127128.17094619398
	pv := NewPresentValue(0.07, 20, 12000, 0, End)
	want := -127128.17094619398
	if got := pv.Get(); !closeTo(got, want) {
		t.Errorf("PresentValue = %v, want %v", got, want)
	}
}

func TestPresentValueBegin(t *testing.T) {
	// npf.pv(0.07, 20, 12000, 0, 'begin') = -136027.14291242755
	pv := NewPresentValue(0.07, 20, 12000, 0, Begin)
	want := -136027.14291242755
	if got := pv.Get(); !closeTo(got, want) {
		t.Errorf("PresentValue = %v, want %v", got, want)
	}
}

func TestPresentValueZeroRate(t *testing.T) {
	pv := NewPresentValue(0, 20, 12000, 0, End)
	want := -240000.0
	if got := pv.Get(); !closeTo(got, want) {
		t.Errorf("PresentValue = %v, want %v", got, want)
	}
}

func TestPaymentEnd(t *testing.T) {
	// npf.pmt(0.08 / 12, 60, 15000) = -304.145914
	pmt := NewPayment(0.08/12, 60, 15000, 0, End)
	want := -304.145914
	if got := pmt.Get(); !closeTo(got, want) {
		t.Errorf("Payment = %v, want %v", got, want)
	}
}

func TestPaymentZeroRate(t *testing.T) {
	pmt := NewPayment(0, 60, 15000, 0, End)
	want := -250.0
	if got := pmt.Get(); !closeTo(got, want) {
		t.Errorf("Payment = %v, want %v", got, want)
	}
}

// A payment plugged back into the future-value equation must clear the debt.
func TestPaymentRoundTrip(t *testing.T) {
	rate := 0.06 / 12
	nper := 360.0
	pv := 250000.0

	for _, when := range []When{End, Begin} {
		pmt := NewPayment(rate, nper, pv, 0, when).Get()
		residual := NewFutureValue(rate, nper, pmt, pv, when).Get()
		if !FloatClose(residual, 0, RTol, ATol) {
			t.Errorf("when=%v: residual balance %v after paying %v per period", when, residual, pmt)
		}
	}
}

func TestNumberOfPeriods(t *testing.T) {
	// npf.nper(0.075, -2000, 0, 100000) = 21.544944
	nper := NewNumberOfPeriods(0.075, -2000, 0, 100000, End)
	got, err := nper.Get()
	if err != nil {
		t.Fatalf("NumberOfPeriods returned error: %v", err)
	}
	want := 21.544944
	if !closeTo(got, want) {
		t.Errorf("NumberOfPeriods = %v, want %v", got, want)
	}
}

func TestNumberOfPeriodsZeroRate(t *testing.T) {
	nper := NewNumberOfPeriods(0, -2000, 0, 100000, End)
	got, err := nper.Get()
	if err != nil {
		t.Fatalf("NumberOfPeriods returned error: %v", err)
	}
	want := 50.0
	if !closeTo(got, want) {
		t.Errorf("NumberOfPeriods = %v, want %v", got, want)
	}
}

func TestNumberOfPeriodsInfinite(t *testing.T) {
	// No rate and no payment: the target is never reached.
	nper := NewNumberOfPeriods(0, 0, 0, 100000, End)
	got, err := nper.Get()
	if err != nil {
		t.Fatalf("NumberOfPeriods returned error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("NumberOfPeriods = %v, want +Inf", got)
	}
}

func TestNumberOfPeriodsNoSolution(t *testing.T) {
	nper := NewNumberOfPeriods(-10, 0, 0, 100000, End)
	if _, err := nper.Get(); !errors.Is(err, ErrNoSolution) {
		t.Errorf("NumberOfPeriods error = %v, want ErrNoSolution", err)
	}
}
