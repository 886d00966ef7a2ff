package params

import (
	"errors"
	"testing"

	"github.com/quantfold/tvm/internal/finance"
)

func TestBuildFutureValue(t *testing.T) {
	m := Map{
		FieldRate: Float(0.075),
		FieldNper: Float(20),
		FieldPmt:  Float(-2000),
		FieldPv:   Float(0),
	}

	fv, err := BuildFutureValue(m)
	if err != nil {
		t.Fatalf("BuildFutureValue returned error: %v", err)
	}
	// `when` defaults to end-of-period.
	if fv.When != finance.End {
		t.Errorf("When = %v, want End", fv.When)
	}

	want := 86609.362673042924
	if got := fv.Get(); !finance.FloatClose(got, want, finance.RTol, finance.ATol) {
		t.Errorf("Get = %v, want %v", got, want)
	}
}

func TestBuildFutureValueMissingField(t *testing.T) {
	m := Map{FieldRate: Float(0.075)}
	if _, err := BuildFutureValue(m); !errors.Is(err, ErrMissingField) {
		t.Errorf("error = %v, want ErrMissingField", err)
	}
}

func TestBuildInterestPaymentRequiresInt(t *testing.T) {
	m := Map{
		FieldRate: Float(0.1 / 12),
		FieldPer:  Float(1.5),
		FieldNper: Float(24),
		FieldPv:   Float(2000),
		FieldFv:   Float(0),
	}
	if _, err := BuildInterestPayment(m); !errors.Is(err, ErrWrongKind) {
		t.Errorf("error = %v, want ErrWrongKind", err)
	}
}

func TestBuildRateDefaults(t *testing.T) {
	m := Map{
		FieldNper: Float(10),
		FieldPmt:  Float(0),
		FieldPv:   Float(-3500),
		FieldFv:   Float(10000),
	}

	rt, err := BuildRate(m)
	if err != nil {
		t.Fatalf("BuildRate returned error: %v", err)
	}
	if rt.Guess != 0.1 || rt.Tol != 1e-6 || rt.MaxIter != 100 {
		t.Errorf("solver defaults = %v/%v/%v, want 0.1/1e-6/100", rt.Guess, rt.Tol, rt.MaxIter)
	}

	got, err := rt.Get()
	if err != nil {
		t.Fatalf("Rate returned error: %v", err)
	}
	want := 0.11069085371426901
	if !finance.FloatClose(got, want, finance.RTol, finance.ATol) {
		t.Errorf("Rate = %v, want %v", got, want)
	}
}

func TestBuildModifiedInternalRateOfReturn(t *testing.T) {
	m := Map{
		FieldValues:       Values([]float64{100, 200, -50, 300, -200}),
		FieldFinanceRate:  Float(0.05),
		FieldReinvestRate: Float(0.06),
	}

	mirr, err := BuildModifiedInternalRateOfReturn(m)
	if err != nil {
		t.Fatalf("BuildModifiedInternalRateOfReturn returned error: %v", err)
	}

	got, err := mirr.Get()
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	want := 0.3428233878421769
	if !finance.FloatClose(got, want, finance.RTol, finance.ATol) {
		t.Errorf("Get = %v, want %v", got, want)
	}
}

func TestBuildNetPresentValueFromJSON(t *testing.T) {
	raw := map[string]any{
		"rate":   0.05,
		"values": []any{-15000.0, 1500.0, 2500.0, 3500.0, 4500.0, 6000.0},
	}
	m, err := FromJSON(raw)
	if err != nil {
		t.Fatalf("FromJSON returned error: %v", err)
	}

	npv, err := BuildNetPresentValue(m)
	if err != nil {
		t.Fatalf("BuildNetPresentValue returned error: %v", err)
	}

	want := 122.89485495093959
	if got := npv.Get(); !finance.FloatClose(got, want, finance.RTol, finance.ATol) {
		t.Errorf("Get = %v, want %v", got, want)
	}
}
