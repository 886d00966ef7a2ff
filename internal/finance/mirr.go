package finance

import "math"

// ModifiedInternalRateOfReturn computes the MIRR of a cash-flow series with
// distinct rates for borrowing (negative flows) and reinvestment (positive
// flows). No iteration is involved.
type ModifiedInternalRateOfReturn struct {
	Values       []float64
	FinanceRate  float64
	ReinvestRate float64
}

// NewModifiedInternalRateOfReturn builds a ModifiedInternalRateOfReturn over
// the given cash flows, finance rate and reinvestment rate.
func NewModifiedInternalRateOfReturn(values []float64, financeRate, reinvestRate float64) *ModifiedInternalRateOfReturn {
	return &ModifiedInternalRateOfReturn{Values: values, FinanceRate: financeRate, ReinvestRate: reinvestRate}
}

// Get returns the modified internal rate of return, or ErrNoSolution unless
// the series contains at least one value <= 0 and at least one value > 0.
// This is a looser "any" check than IRR's all-same-sign test, on purpose.
// A single-element series cannot satisfy it, so the 1/(n-1) exponent never
// divides by zero on the success path.
func (m *ModifiedInternalRateOfReturn) Get() (float64, error) {
	anyNonPositive := false
	anyPositive := false
	for _, v := range m.Values {
		if v <= 0 {
			anyNonPositive = true
		} else {
			anyPositive = true
		}
	}
	if !anyNonPositive || !anyPositive {
		return 0, ErrNoSolution
	}

	// Partition by sign, preserving position so discounting keeps each
	// flow at its original period.
	negFlows := make([]float64, len(m.Values))
	posFlows := make([]float64, len(m.Values))
	for i, v := range m.Values {
		if v < 0 {
			negFlows[i] = v
		} else if v > 0 {
			posFlows[i] = v
		}
	}

	numer := math.Abs(NewNetPresentValue(posFlows, m.ReinvestRate).Get())
	denom := math.Abs(NewNetPresentValue(negFlows, m.FinanceRate).Get())

	n := float64(len(m.Values))
	return math.Pow(numer/denom, 1/(n-1))*(1+m.ReinvestRate) - 1, nil
}
