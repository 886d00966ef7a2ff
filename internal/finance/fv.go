package finance

import "math"

// FutureValue solves the annuity equation
//
//	fv + pv*(1+rate)^nper + pmt*(1+rate*when)/rate*((1+rate)^nper - 1) = 0
//
// for fv, given the other four parameters. With rate 0 the equation reduces
// to fv + pv + pmt*nper = 0.
type FutureValue struct {
	Rate float64
	Nper float64
	Pmt  float64
	Pv   float64
	When When
}

// NewFutureValue builds a FutureValue from rate, number of periods, periodic
// payment, present value and payment timing.
func NewFutureValue(rate, nper, pmt, pv float64, when When) *FutureValue {
	return &FutureValue{Rate: rate, Nper: nper, Pmt: pmt, Pv: pv, When: when}
}

// Get returns the future value. Extreme inputs (e.g. rate <= -1 with a
// non-integer period count) yield NaN or Inf, returned as-is.
func (f *FutureValue) Get() float64 {
	if f.Rate == 0 {
		return -f.Pv - f.Pmt*f.Nper
	}
	growth := math.Pow(1+f.Rate, f.Nper)
	pvFuture := f.Pv * growth
	pmtFuture := f.Pmt * (1 + f.Rate*f.When.Weight()) / f.Rate * (growth - 1)
	return -pvFuture - pmtFuture
}
