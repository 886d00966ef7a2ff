package finance

import "math"

// PresentValue solves the annuity equation for pv, given rate, number of
// periods, periodic payment, future value and payment timing.
type PresentValue struct {
	Rate float64
	Nper float64
	Pmt  float64
	Fv   float64
	When When
}

// NewPresentValue builds a PresentValue from rate, number of periods,
// periodic payment, future value and payment timing.
func NewPresentValue(rate, nper, pmt, fv float64, when When) *PresentValue {
	return &PresentValue{Rate: rate, Nper: nper, Pmt: pmt, Fv: fv, When: when}
}

// Get returns the present value of the payment series.
func (p *PresentValue) Get() float64 {
	if p.Rate == 0 {
		return -p.Fv - p.Pmt*p.Nper
	}
	growth := math.Pow(1+p.Rate, p.Nper)
	fact := (1 + p.Rate*p.When.Weight()) * (growth - 1) / p.Rate
	return -(p.Fv + p.Pmt*fact) / growth
}
