package finance

import "math"

// Payment solves the annuity equation for the periodic payment, given rate,
// number of periods, present value, future value and payment timing.
type Payment struct {
	Rate float64
	Nper float64
	Pv   float64
	Fv   float64
	When When
}

// NewPayment builds a Payment from rate, number of periods, present value,
// future value and payment timing.
func NewPayment(rate, nper, pv, fv float64, when When) *Payment {
	return &Payment{Rate: rate, Nper: nper, Pv: pv, Fv: fv, When: when}
}

// Get returns the payment per period. A zero rate divides by Nper, so
// Nper 0 yields NaN/Inf; that degeneracy is not guarded here.
func (p *Payment) Get() float64 {
	if p.Rate == 0 {
		return -(p.Pv + p.Fv) / p.Nper
	}
	growth := math.Pow(1+p.Rate, p.Nper)
	fact := (1 + p.Rate*p.When.Weight()) / p.Rate * (growth - 1)
	return -(p.Fv + p.Pv*growth) / fact
}
