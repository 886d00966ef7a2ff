package finance

import "math"

// NumberOfPeriods solves the annuity equation for the (real-valued, not
// necessarily integral) number of periods, given rate, periodic payment,
// present value, future value and payment timing.
type NumberOfPeriods struct {
	Rate float64
	Pmt  float64
	Pv   float64
	Fv   float64
	When When
}

// NewNumberOfPeriods builds a NumberOfPeriods from rate, periodic payment,
// present value, future value and payment timing.
func NewNumberOfPeriods(rate, pmt, pv, fv float64, when When) *NumberOfPeriods {
	return &NumberOfPeriods{Rate: rate, Pmt: pmt, Pv: pv, Fv: fv, When: when}
}

// Get returns the number of periods, or ErrNoSolution when rate <= -1 (the
// logarithm is undefined in the real domain). Special cases, in priority
// order: zero rate with zero payment returns +Inf (the balance never
// changes); zero rate alone reduces to -(fv+pv)/pmt. A non-positive log
// argument yields NaN, which is returned as a value, not as an error.
func (n *NumberOfPeriods) Get() (float64, error) {
	if n.Rate == 0 && n.Pmt == 0 {
		return math.Inf(1), nil
	}
	if n.Rate == 0 {
		return -(n.Fv + n.Pv) / n.Pmt, nil
	}
	if n.Rate <= -1 {
		return 0, ErrNoSolution
	}
	z := n.Pmt * (1 + n.Rate*n.When.Weight()) / n.Rate
	return math.Log((-n.Fv+z)/(n.Pv+z)) / math.Log(1+n.Rate), nil
}
