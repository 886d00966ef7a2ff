package finance

// InterestPayment computes the interest portion of the periodic payment for
// payment index Per (1-based), by discounting the balance remaining after
// Per-1 payments.
type InterestPayment struct {
	Rate float64
	Per  int
	Nper float64
	Pv   float64
	Fv   float64
	When When
}

// NewInterestPayment builds an InterestPayment for payment index per
// (1-based) out of nper total periods.
func NewInterestPayment(rate float64, per int, nper, pv, fv float64, when When) *InterestPayment {
	return &InterestPayment{Rate: rate, Per: per, Nper: nper, Pv: pv, Fv: fv, When: when}
}

// Get returns the interest portion of payment Per, or ErrNoSolution when
// Per < 1. With begin-of-period payments the first payment carries no
// interest (nothing has accrued yet), and later payments discount the
// remaining balance by one period.
func (ip *InterestPayment) Get() (float64, error) {
	if ip.Per < 1 {
		return 0, ErrNoSolution
	}

	totalPmt := NewPayment(ip.Rate, ip.Nper, ip.Pv, ip.Fv, ip.When).Get()

	// Balance remaining after Per-1 payments.
	rbl := NewFutureValue(ip.Rate, float64(ip.Per-1), totalPmt, ip.Pv, ip.When).Get()

	if ip.When == Begin {
		if ip.Per == 1 {
			return 0, nil
		}
		return rbl / (1 + ip.Rate) * ip.Rate, nil
	}
	return rbl * ip.Rate, nil
}
