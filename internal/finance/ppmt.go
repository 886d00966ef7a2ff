package finance

// PrincipalPayment computes the principal portion of the periodic payment
// for payment index Per (1-based): the total payment minus its interest
// portion.
type PrincipalPayment struct {
	Rate float64
	Per  int
	Nper float64
	Pv   float64
	Fv   float64
	When When
}

// NewPrincipalPayment builds a PrincipalPayment for payment index per
// (1-based) out of nper total periods.
func NewPrincipalPayment(rate float64, per int, nper, pv, fv float64, when When) *PrincipalPayment {
	return &PrincipalPayment{Rate: rate, Per: per, Nper: nper, Pv: pv, Fv: fv, When: when}
}

// Get returns the principal portion of payment Per. The Per < 1 precondition
// propagates from InterestPayment as ErrNoSolution.
func (pp *PrincipalPayment) Get() (float64, error) {
	totalPmt := NewPayment(pp.Rate, pp.Nper, pp.Pv, pp.Fv, pp.When).Get()

	interest, err := NewInterestPayment(pp.Rate, pp.Per, pp.Nper, pp.Pv, pp.Fv, pp.When).Get()
	if err != nil {
		return 0, err
	}
	return totalPmt - interest, nil
}
