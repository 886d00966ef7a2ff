package finance

// ScheduleRow is one period of an amortization schedule. Interest plus
// principal equals the (constant) payment; Balance is the value remaining
// after this period's payment.
type ScheduleRow struct {
	Period    int     `json:"period"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// AmortizationSchedule expands a fixed-payment annuity into per-period rows
// by composing Payment, InterestPayment, PrincipalPayment and FutureValue
// over payment indexes 1..nper. ErrNoSolution is returned when nper < 1.
func AmortizationSchedule(rate float64, nper int, pv, fv float64, when When) ([]ScheduleRow, error) {
	if nper < 1 {
		return nil, ErrNoSolution
	}

	totalPmt := NewPayment(rate, float64(nper), pv, fv, when).Get()

	rows := make([]ScheduleRow, 0, nper)
	for per := 1; per <= nper; per++ {
		interest, err := NewInterestPayment(rate, per, float64(nper), pv, fv, when).Get()
		if err != nil {
			return nil, err
		}
		principal, err := NewPrincipalPayment(rate, per, float64(nper), pv, fv, when).Get()
		if err != nil {
			return nil, err
		}
		balance := NewFutureValue(rate, float64(per), totalPmt, pv, when).Get()

		rows = append(rows, ScheduleRow{
			Period:    per,
			Payment:   totalPmt,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}
	return rows, nil
}
