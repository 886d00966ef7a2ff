package finance

import "math"

const irrMaxIter = 100

// InternalRateOfReturn finds a discount rate r such that the net present
// value of the cash-flow series is zero, using Newton-Raphson iteration on
// the series treated as a polynomial in x = 1+r.
//
// Only the first root reached from the fixed starting point is returned: a
// series with multiple sign changes can have several mathematically valid
// rates, and this solver surfaces exactly one, chosen by iteration path.
type InternalRateOfReturn struct {
	Values []float64
}

// NewInternalRateOfReturn builds an InternalRateOfReturn over the given
// cash-flow series (index 0 = present).
func NewInternalRateOfReturn(values []float64) *InternalRateOfReturn {
	return &InternalRateOfReturn{Values: values}
}

// polyEval evaluates the cash-flow polynomial f(x) = sum v[n-1-k] * x^k,
// i.e. the series read as descending-power coefficients.
func polyEval(v []float64, x float64) float64 {
	n := len(v)
	f := 0.0
	for k := 0; k < n; k++ {
		f += v[n-1-k] * math.Pow(x, float64(k))
	}
	return f
}

// polyDeriv evaluates f'(x) = sum (k+1) * v[n-2-k] * x^k, the standard
// polynomial derivative with the constant term dropped.
func polyDeriv(v []float64, x float64) float64 {
	n := len(v)
	d := 0.0
	for k := 0; k < n-1; k++ {
		d += v[n-2-k] * float64(k+1) * math.Pow(x, float64(k))
	}
	return d
}

// findRoot runs Newton-Raphson from x = -0.9. A derivative tolerance-close
// to zero nudges x by +1.0 instead of dividing; the step still counts
// against the iteration budget.
func findRoot(v []float64) (float64, error) {
	x := -0.9
	for iter := 0; iter < irrMaxIter; iter++ {
		f := polyEval(v, x)
		d := polyDeriv(v, x)

		if FloatClose(d, 0, RTol, ATol) {
			x += 1.0
			continue
		}

		next := x - f/d
		if FloatClose(x, next, RTol, ATol) {
			return next, nil
		}
		x = next
	}
	return 0, ErrNoConvergence
}

// Get returns the internal rate of return. ErrNoSolution is returned when
// the series has fewer than two values or all values share one sign (all
// <= 0 or all > 0); ErrNoConvergence when the iteration budget runs out.
func (ir *InternalRateOfReturn) Get() (float64, error) {
	if len(ir.Values) <= 1 {
		return 0, ErrNoSolution
	}

	allNonPositive := true
	allPositive := true
	for _, v := range ir.Values {
		if v > 0 {
			allNonPositive = false
		} else {
			allPositive = false
		}
	}
	if allNonPositive || allPositive {
		return 0, ErrNoSolution
	}

	x, err := findRoot(ir.Values)
	if err != nil {
		return 0, err
	}
	// x = 1+r, convert the auxiliary root back to a rate.
	return x - 1, nil
}
