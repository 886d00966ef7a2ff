package finance

import (
	"math"

	"github.com/quantfold/tvm/internal/common"
)

// Rate solves the annuity equation for the periodic interest rate via
// Newton's method, from a caller-supplied starting guess.
//
// There is no guard against a zero derivative mid-iteration: it produces
// Inf/NaN which propagates through the remaining steps, fails the tolerance
// test and ends as ErrNoConvergence.
type Rate struct {
	Nper    float64
	Pmt     float64
	Pv      float64
	Fv      float64
	When    When
	Guess   float64
	Tol     float64
	MaxIter int

	// Logger, when set, traces convergence progress. Informational only;
	// never required for correctness.
	Logger *common.Logger
}

// NewRate builds a Rate solver with the given annuity parameters, starting
// guess, convergence tolerance and iteration budget.
func NewRate(nper, pmt, pv, fv float64, when When, guess, tol float64, maxIter int) *Rate {
	return &Rate{Nper: nper, Pmt: pmt, Pv: pv, Fv: fv, When: when, Guess: guess, Tol: tol, MaxIter: maxIter}
}

// gDivGp evaluates g(r)/g'(r) for the annuity equation
// g(r) = fv + pv*(1+r)^nper + pmt*(1+r*when)/r*((1+r)^nper - 1).
func (rt *Rate) gDivGp(r float64) float64 {
	n := rt.Nper
	w := rt.When.Weight()

	t1 := math.Pow(r+1, n)
	t2 := math.Pow(r+1, n-1)

	g := rt.Fv + t1*rt.Pv + rt.Pmt*(t1-1)*(r*w+1)/r
	gp := n*t2*rt.Pv -
		rt.Pmt*(t1-1)*(r*w+1)/(r*r) +
		n*rt.Pmt*t2*(r*w+1)/r +
		rt.Pmt*(t1-1)*w/r
	return g / gp
}

// Get returns the converged rate, or ErrNoConvergence when MaxIter elapses
// without the step size dropping below Tol.
func (rt *Rate) Get() (float64, error) {
	rn := rt.Guess
	for iter := 1; iter <= rt.MaxIter; iter++ {
		next := rn - rt.gDivGp(rn)
		diff := math.Abs(next - rn)
		rn = next
		if diff < rt.Tol {
			if rt.Logger != nil {
				rt.Logger.Debug().
					Float64("rate", rn).
					Int("iterations", iter).
					Msg("Rate solver converged")
			}
			return rn, nil
		}
	}
	if rt.Logger != nil {
		rt.Logger.Debug().
			Float64("last_rate", rn).
			Int("max_iterations", rt.MaxIter).
			Msg("Rate solver exhausted iteration budget")
	}
	return 0, ErrNoConvergence
}
