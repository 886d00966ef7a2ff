package finance

import "math"

// Default tolerances for FloatClose, used by the solvers' convergence tests
// and by the reference-value tests.
const (
	// RTol is the default relative tolerance.
	RTol = 1e-10
	// ATol is the default absolute tolerance.
	ATol = 1e-5
)

// FloatClose reports whether lhs and rhs are close enough to be treated as
// equal: the relative difference |lhs-rhs|/|rhs| is within rtol, or the
// absolute difference |lhs-rhs| is within atol. Either criterion suffices.
//
// When rhs is 0 the relative term degenerates to Inf/NaN and the absolute
// criterion is the effective test.
func FloatClose(lhs, rhs, rtol, atol float64) bool {
	relative := math.Abs((lhs-rhs)/rhs) <= rtol
	absolute := math.Abs(lhs-rhs) <= atol
	return relative || absolute
}
