package finance

import "fmt"

var (
	// ErrNoSolution indicates a formula's domain precondition failed and no
	// real solution exists (per < 1 on payment splits, rate <= -1 on the
	// period count, unmixed cash-flow signs on IRR/MIRR).
	ErrNoSolution = fmt.Errorf("no real solution exists")

	// ErrNoConvergence indicates an iterative solver exhausted its iteration
	// budget without converging.
	ErrNoConvergence = fmt.Errorf("newton-raphson failed to converge within max iterations")
)
