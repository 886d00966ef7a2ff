// Package finance implements the closed-form annuity formulas and the
// iterative rate solvers for time-value-of-money calculations: future value,
// present value, payment, number of periods, payment splits, net present
// value, IRR, MIRR and periodic rate.
//
// Every formula is an immutable parameter bundle evaluated by Get. Results
// follow three distinct channels: NaN/±Inf are legitimate numeric outcomes
// for ill-posed inputs and pass through untouched; ErrNoSolution and
// ErrNoConvergence signal a defined "no solution" outcome; input validation
// failures never originate here (see the params package).
package finance

import (
	"fmt"
	"strings"
)

// When marks whether each period's payment occurs at the start or end of
// the period.
type When int

const (
	// End means payments are due at the end of each period.
	End When = iota
	// Begin means payments are due at the start of each period.
	Begin
)

// Weight returns the numeric weight the annuity formulas multiply against
// the rate term: End is 0.0, Begin is 1.0. The encoding is part of the
// formula contract, independent of declaration order.
func (w When) Weight() float64 {
	if w == Begin {
		return 1.0
	}
	return 0.0
}

func (w When) String() string {
	if w == Begin {
		return "begin"
	}
	return "end"
}

// ParseWhen converts "end"/"begin" (or "0"/"1") to a When value.
func ParseWhen(s string) (When, error) {
	switch strings.ToLower(s) {
	case "end", "0":
		return End, nil
	case "begin", "1":
		return Begin, nil
	}
	return End, fmt.Errorf("invalid when value %q: must be \"end\" or \"begin\"", s)
}
