// Package params is the validated parameter layer in front of the finance
// core. A Map carries named, kind-tagged values; accessors return a typed
// value or a descriptive missing/wrong-kind error, and the per-formula
// builders construct core entities only after every required field has
// resolved. The core never sees malformed input.
package params

import (
	"fmt"
	"math"

	"github.com/spf13/cast"

	"github.com/quantfold/tvm/internal/finance"
)

// Field names accepted by the builders.
const (
	FieldRate         = "rate"
	FieldNper         = "nper"
	FieldPmt          = "pmt"
	FieldPv           = "pv"
	FieldFv           = "fv"
	FieldWhen         = "when"
	FieldPer          = "per"
	FieldGuess        = "guess"
	FieldTol          = "tol"
	FieldMaxIter      = "maxiter"
	FieldValues       = "values"
	FieldFinanceRate  = "finance_rate"
	FieldReinvestRate = "reinvest_rate"
)

var (
	// ErrMissingField indicates a required field is absent from the map.
	ErrMissingField = fmt.Errorf("missing required field")

	// ErrWrongKind indicates a field is present but holds a different kind
	// than the accessor expects.
	ErrWrongKind = fmt.Errorf("field holds wrong kind")
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindWhen
	KindValues
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindWhen:
		return "when"
	case KindValues:
		return "values"
	}
	return "unknown"
}

// Value is a tagged union holding exactly one of the supported parameter
// kinds. Construct through Float, Int, WhenValue or Values.
type Value struct {
	kind   Kind
	num    float64
	whole  int
	when   finance.When
	series []float64
}

// Float wraps a float64 parameter.
func Float(v float64) Value { return Value{kind: KindFloat, num: v} }

// Int wraps an integer parameter.
func Int(v int) Value { return Value{kind: KindInt, whole: v} }

// WhenValue wraps a payment-timing parameter.
func WhenValue(w finance.When) Value { return Value{kind: KindWhen, when: w} }

// Values wraps a cash-flow series parameter.
func Values(vs []float64) Value { return Value{kind: KindValues, series: vs} }

// Kind returns the variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// Map is a named parameter set for one formula evaluation.
type Map map[string]Value

// Float64 returns the named float field. An integer field is widened; any
// other kind is a wrong-kind error.
func (m Map) Float64(field string) (float64, error) {
	v, ok := m[field]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	switch v.kind {
	case KindFloat:
		return v.num, nil
	case KindInt:
		return float64(v.whole), nil
	}
	return 0, fmt.Errorf("%w: %s holds %s, want float", ErrWrongKind, field, v.kind)
}

// Int returns the named integer field. A float field is accepted only when
// it is integral.
func (m Map) Int(field string) (int, error) {
	v, ok := m[field]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	switch v.kind {
	case KindInt:
		return v.whole, nil
	case KindFloat:
		if v.num == math.Trunc(v.num) && !math.IsInf(v.num, 0) {
			return int(v.num), nil
		}
		return 0, fmt.Errorf("%w: %s holds non-integral float %v, want int", ErrWrongKind, field, v.num)
	}
	return 0, fmt.Errorf("%w: %s holds %s, want int", ErrWrongKind, field, v.kind)
}

// When returns the named payment-timing field. The numeric encoding is part
// of the contract, so integer 0/1 is accepted alongside KindWhen.
func (m Map) When(field string) (finance.When, error) {
	v, ok := m[field]
	if !ok {
		return finance.End, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	switch v.kind {
	case KindWhen:
		return v.when, nil
	case KindInt:
		switch v.whole {
		case 0:
			return finance.End, nil
		case 1:
			return finance.Begin, nil
		}
	case KindFloat:
		switch v.num {
		case 0:
			return finance.End, nil
		case 1:
			return finance.Begin, nil
		}
	}
	return finance.End, fmt.Errorf("%w: %s must be \"end\", \"begin\", 0 or 1", ErrWrongKind, field)
}

// Series returns the named cash-flow series field.
func (m Map) Series(field string) ([]float64, error) {
	v, ok := m[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	if v.kind != KindValues {
		return nil, fmt.Errorf("%w: %s holds %s, want values", ErrWrongKind, field, v.kind)
	}
	return v.series, nil
}

// FromJSON converts a decoded JSON object into a Map. JSON numbers become
// Float, strings are parsed as payment timing, and arrays become Values
// with each element coerced to float64. Anything else is rejected with a
// descriptive error.
func FromJSON(raw map[string]any) (Map, error) {
	m := make(Map, len(raw))
	for key, val := range raw {
		switch tv := val.(type) {
		case string:
			w, err := finance.ParseWhen(tv)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", key, err)
			}
			m[key] = WhenValue(w)
		case []any:
			series := make([]float64, len(tv))
			for i, el := range tv {
				f, err := cast.ToFloat64E(el)
				if err != nil {
					return nil, fmt.Errorf("field %s[%d]: %w", key, i, err)
				}
				series[i] = f
			}
			m[key] = Values(series)
		default:
			f, err := cast.ToFloat64E(val)
			if err != nil {
				return nil, fmt.Errorf("field %s: expected a number, string or array: %w", key, err)
			}
			m[key] = Float(f)
		}
	}
	return m, nil
}
