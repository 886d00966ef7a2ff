package finance

import "math"

// NetPresentValue discounts a cash-flow series to period 0. The first
// element of Values is assumed to occur at t=0 and is not discounted.
// Sign convention: outflows negative, inflows positive.
type NetPresentValue struct {
	Values []float64
	Rate   float64
}

// NewNetPresentValue builds a NetPresentValue over the given cash flows at
// the given discount rate.
func NewNetPresentValue(values []float64, rate float64) *NetPresentValue {
	return &NetPresentValue{Values: values, Rate: rate}
}

// Get returns sum(values[i] * (1+rate)^-i). A rate of -1 divides by zero
// and the resulting Inf/NaN passes through unguarded.
func (n *NetPresentValue) Get() float64 {
	npv := 0.0
	for i, v := range n.Values {
		npv += v * math.Pow(1+n.Rate, -float64(i))
	}
	return npv
}
