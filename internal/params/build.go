package params

import (
	"fmt"

	"github.com/quantfold/tvm/internal/finance"
)

// Builders construct finance entities from a Map, failing before the core
// runs when a required field is absent or mistyped. The `when` field is
// optional and defaults to end-of-period, matching the documented default
// of the formulas. Rate's guess/tol/maxiter are optional with the
// conventional 0.1 / 1e-6 / 100 defaults.

func buildErr(formula string, err error) error {
	return fmt.Errorf("building %s: %w", formula, err)
}

// whenOrEnd resolves the optional `when` field.
func (m Map) whenOrEnd() (finance.When, error) {
	if _, ok := m[FieldWhen]; !ok {
		return finance.End, nil
	}
	return m.When(FieldWhen)
}

func (m Map) floatOr(field string, fallback float64) (float64, error) {
	if _, ok := m[field]; !ok {
		return fallback, nil
	}
	return m.Float64(field)
}

func (m Map) intOr(field string, fallback int) (int, error) {
	if _, ok := m[field]; !ok {
		return fallback, nil
	}
	return m.Int(field)
}

// BuildFutureValue constructs a FutureValue from rate, nper, pmt, pv, when.
func BuildFutureValue(m Map) (*finance.FutureValue, error) {
	rate, err := m.Float64(FieldRate)
	if err != nil {
		return nil, buildErr("fv", err)
	}
	nper, err := m.Float64(FieldNper)
	if err != nil {
		return nil, buildErr("fv", err)
	}
	pmt, err := m.Float64(FieldPmt)
	if err != nil {
		return nil, buildErr("fv", err)
	}
	pv, err := m.Float64(FieldPv)
	if err != nil {
		return nil, buildErr("fv", err)
	}
	when, err := m.whenOrEnd()
	if err != nil {
		return nil, buildErr("fv", err)
	}
	return finance.NewFutureValue(rate, nper, pmt, pv, when), nil
}

// BuildPresentValue constructs a PresentValue from rate, nper, pmt, fv, when.
func BuildPresentValue(m Map) (*finance.PresentValue, error) {
	rate, err := m.Float64(FieldRate)
	if err != nil {
		return nil, buildErr("pv", err)
	}
	nper, err := m.Float64(FieldNper)
	if err != nil {
		return nil, buildErr("pv", err)
	}
	pmt, err := m.Float64(FieldPmt)
	if err != nil {
		return nil, buildErr("pv", err)
	}
	fv, err := m.Float64(FieldFv)
	if err != nil {
		return nil, buildErr("pv", err)
	}
	when, err := m.whenOrEnd()
	if err != nil {
		return nil, buildErr("pv", err)
	}
	return finance.NewPresentValue(rate, nper, pmt, fv, when), nil
}

// BuildPayment constructs a Payment from rate, nper, pv, fv, when.
func BuildPayment(m Map) (*finance.Payment, error) {
	rate, err := m.Float64(FieldRate)
	if err != nil {
		return nil, buildErr("pmt", err)
	}
	nper, err := m.Float64(FieldNper)
	if err != nil {
		return nil, buildErr("pmt", err)
	}
	pv, err := m.Float64(FieldPv)
	if err != nil {
		return nil, buildErr("pmt", err)
	}
	fv, err := m.Float64(FieldFv)
	if err != nil {
		return nil, buildErr("pmt", err)
	}
	when, err := m.whenOrEnd()
	if err != nil {
		return nil, buildErr("pmt", err)
	}
	return finance.NewPayment(rate, nper, pv, fv, when), nil
}

// BuildNumberOfPeriods constructs a NumberOfPeriods from rate, pmt, pv, fv,
// when.
func BuildNumberOfPeriods(m Map) (*finance.NumberOfPeriods, error) {
	rate, err := m.Float64(FieldRate)
	if err != nil {
		return nil, buildErr("nper", err)
	}
	pmt, err := m.Float64(FieldPmt)
	if err != nil {
		return nil, buildErr("nper", err)
	}
	pv, err := m.Float64(FieldPv)
	if err != nil {
		return nil, buildErr("nper", err)
	}
	fv, err := m.Float64(FieldFv)
	if err != nil {
		return nil, buildErr("nper", err)
	}
	when, err := m.whenOrEnd()
	if err != nil {
		return nil, buildErr("nper", err)
	}
	return finance.NewNumberOfPeriods(rate, pmt, pv, fv, when), nil
}

// BuildInterestPayment constructs an InterestPayment from rate, per, nper,
// pv, fv, when.
func BuildInterestPayment(m Map) (*finance.InterestPayment, error) {
	rate, err := m.Float64(FieldRate)
	if err != nil {
		return nil, buildErr("ipmt", err)
	}
	per, err := m.Int(FieldPer)
	if err != nil {
		return nil, buildErr("ipmt", err)
	}
	nper, err := m.Float64(FieldNper)
	if err != nil {
		return nil, buildErr("ipmt", err)
	}
	pv, err := m.Float64(FieldPv)
	if err != nil {
		return nil, buildErr("ipmt", err)
	}
	fv, err := m.Float64(FieldFv)
	if err != nil {
		return nil, buildErr("ipmt", err)
	}
	when, err := m.whenOrEnd()
	if err != nil {
		return nil, buildErr("ipmt", err)
	}
	return finance.NewInterestPayment(rate, per, nper, pv, fv, when), nil
}

// BuildPrincipalPayment constructs a PrincipalPayment from rate, per, nper,
// pv, fv, when.
func BuildPrincipalPayment(m Map) (*finance.PrincipalPayment, error) {
	ip, err := BuildInterestPayment(m)
	if err != nil {
		return nil, buildErr("ppmt", err)
	}
	return finance.NewPrincipalPayment(ip.Rate, ip.Per, ip.Nper, ip.Pv, ip.Fv, ip.When), nil
}

// BuildNetPresentValue constructs a NetPresentValue from rate and values.
func BuildNetPresentValue(m Map) (*finance.NetPresentValue, error) {
	rate, err := m.Float64(FieldRate)
	if err != nil {
		return nil, buildErr("npv", err)
	}
	values, err := m.Series(FieldValues)
	if err != nil {
		return nil, buildErr("npv", err)
	}
	return finance.NewNetPresentValue(values, rate), nil
}

// BuildInternalRateOfReturn constructs an InternalRateOfReturn from values.
func BuildInternalRateOfReturn(m Map) (*finance.InternalRateOfReturn, error) {
	values, err := m.Series(FieldValues)
	if err != nil {
		return nil, buildErr("irr", err)
	}
	return finance.NewInternalRateOfReturn(values), nil
}

// BuildRate constructs a Rate solver from nper, pmt, pv, fv, when and the
// optional guess/tol/maxiter.
func BuildRate(m Map) (*finance.Rate, error) {
	nper, err := m.Float64(FieldNper)
	if err != nil {
		return nil, buildErr("rate", err)
	}
	pmt, err := m.Float64(FieldPmt)
	if err != nil {
		return nil, buildErr("rate", err)
	}
	pv, err := m.Float64(FieldPv)
	if err != nil {
		return nil, buildErr("rate", err)
	}
	fv, err := m.Float64(FieldFv)
	if err != nil {
		return nil, buildErr("rate", err)
	}
	when, err := m.whenOrEnd()
	if err != nil {
		return nil, buildErr("rate", err)
	}
	guess, err := m.floatOr(FieldGuess, 0.1)
	if err != nil {
		return nil, buildErr("rate", err)
	}
	tol, err := m.floatOr(FieldTol, 1e-6)
	if err != nil {
		return nil, buildErr("rate", err)
	}
	maxIter, err := m.intOr(FieldMaxIter, 100)
	if err != nil {
		return nil, buildErr("rate", err)
	}
	return finance.NewRate(nper, pmt, pv, fv, when, guess, tol, maxIter), nil
}

// BuildModifiedInternalRateOfReturn constructs a MIRR from values,
// finance_rate and reinvest_rate.
func BuildModifiedInternalRateOfReturn(m Map) (*finance.ModifiedInternalRateOfReturn, error) {
	values, err := m.Series(FieldValues)
	if err != nil {
		return nil, buildErr("mirr", err)
	}
	financeRate, err := m.Float64(FieldFinanceRate)
	if err != nil {
		return nil, buildErr("mirr", err)
	}
	reinvestRate, err := m.Float64(FieldReinvestRate)
	if err != nil {
		return nil, buildErr("mirr", err)
	}
	return finance.NewModifiedInternalRateOfReturn(values, financeRate, reinvestRate), nil
}
