package server

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/quantfold/tvm/internal/finance"
	"github.com/quantfold/tvm/internal/params"
	"github.com/quantfold/tvm/internal/storage"
)

// EvalResponse is the outcome of one formula evaluation. Exactly one of the
// three channels is populated: a finite result, a degenerate marker for
// NaN/Inf (which JSON cannot carry as numbers), or no_solution when the
// formula has no answer for the inputs.
type EvalResponse struct {
	Result     *float64 `json:"result"`
	Degenerate string   `json:"degenerate,omitempty"`
	NoSolution bool     `json:"no_solution,omitempty"`
}

func degenerateMarker(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return ""
}

// respond classifies an evaluation outcome, writes the response and records
// the evaluation in history. Input errors never reach here.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, formula string, inputs map[string]any, value float64, err error) {
	var resp EvalResponse
	switch {
	case err != nil:
		resp.NoSolution = true
	case degenerateMarker(value) != "":
		resp.Degenerate = degenerateMarker(value)
	default:
		v := value
		resp.Result = &v
	}

	s.recordEvaluation(r, formula, inputs, resp)
	WriteJSON(w, http.StatusOK, resp)
}

// recordEvaluation saves the evaluation to history. Failures are logged and
// swallowed so history never breaks an evaluation.
func (s *Server) recordEvaluation(r *http.Request, formula string, inputs map[string]any, resp EvalResponse) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ev := storage.Evaluation{
		Formula:       formula,
		Inputs:        inputs,
		Result:        resp.Result,
		Degenerate:    resp.Degenerate,
		NoSolution:    resp.NoSolution,
		CorrelationID: r.Header.Get("X-Correlation-ID"),
		EvaluatedAt:   time.Now().UTC(),
	}
	if err := s.app.History.Save(ctx, ev); err != nil {
		s.logger.Warn().Err(err).Str("formula", formula).Msg("Failed to save evaluation history")
	}
}

// decodeParams decodes the request body into a parameter map. A false return
// means the error response has already been written.
func (s *Server) decodeParams(w http.ResponseWriter, r *http.Request) (params.Map, map[string]any, bool) {
	if !RequireMethod(w, r, http.MethodPost) {
		return nil, nil, false
	}
	var raw map[string]any
	if !DecodeJSON(w, r, &raw) {
		return nil, nil, false
	}
	m, err := params.FromJSON(raw)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return nil, nil, false
	}
	return m, raw, true
}

func (s *Server) handleFutureValue(w http.ResponseWriter, r *http.Request) {
	m, raw, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	fv, err := params.BuildFutureValue(m)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respond(w, r, "fv", raw, fv.Get(), nil)
}

func (s *Server) handlePresentValue(w http.ResponseWriter, r *http.Request) {
	m, raw, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	pv, err := params.BuildPresentValue(m)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respond(w, r, "pv", raw, pv.Get(), nil)
}

func (s *Server) handlePayment(w http.ResponseWriter, r *http.Request) {
	m, raw, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	pmt, err := params.BuildPayment(m)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respond(w, r, "pmt", raw, pmt.Get(), nil)
}

func (s *Server) handleNumberOfPeriods(w http.ResponseWriter, r *http.Request) {
	m, raw, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	nper, err := params.BuildNumberOfPeriods(m)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	value, evalErr := nper.Get()
	s.respond(w, r, "nper", raw, value, evalErr)
}

func (s *Server) handleInterestPayment(w http.ResponseWriter, r *http.Request) {
	m, raw, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	ipmt, err := params.BuildInterestPayment(m)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	value, evalErr := ipmt.Get()
	s.respond(w, r, "ipmt", raw, value, evalErr)
}

func (s *Server) handlePrincipalPayment(w http.ResponseWriter, r *http.Request) {
	m, raw, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	ppmt, err := params.BuildPrincipalPayment(m)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	value, evalErr := ppmt.Get()
	s.respond(w, r, "ppmt", raw, value, evalErr)
}

func (s *Server) handleNetPresentValue(w http.ResponseWriter, r *http.Request) {
	m, raw, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	npv, err := params.BuildNetPresentValue(m)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respond(w, r, "npv", raw, npv.Get(), nil)
}

func (s *Server) handleInternalRateOfReturn(w http.ResponseWriter, r *http.Request) {
	m, raw, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	irr, err := params.BuildInternalRateOfReturn(m)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	value, evalErr := irr.Get()
	s.respond(w, r, "irr", raw, value, evalErr)
}

func (s *Server) handleRate(w http.ResponseWriter, r *http.Request) {
	m, raw, ok := s.decodeParams(w, r)
	if !ok {
		return
	}

	// Server-configured solver defaults apply when the request omits them.
	solver := s.app.Config.Solver
	if _, present := m[params.FieldGuess]; !present {
		m[params.FieldGuess] = params.Float(solver.Guess)
	}
	if _, present := m[params.FieldTol]; !present {
		m[params.FieldTol] = params.Float(solver.Tol)
	}
	if _, present := m[params.FieldMaxIter]; !present {
		m[params.FieldMaxIter] = params.Int(solver.MaxIter)
	}

	rt, err := params.BuildRate(m)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	rt.Logger = s.logger
	value, evalErr := rt.Get()
	s.respond(w, r, "rate", raw, value, evalErr)
}

func (s *Server) handleModifiedInternalRateOfReturn(w http.ResponseWriter, r *http.Request) {
	m, raw, ok := s.decodeParams(w, r)
	if !ok {
		return
	}
	mirr, err := params.BuildModifiedInternalRateOfReturn(m)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	value, evalErr := mirr.Get()
	s.respond(w, r, "mirr", raw, value, evalErr)
}

// handleSchedule handles POST /api/schedule. With ?format=png the schedule is
// rendered as a balance/interest chart instead of JSON rows.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	m, _, ok := s.decodeParams(w, r)
	if !ok {
		return
	}

	rate, err := m.Float64(params.FieldRate)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	nper, err := m.Int(params.FieldNper)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	pv, err := m.Float64(params.FieldPv)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	fv := 0.0
	if _, present := m[params.FieldFv]; present {
		if fv, err = m.Float64(params.FieldFv); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	when := finance.End
	if _, present := m[params.FieldWhen]; present {
		if when, err = m.When(params.FieldWhen); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	rows, err := finance.AmortizationSchedule(rate, nper, pv, fv, when)
	if err != nil {
		if errors.Is(err, finance.ErrNoSolution) {
			WriteError(w, http.StatusBadRequest, "No amortization schedule exists for these inputs")
			return
		}
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if r.URL.Query().Get("format") == "png" {
		png, err := RenderScheduleChart(rows)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to render schedule chart")
			WriteError(w, http.StatusInternalServerError, "Failed to render chart")
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(png)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"periods": len(rows),
		"rows":    rows,
	})
}
