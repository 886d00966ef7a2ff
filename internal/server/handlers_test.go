package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantfold/tvm/internal/app"
	"github.com/quantfold/tvm/internal/common"
	"github.com/quantfold/tvm/internal/finance"
	"github.com/quantfold/tvm/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	config := common.NewDefaultConfig()
	config.Server.RateLimit = 0 // no limiting in tests
	a := &app.App{
		Config:  config,
		Logger:  common.NewSilentLogger(),
		History: storage.NewMemoryHistory(100),
	}
	return NewServer(a)
}

func postJSON(t *testing.T, handler http.Handler, path string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeEval(t *testing.T, rec *httptest.ResponseRecorder) EvalResponse {
	t.Helper()
	var resp EvalResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleFutureValue(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/fv", map[string]any{
		"rate": 0.075, "nper": 20, "pmt": -2000, "pv": 0,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEval(t, rec)
	require.NotNil(t, resp.Result)
	assert.True(t, finance.FloatClose(*resp.Result, 86609.362673042924, finance.RTol, finance.ATol))
	assert.False(t, resp.NoSolution)
	assert.Empty(t, resp.Degenerate)
}

func TestHandleFutureValueBeginString(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/fv", map[string]any{
		"rate": 0.075, "nper": 20, "pmt": -2000, "pv": 0, "when": "begin",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEval(t, rec)
	require.NotNil(t, resp.Result)
	assert.True(t, finance.FloatClose(*resp.Result, 93105.064874, finance.RTol, finance.ATol))
}

func TestHandleMissingField(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/fv", map[string]any{"rate": 0.075})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Contains(t, errResp.Error, "missing required field")
}

func TestHandleInvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/fv", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/fv", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleNumberOfPeriodsInfinite(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/nper", map[string]any{
		"rate": 0, "pmt": 0, "pv": 0, "fv": 100000,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEval(t, rec)
	assert.Nil(t, resp.Result)
	assert.Equal(t, "+inf", resp.Degenerate)
}

func TestHandleIRRNoSolution(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/irr", map[string]any{
		"values": []float64{100, 200, 300},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEval(t, rec)
	assert.Nil(t, resp.Result)
	assert.True(t, resp.NoSolution)
}

func TestHandleIRR(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/irr", map[string]any{
		"values": []float64{-150000, 15000, 25000, 35000, 45000, 60000},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEval(t, rec)
	require.NotNil(t, resp.Result)
	assert.True(t, finance.FloatClose(*resp.Result, 0.052432888859413884, finance.RTol, finance.ATol))
}

func TestHandleRateUsesConfiguredDefaults(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/rate", map[string]any{
		"nper": 10, "pmt": 0, "pv": -3500, "fv": 10000,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEval(t, rec)
	require.NotNil(t, resp.Result)
	assert.True(t, finance.FloatClose(*resp.Result, 0.11069085371426901, finance.RTol, finance.ATol))
}

func TestHandleMIRR(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/mirr", map[string]any{
		"values":        []float64{100, 200, -50, 300, -200},
		"finance_rate":  0.05,
		"reinvest_rate": 0.06,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEval(t, rec)
	require.NotNil(t, resp.Result)
	assert.True(t, finance.FloatClose(*resp.Result, 0.3428233878421769, finance.RTol, finance.ATol))
}

func TestHandleSchedule(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/schedule", map[string]any{
		"rate": 0.1 / 12, "nper": 12, "pv": 2500,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Periods int                   `json:"periods"`
		Rows    []finance.ScheduleRow `json:"rows"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 12, resp.Periods)
	require.Len(t, resp.Rows, 12)
	assert.True(t, finance.FloatClose(resp.Rows[11].Balance, 0, finance.RTol, finance.ATol))
}

func TestHandleSchedulePNG(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv.Handler(), "/api/schedule?format=png", map[string]any{
		"rate": 0.1 / 12, "nper": 12, "pv": 2500,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestHandleHistory(t *testing.T) {
	srv := newTestServer(t)

	postJSON(t, srv.Handler(), "/api/fv", map[string]any{
		"rate": 0.075, "nper": 20, "pmt": -2000, "pv": 0,
	})
	postJSON(t, srv.Handler(), "/api/irr", map[string]any{
		"values": []float64{100, 200, 300},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Count   int                  `json:"count"`
		Entries []storage.Evaluation `json:"entries"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, 2, resp.Count)
	// Newest first: the IRR no-solution evaluation.
	assert.Equal(t, "irr", resp.Entries[0].Formula)
	assert.True(t, resp.Entries[0].NoSolution)
	assert.Equal(t, "fv", resp.Entries[1].Formula)
	require.NotNil(t, resp.Entries[1].Result)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestBearerAuthRequired(t *testing.T) {
	config := common.NewDefaultConfig()
	config.Server.RateLimit = 0
	config.Auth.JWTSecret = "test-secret"
	a := &app.App{
		Config:  config,
		Logger:  common.NewSilentLogger(),
		History: storage.NewMemoryHistory(100),
	}
	srv := NewServer(a)

	// Formula endpoints demand a token.
	rec := postJSON(t, srv.Handler(), "/api/fv", map[string]any{
		"rate": 0.075, "nper": 20, "pmt": -2000, "pv": 0,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Health stays open for probes.
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	healthRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(healthRec, req)
	assert.Equal(t, http.StatusOK, healthRec.Code)
}

func TestCorrelationIDHeader(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc12345")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc12345", rec.Header().Get("X-Correlation-ID"))
}
