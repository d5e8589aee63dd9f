package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rl "github.com/rogerio-castellano/soda-stock/internal/http/rate_limiter"
	"github.com/rogerio-castellano/soda-stock/internal/logger"
	"github.com/rogerio-castellano/soda-stock/internal/metrics"
)

func bufferedLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: "debug", Output: buf})
}

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	buf := &bytes.Buffer{}
	logg := bufferedLogger(buf)

	var seen context.Context
	h := RequestID(logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Context()
		logg.Info(r.Context(), "inside")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.NotNil(t, seen)
	assert.Contains(t, buf.String(), id)
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	h := RequestID(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}

func TestLoggingRecordsStatus(t *testing.T) {
	buf := &bytes.Buffer{}
	h := Logging(bufferedLogger(buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/sodas", nil))

	out := buf.String()
	assert.Contains(t, out, "request.start")
	assert.Contains(t, out, "request.complete")
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"method":"POST"`)
}

func TestRecovererAnswers500(t *testing.T) {
	buf := &bytes.Buffer{}
	h := Recoverer(bufferedLogger(buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"internal_error","message":"internal error"}}`, w.Body.String())
	assert.Contains(t, buf.String(), "panic.recovered")
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	limiter := rl.New(1, 2, time.Minute)
	h := RateLimit(limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	r := chi.NewRouter()
	r.Use(Metrics(rec))
	r.Get("/sodas/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sodas/Mineiro", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sodas/Other", nil))

	count, err := testutil.GatherAndCount(reg, "sodastock_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
