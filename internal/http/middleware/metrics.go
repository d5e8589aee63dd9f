package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/soda-stock/internal/metrics"
)

// Metrics observes request durations labelled by the matched chi route.
func Metrics(rec *metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(sr, r)

			route := ""
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			rec.ObserveRequest(r.Method, route, sr.statusCode(), time.Since(start))
		})
	}
}
