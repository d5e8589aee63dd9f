package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/soda-stock/docs"
	"github.com/rogerio-castellano/soda-stock/internal/http/handlers"
	mw "github.com/rogerio-castellano/soda-stock/internal/http/middleware"
	rl "github.com/rogerio-castellano/soda-stock/internal/http/rate_limiter"
	"github.com/rogerio-castellano/soda-stock/internal/logger"
	"github.com/rogerio-castellano/soda-stock/internal/metrics"
)

// Deps are the collaborators the router mounts. Limiter, Recorder and
// Gatherer are optional. TrustProxy makes forwarded headers the client address.
type Deps struct {
	TrustProxy bool

	Logger   *logger.Logger
	Sodas    *handlers.SodaHandler
	Metrics  *handlers.MetricsHandler
	Health   *handlers.HealthHandler
	Limiter  *rl.Limiter
	Recorder *metrics.Recorder
	Gatherer prometheus.Gatherer
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()

	if d.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(mw.RequestID(d.Logger))
	r.Use(mw.Logging(d.Logger))
	r.Use(mw.Recoverer(d.Logger))
	r.Use(mw.Metrics(d.Recorder))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, handlers.CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	if d.Health != nil {
		r.Get("/health/live", d.Health.Live)
		r.Get("/health/ready", d.Health.Ready)
	}

	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(mw.RateLimit(d.Limiter, d.Logger))
		}

		r.Route("/sodas", func(r chi.Router) {
			r.Post("/", d.Sodas.Create)
			r.Get("/", d.Sodas.List)
			r.Get("/{name}", d.Sodas.GetByName)
			r.Delete("/{id}", d.Sodas.Delete)
			r.Patch("/{id}/increment", d.Sodas.Increment)
			r.Patch("/{id}/decrement", d.Sodas.Decrement)
		})
		r.Get("/soda-sizes", d.Sodas.Sizes)

		if d.Metrics != nil {
			r.Get("/metrics/dashboard", d.Metrics.GetDashboard)
		}
	})

	return r
}
