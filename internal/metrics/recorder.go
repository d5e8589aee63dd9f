package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sodastock"

const (
	DirectionIncrement = "increment"
	DirectionDecrement = "decrement"

	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Recorder exports stock and HTTP metrics. A nil *Recorder records nothing.
type Recorder struct {
	adjustments     *prometheus.CounterVec
	created         prometheus.Counter
	deleted         prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

// NewRecorder registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return &Recorder{}
	}
	adjustments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_adjustments_total",
		Help:      "Stock adjustments by direction and outcome.",
	}, []string{"direction", "outcome"})
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sodas_created_total",
		Help:      "Sodas registered.",
	})
	deleted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sodas_deleted_total",
		Help:      "Sodas removed.",
	})
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	reg.MustRegister(adjustments, created, deleted, requestDuration)
	return &Recorder{
		adjustments:     adjustments,
		created:         created,
		deleted:         deleted,
		requestDuration: requestDuration,
	}
}

func (r *Recorder) StockAdjusted(direction, outcome string) {
	if r == nil || r.adjustments == nil {
		return
	}
	r.adjustments.WithLabelValues(direction, outcome).Inc()
}

func (r *Recorder) SodaCreated() {
	if r == nil || r.created == nil {
		return
	}
	r.created.Inc()
}

func (r *Recorder) SodaDeleted() {
	if r == nil || r.deleted == nil {
		return
	}
	r.deleted.Inc()
}

// ObserveRequest records one HTTP request. route should be the matched
// pattern, not the raw path, to keep label cardinality bounded.
func (r *Recorder) ObserveRequest(method, route string, status int, duration time.Duration) {
	if r == nil || r.requestDuration == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
