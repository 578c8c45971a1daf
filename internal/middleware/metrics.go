package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var routeLabels = []string{"method", "route", "status"}

// HTTPMetrics records per-route request counters, latency and response size.
type HTTPMetrics struct {
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	size     *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)
	return &HTTPMetrics{
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "shoppy",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Requests currently being served.",
		}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shoppy",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Served requests by route and status code.",
		}, routeLabels),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shoppy",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time to serve a request.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, routeLabels),
		size: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shoppy",
			Subsystem: "http",
			Name:      "response_size_bytes",
			Help:      "Response body size.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 7),
		}, routeLabels),
	}
}

// Metrics instruments handlers against the default registry.
var Metrics = NewHTTPMetrics(prometheus.DefaultRegisterer).Handler

func (m *HTTPMetrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		started := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		labels := prometheus.Labels{
			"method": r.Method,
			"route":  routePattern(r),
			"status": strconv.Itoa(status),
		}
		m.requests.With(labels).Inc()
		m.latency.With(labels).Observe(time.Since(started).Seconds())
		m.size.With(labels).Observe(float64(ww.BytesWritten()))
	})
}

// routePattern keeps label cardinality bounded: unmatched paths share one label.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
