package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records RED metrics per registered route.
type HTTPMetrics struct {
	reqs *prometheus.CounterVec
	durs *prometheus.HistogramVec
}

// NewHTTPMetrics creates the HTTP collectors and registers them with reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	const (
		namespace = "partsdesk"
		subsystem = "http"
	)

	m := &HTTPMetrics{
		reqs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Number of HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),
		durs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests by route and method",
			Buckets:   prometheus.ExponentialBuckets(1e-3, 4, 8),
		}, []string{"route", "method"}),
	}
	reg.MustRegister(m.reqs, m.durs)
	return m
}

// Instrument returns middleware that observes requests under the given
// route label. Use the mux pattern, not the raw path, to bound cardinality.
func (m *HTTPMetrics) Instrument(route string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			m.durs.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
			m.reqs.WithLabelValues(route, r.Method, strconv.Itoa(sw.status)).Inc()
		})
	}
}
