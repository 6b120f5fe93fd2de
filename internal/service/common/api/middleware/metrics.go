package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics holds the request collectors.  The route label is the registered ServeMux pattern rather than
// the raw path so that identifiers do not explode the label cardinality.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the request collectors with the given registerer
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)
	return &HTTPMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "epms",
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests served, by method, route and status code.",
		}, []string{"method", "route", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "epms",
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Middleware records one observation per request
func (m *HTTPMetrics) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			d := &durationLogger{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(d, r)

			method, route := methodLabel(r.Method), r.Pattern
			if route == "" {
				method, route = otherMethod, "unmatched"
			}
			m.requests.WithLabelValues(method, route, strconv.Itoa(d.statusCode)).Inc()
			m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		})
	}
}

const otherMethod = "other"

// methodLabel keeps the method label bounded, clients can send any token as the method
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions:
		return method
	default:
		return otherMethod
	}
}
