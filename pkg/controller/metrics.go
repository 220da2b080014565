package controller

import (
	"heritage/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Name:    "heritage_http_request_duration_seconds",
	Help:    "Latency of HTTP requests by method, route and status code.",
	Buckets: metrics.DefaultBuckets,
}, []string{"method", "route", "status"})

// WithMetrics returns a middleware that observes the latency of every request
// labelled by its chi route pattern, so that path parameters do not explode
// the label cardinality. It must run inside a chi router.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		requestDuration.
			WithLabelValues(r.Method, routePattern(r), strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
