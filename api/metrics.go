package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metricsCollector tracks request counts and latency for Prometheus scrapes.
type metricsCollector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func newMetricsCollector(reg prometheus.Registerer) *metricsCollector {
	c := &metricsCollector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blog_api_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blog_api_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(c.requests, c.latency)

	return c
}

// middleware records every request against its chi route pattern, so path
// parameters don't blow up label cardinality.
func (c *metricsCollector) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		c.requests.WithLabelValues(r.Method, route, strconv.Itoa(srw.status)).Inc()
		c.latency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// metricsHandler returns the Prometheus scrape endpoint.
func metricsHandler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
