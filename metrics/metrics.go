package metrics

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trekhub",
		Name:      "http_requests_total",
		Help:      "The total number of HTTP requests",
	}, []string{"method", "status"})

	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "trekhub",
		Name:      "http_request_duration_seconds",
		Help:      "Time taken to serve HTTP requests",
		Buckets:   prometheus.DefBuckets,
	})

	ChangeEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trekhub",
		Name:      "change_events_published_total",
		Help:      "The total number of change events published per collection",
	}, []string{"collection"})
)

// Handler serves the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack keeps websocket upgrades working through the middleware chain.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hj.Hijack()
}

// Middleware records request counts and durations.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		RequestsTotal.WithLabelValues(r.Method, http.StatusText(rec.status)).Inc()
		RequestDuration.Observe(time.Since(start).Seconds())
	})
}
