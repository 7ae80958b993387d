package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tutor"

// metrics surface used by handlers and services
type Recorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordMint(outcome string)
	RecordSignup(state string)
}

type Collector struct {
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	mintOutcomes *prometheus.CounterVec
	signupStates *prometheus.CounterVec
}

// registers all collectors on reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		mintOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ephemeral_key_mints_total",
			Help:      "Realtime ephemeral key requests by outcome",
		}, []string{"outcome"}),
		signupStates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signups_total",
			Help:      "Sign-up attempts by final state",
		}, []string{"state"}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.mintOutcomes,
		c.signupStates,
	)

	return c
}

func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordMint(outcome string) {
	c.mintOutcomes.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordSignup(state string) {
	c.signupStates.WithLabelValues(state).Inc()
}

// records one observation per request, labelled by the matched route
// template so path ids do not explode cardinality
func Middleware(rec Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		rec.RecordRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// prometheus scrape handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// discards everything; used when metrics are disabled
type Noop struct{}

func (Noop) RecordRequest(string, string, int, time.Duration) {}
func (Noop) RecordMint(string)                                {}
func (Noop) RecordSignup(string)                              {}
