// Package metrics exposes prometheus metrics for the forum API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "forum"

// Collector holds every metric the service records.
type Collector struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	inFlight      prometheus.Gauge
	indexSyncs    *prometheus.CounterVec
	indexLastSync prometheus.Gauge
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		}),
		indexSyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "thread_index_syncs_total",
			Help:      "Thread index resync runs by result",
		}, []string{"result"}),
		indexLastSync: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "thread_index_last_success_timestamp_seconds",
			Help:      "Unix time of the last successful thread index resync",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.duration,
		c.inFlight,
		c.indexSyncs,
		c.indexLastSync,
	)

	return c
}

// RequestStarted raises the in-flight gauge. The returned func lowers it and
// must run even when the handler panics.
func (c *Collector) RequestStarted() (done func()) {
	c.inFlight.Inc()
	return c.inFlight.Dec
}

// ObserveRequest records a finished request. path must be the route
// template, not the raw URL, to keep label cardinality bounded.
func (c *Collector) ObserveRequest(method, path string, status int, d time.Duration) {
	c.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(method, path).Observe(d.Seconds())
}

func (c *Collector) RecordIndexSync(err error) {
	if err != nil {
		c.indexSyncs.WithLabelValues("failure").Inc()
		return
	}
	c.indexSyncs.WithLabelValues("success").Inc()
	c.indexLastSync.SetToCurrentTime()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
