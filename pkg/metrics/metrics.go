package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts served requests by route, method and status code.
// Unmatched requests share the route label "unmatched".
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "goodbye_http_requests_total",
		Help: "Total number of HTTP requests served by the API",
	},
	[]string{"route", "method", "status"},
)

// HTTPRequestDuration records request latency distribution
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "goodbye_http_request_duration_seconds",
		Help:    "Latency in seconds to serve HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"route", "method"},
)

// HTTPRequestsInFlight tracks requests currently being served
var HTTPRequestsInFlight = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "goodbye_http_requests_in_flight",
		Help: "Number of HTTP requests currently being served",
	},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, HTTPRequestsInFlight)
}
