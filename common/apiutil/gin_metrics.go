package apiutil

import (
	"strconv"
	"time"

	"github.com/Aidin1998/goodbye/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// UnmatchedRoute labels requests that fell through to the NoRoute handler so
// arbitrary client paths never become label values.
const UnmatchedRoute = "unmatched"

const meterName = "github.com/Aidin1998/goodbye/common/apiutil"

// MetricsMiddleware records HTTP request counts and durations for Prometheus
// and mirrors the request count to the global OpenTelemetry meter.
func MetricsMiddleware() gin.HandlerFunc {
	requests, err := otel.Meter(meterName).Int64Counter("http.server.request.count",
		metric.WithDescription("Number of HTTP requests served"))
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = UnmatchedRoute
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(route, method, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())

		if requests != nil {
			requests.Add(c.Request.Context(), 1, metric.WithAttributes(
				attribute.String("http.route", route),
				attribute.String("http.request.method", method),
				attribute.Int("http.response.status_code", c.Writer.Status()),
			))
		}
	}
}
