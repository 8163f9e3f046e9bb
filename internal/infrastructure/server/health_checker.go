package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	HealthStatusUp   HealthStatus = "UP"
	HealthStatusDown HealthStatus = "DOWN"
)

// ComponentHealth represents the health of a single component
type ComponentHealth struct {
	Status HealthStatus `json:"status"`
	Error  string       `json:"error,omitempty"`
}

// HealthReport represents the overall health report
type HealthReport struct {
	Status     HealthStatus                `json:"status"`
	Timestamp  time.Time                   `json:"timestamp"`
	Components map[string]*ComponentHealth `json:"components"`
}

// HealthCheckFunc reports an error when the component is unhealthy
type HealthCheckFunc func(ctx context.Context) error

// HealthChecker runs registered liveness checks
type HealthChecker struct {
	mu     sync.RWMutex
	checks map[string]HealthCheckFunc
}

// NewHealthChecker creates a health checker with no checks registered
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{checks: make(map[string]HealthCheckFunc)}
}

// RegisterHealthCheck registers a named check, replacing any previous one
func (hc *HealthChecker) RegisterHealthCheck(name string, check HealthCheckFunc) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checks[name] = check
}

// ListenerCheck reports DOWN until s has bound its listener and again once
// it has been shut down
func ListenerCheck(s *HTTPServer) HealthCheckFunc {
	return func(context.Context) error {
		if !s.Listening() {
			return fmt.Errorf("%s server is not listening", s.Name())
		}
		return nil
	}
}

// CheckHealth runs every check; any failing check marks the report DOWN
func (hc *HealthChecker) CheckHealth(ctx context.Context) *HealthReport {
	hc.mu.RLock()
	defer hc.mu.RUnlock()

	report := &HealthReport{
		Status:     HealthStatusUp,
		Timestamp:  time.Now().UTC(),
		Components: make(map[string]*ComponentHealth, len(hc.checks)),
	}

	for name, check := range hc.checks {
		component := &ComponentHealth{Status: HealthStatusUp}
		if err := check(ctx); err != nil {
			component.Status = HealthStatusDown
			component.Error = err.Error()
			report.Status = HealthStatusDown
		}
		report.Components[name] = component
	}

	return report
}

// HealthHandler returns an HTTP handler for health checks
func (hc *HealthChecker) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := hc.CheckHealth(r.Context())

		w.Header().Set("Content-Type", "application/json")
		if report.Status == HealthStatusUp {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		_ = json.NewEncoder(w).Encode(report)
	}
}
