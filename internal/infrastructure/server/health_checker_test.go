package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthChecker_NoChecksIsUp(t *testing.T) {
	report := NewHealthChecker().CheckHealth(context.Background())

	assert.Equal(t, HealthStatusUp, report.Status)
	assert.Empty(t, report.Components)
}

func TestHealthChecker_FailingCheck(t *testing.T) {
	hc := NewHealthChecker()
	hc.RegisterHealthCheck("ok", func(context.Context) error { return nil })
	hc.RegisterHealthCheck("broken", func(context.Context) error { return errors.New("boom") })

	w := httptest.NewRecorder()
	hc.HealthHandler()(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var report HealthReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, HealthStatusDown, report.Status)
	assert.Equal(t, HealthStatusUp, report.Components["ok"].Status)
	assert.Equal(t, "boom", report.Components["broken"].Error)
}

func TestListenerCheck(t *testing.T) {
	s := newTestServer(t, "api")
	check := ListenerCheck(s)

	assert.Error(t, check(context.Background()))

	require.NoError(t, s.Listen())
	assert.NoError(t, check(context.Background()))

	require.NoError(t, s.Shutdown(context.Background()))
	assert.Error(t, check(context.Background()))
	assert.Error(t, s.Listen())
}
