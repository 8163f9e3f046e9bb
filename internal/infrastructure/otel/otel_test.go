package otel

import (
	"bytes"
	"context"
	"testing"

	"github.com/Aidin1998/goodbye/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup_Disabled(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Otel

	shutdown, err := Setup(context.Background(), cfg, WithWriter(&buf))
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	_, span := otel.Tracer("test").Start(context.Background(), "ignored")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Zero(t, buf.Len())
}

func TestSetup_NoneExporter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Otel
	cfg.Tracing = config.ExporterConfig{Enabled: true, Exporter: "none"}

	shutdown, err := Setup(context.Background(), cfg, WithWriter(&buf))
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
	assert.Zero(t, buf.Len())
}

func TestSetup_TracingAndMetrics(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default().Otel
	cfg.ServiceName = "goodbye-test"
	cfg.Tracing.Enabled = true
	cfg.Metrics.Enabled = true

	shutdown, err := Setup(context.Background(), cfg, WithWriter(&buf))
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "exported-span")
	span.End()

	counter, err := otel.Meter("test").Int64Counter("exported.counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	require.NoError(t, shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "exported-span")
	assert.Contains(t, out, "exported.counter")
	assert.Contains(t, out, "goodbye-test")
}

func TestBatchTimeoutIsPositive(t *testing.T) {
	assert.Positive(t, batchTimeout)
}
