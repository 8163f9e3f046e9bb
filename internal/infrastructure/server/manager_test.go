package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func waitForAddr(t *testing.T, s *HTTPServer) string {
	t.Helper()
	require.Eventually(t, func() bool { return s.Addr() != nil }, 5*time.Second, 10*time.Millisecond)
	return s.Addr().String()
}

func TestRun_GracefulOnCancel(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	api := newLoggedTestServer(t, "api", logger)
	admin := newLoggedTestServer(t, "admin", logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, logger, time.Second, api, admin) }()

	for _, s := range []*HTTPServer{api, admin} {
		addr := waitForAddr(t, s)
		require.Eventually(t, func() bool {
			resp, err := http.Get("http://" + addr + "/")
			if err != nil {
				return false
			}
			resp.Body.Close()
			return resp.StatusCode == http.StatusOK
		}, 5*time.Second, 10*time.Millisecond)
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.Equal(t, 2, logs.FilterMessage("Server listening").Len())
	assert.Equal(t, 1, logs.FilterMessage("Server stopped").Len())
}

func TestRun_BindFailureAbortsStartup(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	first := newTestServer(t, "api")
	second, err := NewHTTPServer(HTTPServerOptions{
		Name:    "admin",
		Addr:    taken.Addr().String(),
		Handler: okHandler(),
		Logger:  zap.NewNop(),
	})
	require.NoError(t, err)

	err = Run(context.Background(), zap.NewNop(), time.Second, first, second)
	require.Error(t, err)

	// the listener bound before the failure is released again
	ln, err := net.Listen("tcp", first.Addr().String())
	require.NoError(t, err)
	ln.Close()
}
