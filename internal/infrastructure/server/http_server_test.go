package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/Aidin1998/goodbye/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true}`)
	})
}

func newTestServer(t *testing.T, name string) *HTTPServer {
	t.Helper()
	return newLoggedTestServer(t, name, zap.NewNop())
}

func newLoggedTestServer(t *testing.T, name string, logger *zap.Logger) *HTTPServer {
	t.Helper()
	s, err := NewHTTPServer(HTTPServerOptions{
		Name:    name,
		Addr:    "127.0.0.1:0",
		Config:  config.Default().Server,
		Handler: okHandler(),
		Logger:  logger,
	})
	require.NoError(t, err)
	return s
}

func TestNewHTTPServer_RequiresOptions(t *testing.T) {
	_, err := NewHTTPServer(HTTPServerOptions{Logger: zap.NewNop()})
	assert.Error(t, err)

	_, err = NewHTTPServer(HTTPServerOptions{Handler: okHandler()})
	assert.Error(t, err)
}

func TestNewHTTPServer_DefaultsToConfigAddress(t *testing.T) {
	s, err := NewHTTPServer(HTTPServerOptions{
		Config:  config.Default().Server,
		Handler: okHandler(),
		Logger:  zap.NewNop(),
	})
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", s.addr)
	assert.Equal(t, "http", s.Name())
	assert.Nil(t, s.Addr())
}

func TestHTTPServer_ListenOnce(t *testing.T) {
	s := newTestServer(t, "api")
	require.NoError(t, s.Listen())
	defer s.Shutdown(context.Background())

	assert.NotNil(t, s.Addr())
	assert.Error(t, s.Listen())
}

func TestHTTPServer_BindFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	s, err := NewHTTPServer(HTTPServerOptions{
		Addr:    taken.Addr().String(),
		Handler: okHandler(),
		Logger:  zap.NewNop(),
	})
	require.NoError(t, err)

	assert.Error(t, s.Listen())
	assert.Nil(t, s.Addr())
}

func TestHTTPServer_ServeWithoutListen(t *testing.T) {
	s := newTestServer(t, "api")
	assert.Error(t, s.Serve())
}

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	s := newTestServer(t, "api")
	require.NoError(t, s.Listen())

	done := make(chan error, 1)
	go func() { done <- s.Serve() }()

	resp, err := http.Get("http://" + s.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"ok":true}`, string(body))

	require.NoError(t, s.Shutdown(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}

func TestHTTPServer_ShutdownReleasesUnservedListener(t *testing.T) {
	s := newTestServer(t, "api")
	require.NoError(t, s.Listen())
	addr := s.Addr().String()

	require.NoError(t, s.Shutdown(context.Background()))

	ln, err := net.Listen("tcp", addr)
	require.NoError(t, err)
	ln.Close()
}
