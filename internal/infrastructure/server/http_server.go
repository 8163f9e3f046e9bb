package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/Aidin1998/goodbye/internal/infrastructure/config"
	"go.uber.org/zap"
)

// HTTPServer owns one listener and the http.Server serving it
type HTTPServer struct {
	name     string
	addr     string
	logger   *zap.Logger
	server   *http.Server
	mu       sync.Mutex
	listener net.Listener
	closed   bool
}

// HTTPServerOptions contains options for creating an HTTPServer
type HTTPServerOptions struct {
	// Name identifies the server in logs, e.g. "api" or "admin"
	Name    string
	Addr    string
	Config  config.ServerConfig
	Handler http.Handler
	Logger  *zap.Logger
}

// NewHTTPServer creates a new HTTP server. Nothing is bound until Listen.
func NewHTTPServer(opts HTTPServerOptions) (*HTTPServer, error) {
	if opts.Handler == nil {
		return nil, fmt.Errorf("HTTP handler is required")
	}
	if opts.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if opts.Addr == "" {
		opts.Addr = opts.Config.Address()
	}
	if opts.Name == "" {
		opts.Name = "http"
	}

	return &HTTPServer{
		name:   opts.Name,
		addr:   opts.Addr,
		logger: opts.Logger.With(zap.String("server", opts.Name)),
		server: &http.Server{
			Addr:              opts.Addr,
			Handler:           opts.Handler,
			ReadTimeout:       opts.Config.ReadTimeout,
			ReadHeaderTimeout: opts.Config.ReadHeaderTimeout,
			WriteTimeout:      opts.Config.WriteTimeout,
			IdleTimeout:       opts.Config.IdleTimeout,
			MaxHeaderBytes:    opts.Config.MaxHeaderBytes,
		},
	}, nil
}

// Name returns the server name used in logs
func (s *HTTPServer) Name() string {
	return s.name
}

// Listen binds the TCP listener. It is attempted exactly once; a second call
// returns an error instead of rebinding.
func (s *HTTPServer) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return fmt.Errorf("%s server already listening on %s", s.name, s.listener.Addr())
	}
	if s.closed {
		return fmt.Errorf("%s server is shut down", s.name)
	}

	s.logger.Info("Starting server", zap.String("addr", s.addr))

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s server on %s: %w", s.name, s.addr, err)
	}
	s.listener = ln

	s.logger.Info("Server listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Listening reports whether the listener is bound and not yet shut down
func (s *HTTPServer) Listening() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listener != nil && !s.closed
}

// Addr returns the bound address, or nil before Listen
func (s *HTTPServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve accepts connections until Shutdown. It returns nil after a graceful
// shutdown and the serve error otherwise.
func (s *HTTPServer) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	if ln == nil {
		return fmt.Errorf("%s server is not listening", s.name)
	}

	s.logger.Info("Server is now running", zap.String("addr", ln.Addr().String()))

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", s.name, err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires. It also releases a listener that was never served.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s server shutdown: %w", s.name, err)
	}

	// http.Server only tracks listeners passed to Serve
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("%s server close listener: %w", s.name, err)
		}
	}
	return nil
}
