package server

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run binds every server, then serves them until ctx is cancelled or one of
// them fails. All listeners are bound before any traffic is accepted, so a
// bind failure aborts startup and closes whatever was already bound.
// Cancellation triggers a graceful shutdown bounded by shutdownTimeout and
// yields a nil error; a serve failure is returned.
func Run(ctx context.Context, logger *zap.Logger, shutdownTimeout time.Duration, servers ...*HTTPServer) error {
	for i, s := range servers {
		if err := s.Listen(); err != nil {
			closeAll(logger, servers[:i])
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, s := range servers {
		g.Go(s.Serve)
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var err error
		for _, s := range servers {
			err = errors.Join(err, s.Shutdown(shutdownCtx))
		}
		return err
	})

	err := g.Wait()
	logger.Info("Server stopped", zap.Bool("graceful", err == nil))
	return err
}

func closeAll(logger *zap.Logger, servers []*HTTPServer) {
	for _, s := range servers {
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Warn("Failed to close listener", zap.String("server", s.Name()), zap.Error(err))
		}
	}
}
