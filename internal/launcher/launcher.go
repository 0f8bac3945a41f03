package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

// Component is a long running piece of the process. Run must return once ctx is done.
type Component struct {
	Name string
	Run  func(ctx context.Context) error
}

// Launch serves grpcServer on listener and runs every component until SIGINT/SIGTERM,
// ctx cancellation, or the first failure. It then stops everything gracefully and
// returns the first error, if any.
func Launch(ctx context.Context, logger *slog.Logger, grpcServer *grpc.Server, listener net.Listener,
	shutdownTimeout time.Duration, components ...Component) error {

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// Start gRPC server
	g.Go(func() error {
		logger.Info(fmt.Sprintf("Starting gRPC server on %s", listener.Addr()))
		// Serve returns nil once GracefulStop or Stop was called
		if err := grpcServer.Serve(listener); err != nil {
			return fmt.Errorf("gRPC server failed: %w", err)
		}
		return nil
	})

	for _, c := range components {
		g.Go(func() error {
			if err := c.Run(gctx); err != nil {
				return fmt.Errorf("%s failed: %w", c.Name, err)
			}
			return nil
		})
	}

	// Wait for shutdown signal or error
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Initiating graceful shutdown", slog.String(common.LogDetails, context.Cause(gctx).Error()))
		stopGRPC(grpcServer, shutdownTimeout, logger)
		return nil
	})

	err := g.Wait()
	if err != nil {
		logger.Error("Shut down after failure", slog.String(common.LogError, err.Error()))
	} else {
		logger.Info("Server stopped")
	}
	return err
}

func stopGRPC(grpcServer *grpc.Server, timeout time.Duration, logger *slog.Logger) {
	stopDone := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopDone)
	}()

	select {
	case <-stopDone:
		logger.Info("gRPC server stopped gracefully")
	case <-time.After(timeout):
		logger.Info("Timeout waiting for gRPC server to stop gracefully, forcing stop")
		grpcServer.Stop()
	}
}

// HTTPComponent runs srv on lis as a Component, shutting it down within timeout once ctx is done.
func HTTPComponent(name string, srv *http.Server, lis net.Listener, timeout time.Duration) Component {
	return Component{
		Name: name,
		Run: func(ctx context.Context) error {
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Serve(lis) }()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
}
