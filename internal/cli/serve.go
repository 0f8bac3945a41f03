package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/config"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/controllers"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/grpcutil"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/launcher"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/metrics"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/recovery"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/server"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/catalogrpc"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/logging"
	"google.golang.org/grpc"
)

// NewServeCmd creates the serve subcommand, which exposes a catalog over gRPC.
func NewServeCmd(opts *rootOptions) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a catalog over gRPC",
		Long: `Serve a catalog over gRPC until interrupted.

Alongside the gRPC server this starts a Prometheus endpoint on the metrics port
(unless it is 0) and the background compaction controller (unless disabled).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, opts.logger)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host, overrides the config")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port, overrides the config")

	return cmd
}

func runServe(ctx context.Context, cfg *config.AppConfig, baseLogger *slog.Logger) error {
	logger := logging.ServiceLogger(baseLogger, common.ComponentServer, slog.String(common.LogCatalogID, cfg.Catalog.ID))

	store := catalog.NewSyncCatalog(newCatalog(cfg, logger))

	grpcServer := grpc.NewServer(grpcutil.ServerOptions(logger)...)
	catalogrpc.RegisterCatalogServiceServer(grpcServer,
		server.NewCatalogServer(server.NewService(store, recovery.NewReporter(logger))))

	listener, err := net.Listen("tcp", cfg.Server.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Address(), err)
	}

	var components []launcher.Component

	if cfg.Server.MetricsPort > 0 {
		if err := metrics.RegisterCatalog(store, cfg.Catalog.ID); err != nil {
			listener.Close()
			return fmt.Errorf("failed to register catalog metrics: %w", err)
		}
		metricsListener, err := net.Listen("tcp", cfg.Server.MetricsAddress())
		if err != nil {
			listener.Close()
			return fmt.Errorf("failed to listen on %s: %w", cfg.Server.MetricsAddress(), err)
		}

		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		components = append(components, launcher.HTTPComponent("metrics server", srv, metricsListener, cfg.Server.ShutdownTimeout))
		logger.Info("Serving metrics", slog.String(common.LogDetails, metricsListener.Addr().String()))
	}

	if cfg.Compaction.Enabled {
		components = append(components, launcher.Component{
			Name: "compaction controller",
			Run: func(ctx context.Context) error {
				return controllers.NewCompactionController(ctx, store, &cfg.Compaction, logger).Run()
			},
		})
	}

	return launcher.Launch(ctx, logger, grpcServer, listener, cfg.Server.ShutdownTimeout, components...)
}
