// Package cli holds the cobra commands of the fsrecovery binary.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/clients"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/config"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/logging"
)

// rootOptions is shared by every subcommand. The persistent pre-run fills logger.
type rootOptions struct {
	configPath string
	logLevel   string
	addr       string
	timeout    time.Duration

	logger    *slog.Logger
	newClient func(target string) (clients.ICatalogClient, error)
}

func defaultRootOptions() *rootOptions {
	return &rootOptions{
		newClient: func(target string) (clients.ICatalogClient, error) {
			return clients.NewCatalogClient(target)
		},
	}
}

// NewRootCmd creates and returns the root cobra command for the fsrecovery CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultRootOptions())
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fsrecovery",
		Short: "fsrecovery - a file metadata catalog with soft deletion and recovery",
		Long: `fsrecovery keeps a fixed-capacity catalog of file metadata with space accounting.

Deleted entries are tombstoned and can be recovered until the catalog is optimized,
which compacts the table and drops every tombstone for good.

Use subcommands to perform different operations:
  - demo: run the scripted walkthrough against an in-process catalog
  - serve: expose a catalog over gRPC with metrics and background compaction
  - create, delete, recover, ls, optimize, scan, recover-all, analyze: talk to a running server`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.InitLogger()
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				level, err := logging.ParseLevel(opts.logLevel)
				if err != nil {
					return err
				}
				logger = logging.SetupTextLogger(cmd.ErrOrStderr(), level)
			}
			opts.logger = logger
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", ".", "Directory holding fsrecovery.yaml")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Process log level (debug, info, warn, error), overrides LOG_LEVEL")

	groupCatalog := "catalog"
	groupRemote := "remote"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupCatalog,
		Title: "Catalog Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupRemote,
		Title: "Remote Commands",
	})

	demoCmd := NewDemoCmd(opts)
	serveCmd := NewServeCmd(opts)
	demoCmd.GroupID = groupCatalog
	serveCmd.GroupID = groupCatalog
	rootCmd.AddCommand(demoCmd, serveCmd)

	for _, cmd := range newRemoteCmds(opts) {
		cmd.GroupID = groupRemote
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

func (o *rootOptions) loadConfig() (*config.AppConfig, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// withClient dials the server at o.addr and runs fn with a request deadline.
func (o *rootOptions) withClient(cmd *cobra.Command, fn func(ctx context.Context, client clients.ICatalogClient) error) error {
	client, err := o.newClient(o.addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", o.addr, err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()
	return fn(ctx, client)
}
