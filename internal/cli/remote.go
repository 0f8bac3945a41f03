package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/clients"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/config"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/recovery"
)

// newRemoteCmds returns the commands that call a running catalog server.
func newRemoteCmds(opts *rootOptions) []*cobra.Command {
	cmds := []*cobra.Command{
		newCreateCmd(opts),
		newDeleteCmd(opts),
		newRecoverCmd(opts),
		newListCmd(opts),
		newOptimizeCmd(opts),
		newScanCmd(opts),
		newRecoverAllCmd(opts),
		newAnalyzeCmd(opts),
	}

	for _, cmd := range cmds {
		cmd.Flags().StringVar(&opts.addr, "addr", config.DefaultServerConfig().Address(), "Catalog server address")
		cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")
	}
	return cmds
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME PATH SIZE",
		Short: "Create a file entry",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[2], err)
			}

			return opts.withClient(cmd, func(ctx context.Context, client clients.ICatalogClient) error {
				usage, err := client.CreateFile(ctx, args[0], args[1], size)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s at %s (%d bytes)\n", args[0], args[1], size)
				writeUsage(cmd.OutOrStdout(), usage)
				return nil
			})
		},
	}
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete PATH",
		Short: "Delete the first active entry at PATH, keeping it recoverable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client clients.ICatalogClient) error {
				usage, err := client.DeleteFile(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				writeUsage(cmd.OutOrStdout(), usage)
				return nil
			})
		},
	}
}

func newRecoverCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recover PATH",
		Short: "Recover the first deleted entry at PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client clients.ICatalogClient) error {
				usage, err := client.RecoverFile(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recovered %s\n", args[0])
				writeUsage(cmd.OutOrStdout(), usage)
				return nil
			})
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var prefix bool

	cmd := &cobra.Command{
		Use:   "ls [FILTER]",
		Short: "List active files",
		Long: `List active files.

Without --prefix the historical filter applies: "/" lists everything and any
other FILTER lists the files whose path does NOT contain it. With --prefix,
the files whose path starts with FILTER are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := catalog.RootPath
			if len(args) > 0 {
				filter = args[0]
			}

			return opts.withClient(cmd, func(ctx context.Context, client clients.ICatalogClient) error {
				files, err := client.ListFiles(ctx, filter, prefix)
				if err != nil {
					return err
				}
				writeFiles(cmd.OutOrStdout(), filter, slices.Values(files))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&prefix, "prefix", false, "Match paths starting with FILTER")

	return cmd
}

func newOptimizeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Compact the catalog, dropping every deleted entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client clients.ICatalogClient) error {
				removed, usage, err := client.Optimize(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d deleted entries\n", removed)
				writeUsage(cmd.OutOrStdout(), usage)
				return nil
			})
		},
	}
}

func newScanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List deleted entries that can still be recovered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client clients.ICatalogClient) error {
				res, err := client.Scan(ctx)
				if err != nil {
					return err
				}
				return recovery.WriteScan(cmd.OutOrStdout(), res)
			})
		},
	}
}

func newRecoverAllCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "recover-all",
		Short: "Recover every deleted entry that still fits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client clients.ICatalogClient) error {
				res, err := client.RecoverAll(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recovered %d entries\n", res.Recovered)
				for _, path := range res.Failed {
					fmt.Fprintf(cmd.OutOrStdout(), "- failed: %s\n", path)
				}
				return res.Err
			})
		},
	}
}

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Report space usage and fragmentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client clients.ICatalogClient) error {
				a, err := client.Analyze(ctx)
				if err != nil {
					return err
				}
				return recovery.WriteAnalysis(cmd.OutOrStdout(), a)
			})
		},
	}
}
