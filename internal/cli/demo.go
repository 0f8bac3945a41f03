package cli

import (
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/recovery"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/logging"
)

// NewDemoCmd creates the demo subcommand, which walks an in-process catalog
// through create, delete, scan, recover, analyze and optimize.
func NewDemoCmd(opts *rootOptions) *cobra.Command {
	var totalSpace uint64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted walkthrough against an in-process catalog",
		Long: `Run the scripted walkthrough against an in-process catalog.

Three files are created, one is deleted and recovered, then the catalog is
analyzed and optimized. Each step prints the listing or report it produced.
Activity is written to the configured activity log.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("total-space") {
				cfg.Catalog.TotalSpace = totalSpace
			}

			logger := logging.ServiceLogger(opts.logger, common.ComponentCLI)
			c := newCatalog(cfg, logger)
			return RunDemo(cmd.OutOrStdout(), c, recovery.NewReporter(logger))
		},
	}

	cmd.Flags().Uint64Var(&totalSpace, "total-space", 0, "Catalog capacity in bytes, overrides the config")

	return cmd
}

type demoFile struct {
	name string
	path string
	size uint64
}

var demoFiles = []demoFile{
	{"test1.txt", "/documents/test1.txt", 1024},
	{"test2.txt", "/documents/test2.txt", 2048},
	{"test3.txt", "/downloads/test3.txt", 4096},
}

// RunDemo runs the walkthrough against c, writing every listing and report to w.
func RunDemo(w io.Writer, c *catalog.Catalog, reporter *recovery.Reporter) error {
	for _, f := range demoFiles {
		if err := c.Create(f.name, f.path, f.size); err != nil {
			return fmt.Errorf("failed to create %s: %w", f.path, err)
		}
	}

	fmt.Fprintln(w, "Initial file system state:")
	writeFiles(w, catalog.RootPath, c.List(catalog.RootPath))

	deleted := demoFiles[0].path
	if err := c.Delete(deleted); err != nil {
		return fmt.Errorf("failed to delete %s: %w", deleted, err)
	}

	fmt.Fprintln(w, "\nAfter deletion:")
	writeFiles(w, catalog.RootPath, c.List(catalog.RootPath))

	fmt.Fprintln(w)
	if err := recovery.WriteScan(w, reporter.Scan(c)); err != nil {
		return err
	}

	if err := c.Recover(deleted); err != nil {
		return fmt.Errorf("failed to recover %s: %w", deleted, err)
	}

	fmt.Fprintln(w, "\nAfter recovery:")
	writeFiles(w, catalog.RootPath, c.List(catalog.RootPath))

	fmt.Fprintln(w)
	if err := recovery.WriteAnalysis(w, reporter.Analyze(c)); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if err := recovery.WriteOptimization(w, reporter.OptimizeAdvanced(c)); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nFinal file system state:")
	writeFiles(w, catalog.RootPath, c.List(catalog.RootPath))
	return nil
}

func writeFiles(w io.Writer, filter string, files iter.Seq[catalog.FileSummary]) {
	fmt.Fprintf(w, "Files in %s:\n", filter)
	for f := range files {
		fmt.Fprintf(w, "- %s (%d bytes)\n", f.Name, f.Size)
	}
}

func writeUsage(w io.Writer, u catalog.Usage) {
	fmt.Fprintf(w, "Space: %d of %d bytes used, %d free. Slots: %d active, %d deleted, %d max\n",
		u.UsedSpace, u.TotalSpace, u.FreeSpace, u.Active, u.Deleted, u.MaxFiles)
}
