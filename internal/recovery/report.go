package recovery

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func WriteScan(w io.Writer, res ScanResult) error {
	if _, err := fmt.Fprintf(w, "Scan: %d active (%d bytes), %d deleted (%d bytes)\n",
		res.Active, res.ActiveBytes, res.Deleted, res.DeletedBytes); err != nil {
		return err
	}
	if len(res.DeletedEntries) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tSIZE\tCREATED")
	for _, e := range res.DeletedEntries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Name, e.Path, e.Size, e.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}

func WriteAnalysis(w io.Writer, a Analysis) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total space:\t%d bytes\n", a.TotalSpace)
	fmt.Fprintf(tw, "Used space:\t%d bytes (%.2f%%)\n", a.UsedSpace, a.UsagePercent)
	fmt.Fprintf(tw, "Free space:\t%d bytes\n", a.FreeSpace)
	fmt.Fprintf(tw, "Slots:\t%d/%d\n", a.Slots, a.MaxFiles)
	fmt.Fprintf(tw, "Active files:\t%d\n", a.Active)
	fmt.Fprintf(tw, "Deleted files:\t%d (%d bytes reclaimable)\n", a.Deleted, a.ReclaimableBytes)
	fmt.Fprintf(tw, "Fragmentation:\t%.2f%%\n", a.Fragmentation*100)
	if a.LargestName != "" {
		fmt.Fprintf(tw, "Largest file:\t%s (%d bytes)\n", a.LargestName, a.LargestSize)
	}
	return tw.Flush()
}

func WriteOptimization(w io.Writer, res OptimizationResult) error {
	_, err := fmt.Fprintf(w, "Optimized: removed %d deleted entries, slots %d -> %d, fragmentation %.2f%% -> %.2f%%\n",
		res.Removed, res.Before.Slots, res.After.Slots, res.Before.Fragmentation*100, res.After.Fragmentation*100)
	return err
}
