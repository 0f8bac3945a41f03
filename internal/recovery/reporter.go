// Package recovery provides read-only analysis over a catalog and bulk recovery
// of tombstoned entries.
package recovery

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
)

// Source is the part of a catalog the Reporter reads and mutates.
type Source interface {
	Entries() iter.Seq2[int, catalog.Entry]
	Recover(path string) error
	Optimize() int
	Usage() catalog.Usage
}

// ScanResult lists the tombstoned entries found in a catalog.
type ScanResult struct {
	Active         int
	Deleted        int
	ActiveBytes    uint64
	DeletedBytes   uint64
	DeletedEntries []catalog.Entry // storage order
}

// RecoverAllResult is the outcome of a best-effort bulk recovery.
type RecoverAllResult struct {
	Recovered int
	Failed    []string // paths, storage order
	Err       error    // joined per-entry failures, nil when Failed is empty
}

// Analysis summarizes space usage and slot fragmentation.
type Analysis struct {
	TotalSpace       uint64
	UsedSpace        uint64
	FreeSpace        uint64
	UsagePercent     float64
	MaxFiles         int
	Slots            int
	Active           int
	Deleted          int
	ReclaimableBytes uint64  // summed size of tombstoned entries
	Fragmentation    float64 // tombstoned slots / occupied slots
	LargestName      string
	LargestSize      uint64
}

// OptimizationResult holds the analyses taken around an Optimize call.
type OptimizationResult struct {
	Before  Analysis
	After   Analysis
	Removed int
}

type Reporter struct {
	logger *slog.Logger
}

func NewReporter(logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{logger: logger}
}

// Scan counts active and deleted entries and collects the deleted ones.
func (r *Reporter) Scan(src Source) ScanResult {
	var res ScanResult
	for _, e := range src.Entries() {
		if e.IsDeleted {
			res.Deleted++
			res.DeletedBytes += e.Size
			res.DeletedEntries = append(res.DeletedEntries, e)
			continue
		}
		res.Active++
		res.ActiveBytes += e.Size
	}

	r.logger.Debug("Scanned catalog",
		slog.Int(common.LogNumFiles, res.Active),
		slog.Int(common.LogDeleted, res.Deleted))
	return res
}

// RecoverAll calls Recover for every deleted entry, in storage order, and keeps
// going past individual failures.
func (r *Reporter) RecoverAll(src Source) RecoverAllResult {
	var (
		res  RecoverAllResult
		errs []error
	)

	// Collect first: Recover mutates the table being iterated.
	var paths []string
	for _, e := range src.Entries() {
		if e.IsDeleted {
			paths = append(paths, e.Path)
		}
	}

	for _, path := range paths {
		if err := src.Recover(path); err != nil {
			res.Failed = append(res.Failed, path)
			errs = append(errs, fmt.Errorf("recover %s: %w", path, err))
			continue
		}
		res.Recovered++
	}
	res.Err = errors.Join(errs...)

	logger := r.logger.With(slog.Int(common.LogRecovered, res.Recovered))
	if res.Err != nil {
		logger.Warn("Bulk recovery finished with failures", slog.String(common.LogError, res.Err.Error()))
	} else {
		logger.Info("Bulk recovery finished")
	}
	return res
}

// Analyze reports space usage and fragmentation.
func (r *Reporter) Analyze(src Source) Analysis {
	u := src.Usage()
	a := Analysis{
		TotalSpace: u.TotalSpace,
		UsedSpace:  u.UsedSpace,
		FreeSpace:  u.FreeSpace,
		MaxFiles:   u.MaxFiles,
		Slots:      u.Entries,
		Active:     u.Active,
		Deleted:    u.Deleted,
	}
	if u.TotalSpace > 0 {
		a.UsagePercent = float64(u.UsedSpace) / float64(u.TotalSpace) * 100
	}
	if u.Entries > 0 {
		a.Fragmentation = float64(u.Deleted) / float64(u.Entries)
	}

	for _, e := range src.Entries() {
		if e.IsDeleted {
			a.ReclaimableBytes += e.Size
			continue
		}
		if a.LargestName == "" || e.Size > a.LargestSize {
			a.LargestName = e.Name
			a.LargestSize = e.Size
		}
	}
	return a
}

// OptimizeAdvanced analyzes the catalog, optimizes it and analyzes it again.
func (r *Reporter) OptimizeAdvanced(src Source) OptimizationResult {
	res := OptimizationResult{Before: r.Analyze(src)}
	res.Removed = src.Optimize()
	res.After = r.Analyze(src)

	r.logger.Info("Catalog optimized",
		slog.Int(common.LogRemoved, res.Removed),
		slog.Float64(common.LogFragmented, res.After.Fragmentation))
	return res
}
