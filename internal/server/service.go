package server

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/recovery"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/logging"
)

type iservice interface {
	createFile(ctx context.Context, req CreateFileRequest) (catalog.Usage, error)
	deleteFile(ctx context.Context, req PathRequest) (catalog.Usage, error)
	recoverFile(ctx context.Context, req PathRequest) (catalog.Usage, error)
	listFiles(ctx context.Context, req ListRequest) ([]catalog.FileSummary, error)
	optimize(ctx context.Context) (int, catalog.Usage, error)
	usage(ctx context.Context) (catalog.Usage, error)
	scan(ctx context.Context) (recovery.ScanResult, error)
	recoverAll(ctx context.Context) (recovery.RecoverAllResult, error)
	analyze(ctx context.Context) (recovery.Analysis, error)
}

// service runs requests against a shared store. Mutations run inside Do so the
// returned usage is the one right after the mutation.
type service struct {
	store    catalog.Store
	reporter *recovery.Reporter
}

func NewService(store catalog.Store, reporter *recovery.Reporter) *service {
	return &service{store: store, reporter: reporter}
}

func (s *service) createFile(ctx context.Context, req CreateFileRequest) (catalog.Usage, error) {
	logger := logging.FromContext(ctx)

	var (
		usage catalog.Usage
		err   error
	)
	s.store.Do(func(c *catalog.Catalog) {
		if err = c.Create(req.Name, req.Path, req.Size); err == nil {
			usage = c.Usage()
		}
	})
	if err != nil {
		return catalog.Usage{}, fmt.Errorf("failed to create file: %w", err)
	}

	logger.Info("File created", slog.Uint64(common.LogFreeSpace, usage.FreeSpace))
	return usage, nil
}

func (s *service) deleteFile(ctx context.Context, req PathRequest) (catalog.Usage, error) {
	logger := logging.FromContext(ctx)

	var (
		usage catalog.Usage
		err   error
	)
	s.store.Do(func(c *catalog.Catalog) {
		if err = c.Delete(req.Path); err == nil {
			usage = c.Usage()
		}
	})
	if err != nil {
		return catalog.Usage{}, fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info("File deleted", slog.Uint64(common.LogFreeSpace, usage.FreeSpace))
	return usage, nil
}

func (s *service) recoverFile(ctx context.Context, req PathRequest) (catalog.Usage, error) {
	logger := logging.FromContext(ctx)

	var (
		usage catalog.Usage
		err   error
	)
	s.store.Do(func(c *catalog.Catalog) {
		if err = c.Recover(req.Path); err == nil {
			usage = c.Usage()
		}
	})
	if err != nil {
		return catalog.Usage{}, fmt.Errorf("failed to recover file: %w", err)
	}

	logger.Info("File recovered", slog.Uint64(common.LogUsedSpace, usage.UsedSpace))
	return usage, nil
}

func (s *service) listFiles(ctx context.Context, req ListRequest) ([]catalog.FileSummary, error) {
	logger := logging.FromContext(ctx)

	var files []catalog.FileSummary
	if req.Prefix {
		files = slices.Collect(s.store.ListPrefix(req.Filter))
	} else {
		files = slices.Collect(s.store.List(req.Filter))
	}

	logger.Info("Replying to client with list of files", slog.Int(common.LogNumFiles, len(files)))
	return files, nil
}

func (s *service) optimize(ctx context.Context) (int, catalog.Usage, error) {
	logger := logging.FromContext(ctx)

	var (
		removed int
		usage   catalog.Usage
	)
	s.store.Do(func(c *catalog.Catalog) {
		removed = c.Optimize()
		usage = c.Usage()
	})

	logger.Info("Catalog optimized", slog.Int(common.LogRemoved, removed))
	return removed, usage, nil
}

func (s *service) usage(ctx context.Context) (catalog.Usage, error) {
	return s.store.Usage(), nil
}

func (s *service) scan(ctx context.Context) (recovery.ScanResult, error) {
	var res recovery.ScanResult
	s.store.Do(func(c *catalog.Catalog) { res = s.reporter.Scan(c) })
	return res, nil
}

// recoverAll reports partial failures in the result, not as an error.
func (s *service) recoverAll(ctx context.Context) (recovery.RecoverAllResult, error) {
	var res recovery.RecoverAllResult
	s.store.Do(func(c *catalog.Catalog) { res = s.reporter.RecoverAll(c) })

	if res.Err != nil {
		logging.FromContext(ctx).Warn("Some entries could not be recovered",
			slog.Int(common.LogRecovered, res.Recovered),
			slog.String(common.LogError, res.Err.Error()))
	}
	return res, nil
}

func (s *service) analyze(ctx context.Context) (recovery.Analysis, error) {
	var a recovery.Analysis
	s.store.Do(func(c *catalog.Catalog) { a = s.reporter.Analyze(c) })
	return a, nil
}
