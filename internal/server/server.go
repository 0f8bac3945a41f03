// Package server exposes a catalog over gRPC.
package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/apperr"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/catalogrpc"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/logging"
	"google.golang.org/grpc/codes"
)

type CatalogServer struct {
	catalogrpc.UnimplementedCatalogServiceServer
	service iservice
}

func NewCatalogServer(service iservice) *CatalogServer {
	return &CatalogServer{service: service}
}

func (s *CatalogServer) CreateFile(ctx context.Context, pb *catalogrpc.CreateFileRequest) (*catalogrpc.UsageResponse, error) {
	req := CreateFileRequestFromProto(pb)
	ctx, _ = logging.FromContextWithOperation(ctx, common.OpCreate,
		slog.String(common.LogFilePath, req.Path),
		slog.String(common.LogFileName, req.Name),
		slog.Uint64(common.LogFileSize, req.Size))

	if err := validateRequest(req); err != nil {
		return nil, apperr.InvalidArgument("invalid create request", err)
	}

	usage, err := s.service.createFile(ctx, req)
	if err != nil {
		return nil, catalogError(req.Path, err)
	}

	return UsageToProto(usage), nil
}

func (s *CatalogServer) DeleteFile(ctx context.Context, pb *catalogrpc.PathRequest) (*catalogrpc.UsageResponse, error) {
	req := PathRequestFromProto(pb)
	ctx, _ = logging.FromContextWithOperation(ctx, common.OpDelete,
		slog.String(common.LogFilePath, req.Path))

	if err := validateRequest(req); err != nil {
		return nil, apperr.InvalidArgument("invalid delete request", err)
	}

	usage, err := s.service.deleteFile(ctx, req)
	if err != nil {
		return nil, catalogError(req.Path, err)
	}

	return UsageToProto(usage), nil
}

func (s *CatalogServer) RecoverFile(ctx context.Context, pb *catalogrpc.PathRequest) (*catalogrpc.UsageResponse, error) {
	req := PathRequestFromProto(pb)
	ctx, _ = logging.FromContextWithOperation(ctx, common.OpRecover,
		slog.String(common.LogFilePath, req.Path))

	if err := validateRequest(req); err != nil {
		return nil, apperr.InvalidArgument("invalid recover request", err)
	}

	usage, err := s.service.recoverFile(ctx, req)
	if err != nil {
		return nil, catalogError(req.Path, err)
	}

	return UsageToProto(usage), nil
}

func (s *CatalogServer) ListFiles(ctx context.Context, pb *catalogrpc.ListFilesRequest) (*catalogrpc.ListFilesResponse, error) {
	req := ListRequestFromProto(pb)
	ctx, _ = logging.FromContextWithOperation(ctx, common.OpList,
		slog.String(common.LogFilter, req.Filter))

	files, err := s.service.listFiles(ctx, req)
	if err != nil {
		return nil, err
	}

	return FilesToProto(files), nil
}

func (s *CatalogServer) Optimize(ctx context.Context, _ *catalogrpc.Empty) (*catalogrpc.OptimizeResponse, error) {
	ctx, _ = logging.FromContextWithOperation(ctx, common.OpOptimize)

	removed, usage, err := s.service.optimize(ctx)
	if err != nil {
		return nil, err
	}

	return &catalogrpc.OptimizeResponse{Removed: int64(removed), Usage: UsageToProto(usage)}, nil
}

func (s *CatalogServer) Usage(ctx context.Context, _ *catalogrpc.Empty) (*catalogrpc.UsageResponse, error) {
	ctx, _ = logging.FromContextWithOperation(ctx, common.OpUsage)

	usage, err := s.service.usage(ctx)
	if err != nil {
		return nil, err
	}

	return UsageToProto(usage), nil
}

func (s *CatalogServer) Scan(ctx context.Context, _ *catalogrpc.Empty) (*catalogrpc.ScanResponse, error) {
	ctx, _ = logging.FromContextWithOperation(ctx, common.OpScan)

	res, err := s.service.scan(ctx)
	if err != nil {
		return nil, err
	}

	return ScanToProto(res), nil
}

func (s *CatalogServer) RecoverAll(ctx context.Context, _ *catalogrpc.Empty) (*catalogrpc.RecoverAllResponse, error) {
	ctx, _ = logging.FromContextWithOperation(ctx, common.OpRecoverAll)

	res, err := s.service.recoverAll(ctx)
	if err != nil {
		return nil, err
	}

	return RecoverAllToProto(res), nil
}

func (s *CatalogServer) Analyze(ctx context.Context, _ *catalogrpc.Empty) (*catalogrpc.AnalyzeResponse, error) {
	ctx, _ = logging.FromContextWithOperation(ctx, common.OpAnalyze)

	a, err := s.service.analyze(ctx)
	if err != nil {
		return nil, err
	}

	return AnalysisToProto(a), nil
}

// catalogError maps catalog sentinels onto application errors.
func catalogError(path string, err error) error {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		return apperr.NotFound("file", path, err)
	case errors.Is(err, catalog.ErrDuplicatePath):
		return apperr.AlreadyExists("file", path, err)
	case errors.Is(err, catalog.ErrCapacityExceeded), errors.Is(err, catalog.ErrInsufficientSpace):
		return apperr.Wrap(codes.ResourceExhausted, err.Error(), err)
	}
	return apperr.Internal(err)
}
