package grpcutil

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/apperr"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/metrics"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorsInterceptor is a gRPC unary interceptor that inspects errors and translates them.
func ErrorsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err == nil {
		return resp, nil
	}

	// Attempt to cast the returned error to the application's custom error type.
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == codes.Internal {
			logging.FromContext(ctx).Error("Internal error", slog.String(common.LogError, err.Error()))
		}
		return nil, status.Error(appErr.Code, appErr.Message)
	}

	// Errors that already carry a status, such as context cancellation from the transport.
	if _, ok := status.FromError(err); ok {
		return nil, err
	}

	// This is an unexpected error type (e.g., a panic recovered as an error).
	logging.FromContext(ctx).Error("Unexpected error", slog.String(common.LogError, err.Error()))
	return nil, status.Error(codes.Internal, "an unexpected internal error occurred")
}

func NewLoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		// Generate a request ID for each request
		requestID := generateRequestID()
		requestLogger := logging.ExtendLogger(logger, slog.String(common.LogRequestID, requestID))

		requestLogger.Debug("Request started",
			slog.String(common.LogMethod, info.FullMethod),
			slog.Time(common.LogTimestamp, start))

		// Attach logger to context
		ctx = logging.WithLogger(ctx, requestLogger)

		resp, err := handler(ctx, req)

		duration := time.Since(start)

		// ErrorsInterceptor runs inside this one, so err is already a status error
		if err != nil {
			requestLogger.Info("Request completed with error",
				slog.String(common.LogMethod, info.FullMethod),
				slog.String(common.LogError, err.Error()),
				slog.Duration(common.LogDuration, duration),
				slog.String(common.LogStatus, status.Code(err).String()))
		} else {
			requestLogger.Info("Request completed successfully",
				slog.String(common.LogMethod, info.FullMethod),
				slog.Duration(common.LogDuration, duration))
		}

		return resp, err
	}
}

// MetricsInterceptor records the count and latency of every request by method and status code.
func MetricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	metrics.RecordGRPCRequest(info.FullMethod, status.Code(err).String(), time.Since(start))
	return resp, err
}

// ServerOptions chains the interceptors in the order the server expects:
// metrics and logging outermost, error translation closest to the handler.
func ServerOptions(logger *slog.Logger) []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			MetricsInterceptor,
			NewLoggingInterceptor(logger),
			ErrorsInterceptor,
		),
	}
}

func generateRequestID() string {
	return uuid.NewString()
}
