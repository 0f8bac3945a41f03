package server

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/recovery"
)

type MockService struct {
	mock.Mock
}

func (s *MockService) createFile(ctx context.Context, req CreateFileRequest) (catalog.Usage, error) {
	args := s.Called(ctx, req)
	return args.Get(0).(catalog.Usage), args.Error(1)
}

func (s *MockService) deleteFile(ctx context.Context, req PathRequest) (catalog.Usage, error) {
	args := s.Called(ctx, req)
	return args.Get(0).(catalog.Usage), args.Error(1)
}

func (s *MockService) recoverFile(ctx context.Context, req PathRequest) (catalog.Usage, error) {
	args := s.Called(ctx, req)
	return args.Get(0).(catalog.Usage), args.Error(1)
}

func (s *MockService) listFiles(ctx context.Context, req ListRequest) ([]catalog.FileSummary, error) {
	args := s.Called(ctx, req)
	return args.Get(0).([]catalog.FileSummary), args.Error(1)
}

func (s *MockService) optimize(ctx context.Context) (int, catalog.Usage, error) {
	args := s.Called(ctx)
	return args.Int(0), args.Get(1).(catalog.Usage), args.Error(2)
}

func (s *MockService) usage(ctx context.Context) (catalog.Usage, error) {
	args := s.Called(ctx)
	return args.Get(0).(catalog.Usage), args.Error(1)
}

func (s *MockService) scan(ctx context.Context) (recovery.ScanResult, error) {
	args := s.Called(ctx)
	return args.Get(0).(recovery.ScanResult), args.Error(1)
}

func (s *MockService) recoverAll(ctx context.Context) (recovery.RecoverAllResult, error) {
	args := s.Called(ctx)
	return args.Get(0).(recovery.RecoverAllResult), args.Error(1)
}

func (s *MockService) analyze(ctx context.Context) (recovery.Analysis, error) {
	args := s.Called(ctx)
	return args.Get(0).(recovery.Analysis), args.Error(1)
}
