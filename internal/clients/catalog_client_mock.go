package clients

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/recovery"
	"google.golang.org/grpc"
)

type MockCatalogClient struct {
	mock.Mock
	target string
}

func NewMockCatalogClient(target string) *MockCatalogClient {
	return &MockCatalogClient{
		Mock:   mock.Mock{},
		target: target,
	}
}

func (m *MockCatalogClient) Target() string {
	return m.target
}

func (m *MockCatalogClient) Close() error {
	return m.Called().Error(0)
}

func (m *MockCatalogClient) CreateFile(ctx context.Context, name, path string, size uint64, opts ...grpc.CallOption) (catalog.Usage, error) {
	args := m.Called(ctx, name, path, size)
	return args.Get(0).(catalog.Usage), args.Error(1)
}

func (m *MockCatalogClient) DeleteFile(ctx context.Context, path string, opts ...grpc.CallOption) (catalog.Usage, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(catalog.Usage), args.Error(1)
}

func (m *MockCatalogClient) RecoverFile(ctx context.Context, path string, opts ...grpc.CallOption) (catalog.Usage, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(catalog.Usage), args.Error(1)
}

func (m *MockCatalogClient) ListFiles(ctx context.Context, filter string, prefix bool, opts ...grpc.CallOption) ([]catalog.FileSummary, error) {
	args := m.Called(ctx, filter, prefix)
	return args.Get(0).([]catalog.FileSummary), args.Error(1)
}

func (m *MockCatalogClient) Optimize(ctx context.Context, opts ...grpc.CallOption) (int, catalog.Usage, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Get(1).(catalog.Usage), args.Error(2)
}

func (m *MockCatalogClient) Usage(ctx context.Context, opts ...grpc.CallOption) (catalog.Usage, error) {
	args := m.Called(ctx)
	return args.Get(0).(catalog.Usage), args.Error(1)
}

func (m *MockCatalogClient) Scan(ctx context.Context, opts ...grpc.CallOption) (recovery.ScanResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(recovery.ScanResult), args.Error(1)
}

func (m *MockCatalogClient) RecoverAll(ctx context.Context, opts ...grpc.CallOption) (recovery.RecoverAllResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(recovery.RecoverAllResult), args.Error(1)
}

func (m *MockCatalogClient) Analyze(ctx context.Context, opts ...grpc.CallOption) (recovery.Analysis, error) {
	args := m.Called(ctx)
	return args.Get(0).(recovery.Analysis), args.Error(1)
}
