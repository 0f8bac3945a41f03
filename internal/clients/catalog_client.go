package clients

import (
	"context"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/recovery"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/catalogrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type ICatalogClient interface {
	CreateFile(ctx context.Context, name, path string, size uint64, opts ...grpc.CallOption) (catalog.Usage, error)
	DeleteFile(ctx context.Context, path string, opts ...grpc.CallOption) (catalog.Usage, error)
	RecoverFile(ctx context.Context, path string, opts ...grpc.CallOption) (catalog.Usage, error)
	ListFiles(ctx context.Context, filter string, prefix bool, opts ...grpc.CallOption) ([]catalog.FileSummary, error)
	Optimize(ctx context.Context, opts ...grpc.CallOption) (int, catalog.Usage, error)
	Usage(ctx context.Context, opts ...grpc.CallOption) (catalog.Usage, error)
	Scan(ctx context.Context, opts ...grpc.CallOption) (recovery.ScanResult, error)
	RecoverAll(ctx context.Context, opts ...grpc.CallOption) (recovery.RecoverAllResult, error)
	Analyze(ctx context.Context, opts ...grpc.CallOption) (recovery.Analysis, error)
	Target() string
	Close() error
}

// Wrapper over the catalogrpc.CatalogServiceClient interface
type CatalogClient struct {
	client catalogrpc.CatalogServiceClient
	conn   *grpc.ClientConn
	target string
}

func NewCatalogClient(target string, opts ...grpc.DialOption) (ICatalogClient, error) {
	opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, err
	}

	return &CatalogClient{
		client: catalogrpc.NewCatalogServiceClient(conn),
		conn:   conn,
		target: target,
	}, nil
}

// Close closes the underlying connection
func (c *CatalogClient) Close() error {
	return c.conn.Close()
}

func (c *CatalogClient) CreateFile(ctx context.Context, name, path string, size uint64, opts ...grpc.CallOption) (catalog.Usage, error) {
	resp, err := c.client.CreateFile(ctx, &catalogrpc.CreateFileRequest{Name: name, Path: path, Size: size}, opts...)
	if err != nil {
		return catalog.Usage{}, err
	}
	return UsageFromProto(resp), nil
}

func (c *CatalogClient) DeleteFile(ctx context.Context, path string, opts ...grpc.CallOption) (catalog.Usage, error) {
	resp, err := c.client.DeleteFile(ctx, &catalogrpc.PathRequest{Path: path}, opts...)
	if err != nil {
		return catalog.Usage{}, err
	}
	return UsageFromProto(resp), nil
}

func (c *CatalogClient) RecoverFile(ctx context.Context, path string, opts ...grpc.CallOption) (catalog.Usage, error) {
	resp, err := c.client.RecoverFile(ctx, &catalogrpc.PathRequest{Path: path}, opts...)
	if err != nil {
		return catalog.Usage{}, err
	}
	return UsageFromProto(resp), nil
}

func (c *CatalogClient) ListFiles(ctx context.Context, filter string, prefix bool, opts ...grpc.CallOption) ([]catalog.FileSummary, error) {
	resp, err := c.client.ListFiles(ctx, &catalogrpc.ListFilesRequest{Filter: filter, Prefix: prefix}, opts...)
	if err != nil {
		return nil, err
	}
	return FilesFromProto(resp), nil
}

func (c *CatalogClient) Optimize(ctx context.Context, opts ...grpc.CallOption) (int, catalog.Usage, error) {
	resp, err := c.client.Optimize(ctx, &catalogrpc.Empty{}, opts...)
	if err != nil {
		return 0, catalog.Usage{}, err
	}
	return int(resp.Removed), UsageFromProto(resp.Usage), nil
}

func (c *CatalogClient) Usage(ctx context.Context, opts ...grpc.CallOption) (catalog.Usage, error) {
	resp, err := c.client.Usage(ctx, &catalogrpc.Empty{}, opts...)
	if err != nil {
		return catalog.Usage{}, err
	}
	return UsageFromProto(resp), nil
}

func (c *CatalogClient) Scan(ctx context.Context, opts ...grpc.CallOption) (recovery.ScanResult, error) {
	resp, err := c.client.Scan(ctx, &catalogrpc.Empty{}, opts...)
	if err != nil {
		return recovery.ScanResult{}, err
	}
	return ScanFromProto(resp), nil
}

func (c *CatalogClient) RecoverAll(ctx context.Context, opts ...grpc.CallOption) (recovery.RecoverAllResult, error) {
	resp, err := c.client.RecoverAll(ctx, &catalogrpc.Empty{}, opts...)
	if err != nil {
		return recovery.RecoverAllResult{}, err
	}
	return RecoverAllFromProto(resp), nil
}

func (c *CatalogClient) Analyze(ctx context.Context, opts ...grpc.CallOption) (recovery.Analysis, error) {
	resp, err := c.client.Analyze(ctx, &catalogrpc.Empty{}, opts...)
	if err != nil {
		return recovery.Analysis{}, err
	}
	return AnalysisFromProto(resp), nil
}

// Other methods not related to the gRPC server
func (c *CatalogClient) Target() string {
	return c.target
}
