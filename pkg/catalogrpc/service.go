// Package catalogrpc defines the wire messages and gRPC bindings of the catalog service.
package catalogrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "fsrecovery.CatalogService"

const (
	MethodCreateFile  = "CreateFile"
	MethodDeleteFile  = "DeleteFile"
	MethodRecoverFile = "RecoverFile"
	MethodListFiles   = "ListFiles"
	MethodOptimize    = "Optimize"
	MethodUsage       = "Usage"
	MethodScan        = "Scan"
	MethodRecoverAll  = "RecoverAll"
	MethodAnalyze     = "Analyze"
)

// FullMethodName returns the gRPC path of a catalog service method.
func FullMethodName(method string) string {
	return "/" + ServiceName + "/" + method
}

type CatalogServiceServer interface {
	CreateFile(context.Context, *CreateFileRequest) (*UsageResponse, error)
	DeleteFile(context.Context, *PathRequest) (*UsageResponse, error)
	RecoverFile(context.Context, *PathRequest) (*UsageResponse, error)
	ListFiles(context.Context, *ListFilesRequest) (*ListFilesResponse, error)
	Optimize(context.Context, *Empty) (*OptimizeResponse, error)
	Usage(context.Context, *Empty) (*UsageResponse, error)
	Scan(context.Context, *Empty) (*ScanResponse, error)
	RecoverAll(context.Context, *Empty) (*RecoverAllResponse, error)
	Analyze(context.Context, *Empty) (*AnalyzeResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded to get forward compatible implementations.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) CreateFile(context.Context, *CreateFileRequest) (*UsageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateFile not implemented")
}
func (UnimplementedCatalogServiceServer) DeleteFile(context.Context, *PathRequest) (*UsageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteFile not implemented")
}
func (UnimplementedCatalogServiceServer) RecoverFile(context.Context, *PathRequest) (*UsageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecoverFile not implemented")
}
func (UnimplementedCatalogServiceServer) ListFiles(context.Context, *ListFilesRequest) (*ListFilesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFiles not implemented")
}
func (UnimplementedCatalogServiceServer) Optimize(context.Context, *Empty) (*OptimizeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Optimize not implemented")
}
func (UnimplementedCatalogServiceServer) Usage(context.Context, *Empty) (*UsageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Usage not implemented")
}
func (UnimplementedCatalogServiceServer) Scan(context.Context, *Empty) (*ScanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Scan not implemented")
}
func (UnimplementedCatalogServiceServer) RecoverAll(context.Context, *Empty) (*RecoverAllResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecoverAll not implemented")
}
func (UnimplementedCatalogServiceServer) Analyze(context.Context, *Empty) (*AnalyzeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Analyze not implemented")
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodCreateFile, Handler: unaryHandler[CreateFileRequest](MethodCreateFile, CatalogServiceServer.CreateFile)},
		{MethodName: MethodDeleteFile, Handler: unaryHandler[PathRequest](MethodDeleteFile, CatalogServiceServer.DeleteFile)},
		{MethodName: MethodRecoverFile, Handler: unaryHandler[PathRequest](MethodRecoverFile, CatalogServiceServer.RecoverFile)},
		{MethodName: MethodListFiles, Handler: unaryHandler[ListFilesRequest](MethodListFiles, CatalogServiceServer.ListFiles)},
		{MethodName: MethodOptimize, Handler: unaryHandler[Empty](MethodOptimize, CatalogServiceServer.Optimize)},
		{MethodName: MethodUsage, Handler: unaryHandler[Empty](MethodUsage, CatalogServiceServer.Usage)},
		{MethodName: MethodScan, Handler: unaryHandler[Empty](MethodScan, CatalogServiceServer.Scan)},
		{MethodName: MethodRecoverAll, Handler: unaryHandler[Empty](MethodRecoverAll, CatalogServiceServer.RecoverAll)},
		{MethodName: MethodAnalyze, Handler: unaryHandler[Empty](MethodAnalyze, CatalogServiceServer.Analyze)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fsrecovery/catalog.proto",
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler.
func unaryHandler[Req any, PReq interface {
	*Req
	Message
}, Resp any](method string, call func(CatalogServiceServer, context.Context, PReq) (Resp, error)) grpc.MethodHandler {
	fullMethod := FullMethodName(method)

	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServiceServer), ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type CatalogServiceClient interface {
	CreateFile(ctx context.Context, in *CreateFileRequest, opts ...grpc.CallOption) (*UsageResponse, error)
	DeleteFile(ctx context.Context, in *PathRequest, opts ...grpc.CallOption) (*UsageResponse, error)
	RecoverFile(ctx context.Context, in *PathRequest, opts ...grpc.CallOption) (*UsageResponse, error)
	ListFiles(ctx context.Context, in *ListFilesRequest, opts ...grpc.CallOption) (*ListFilesResponse, error)
	Optimize(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*OptimizeResponse, error)
	Usage(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*UsageResponse, error)
	Scan(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ScanResponse, error)
	RecoverAll(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*RecoverAllResponse, error)
	Analyze(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AnalyzeResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

// invoke calls method with the catalog codec selected as the content subtype.
func invoke[Resp any, PResp interface {
	*Resp
	Message
}](ctx context.Context, cc grpc.ClientConnInterface, method string, in Message, opts []grpc.CallOption) (PResp, error) {
	out := PResp(new(Resp))
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethodName(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) CreateFile(ctx context.Context, in *CreateFileRequest, opts ...grpc.CallOption) (*UsageResponse, error) {
	return invoke[UsageResponse](ctx, c.cc, MethodCreateFile, in, opts)
}

func (c *catalogServiceClient) DeleteFile(ctx context.Context, in *PathRequest, opts ...grpc.CallOption) (*UsageResponse, error) {
	return invoke[UsageResponse](ctx, c.cc, MethodDeleteFile, in, opts)
}

func (c *catalogServiceClient) RecoverFile(ctx context.Context, in *PathRequest, opts ...grpc.CallOption) (*UsageResponse, error) {
	return invoke[UsageResponse](ctx, c.cc, MethodRecoverFile, in, opts)
}

func (c *catalogServiceClient) ListFiles(ctx context.Context, in *ListFilesRequest, opts ...grpc.CallOption) (*ListFilesResponse, error) {
	return invoke[ListFilesResponse](ctx, c.cc, MethodListFiles, in, opts)
}

func (c *catalogServiceClient) Optimize(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*OptimizeResponse, error) {
	return invoke[OptimizeResponse](ctx, c.cc, MethodOptimize, in, opts)
}

func (c *catalogServiceClient) Usage(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*UsageResponse, error) {
	return invoke[UsageResponse](ctx, c.cc, MethodUsage, in, opts)
}

func (c *catalogServiceClient) Scan(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ScanResponse, error) {
	return invoke[ScanResponse](ctx, c.cc, MethodScan, in, opts)
}

func (c *catalogServiceClient) RecoverAll(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*RecoverAllResponse, error) {
	return invoke[RecoverAllResponse](ctx, c.cc, MethodRecoverAll, in, opts)
}

func (c *catalogServiceClient) Analyze(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*AnalyzeResponse, error) {
	return invoke[AnalyzeResponse](ctx, c.cc, MethodAnalyze, in, opts)
}
