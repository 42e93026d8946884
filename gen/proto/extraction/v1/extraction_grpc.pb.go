// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: extraction/v1/extraction.proto

package extractionv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ExtractionAdminService_EnqueueExtraction_FullMethodName = "/extraction.v1.ExtractionAdminService/EnqueueExtraction"
	ExtractionAdminService_GetDocument_FullMethodName       = "/extraction.v1.ExtractionAdminService/GetDocument"
	ExtractionAdminService_ListJobs_FullMethodName          = "/extraction.v1.ExtractionAdminService/ListJobs"
	ExtractionAdminService_ReclaimOrphans_FullMethodName    = "/extraction.v1.ExtractionAdminService/ReclaimOrphans"
)

// ExtractionAdminServiceClient is the client API for ExtractionAdminService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExtractionAdminService is the operational surface over documents and the
// extraction job queue: enqueue work, inspect status, and recover orphans.
type ExtractionAdminServiceClient interface {
	EnqueueExtraction(ctx context.Context, in *EnqueueExtractionRequest, opts ...grpc.CallOption) (*EnqueueExtractionResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
	ReclaimOrphans(ctx context.Context, in *ReclaimOrphansRequest, opts ...grpc.CallOption) (*ReclaimOrphansResponse, error)
}

type extractionAdminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionAdminServiceClient(cc grpc.ClientConnInterface) ExtractionAdminServiceClient {
	return &extractionAdminServiceClient{cc}
}

func (c *extractionAdminServiceClient) EnqueueExtraction(ctx context.Context, in *EnqueueExtractionRequest, opts ...grpc.CallOption) (*EnqueueExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueExtractionResponse)
	err := c.cc.Invoke(ctx, ExtractionAdminService_EnqueueExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionAdminServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, ExtractionAdminService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionAdminServiceClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobsResponse)
	err := c.cc.Invoke(ctx, ExtractionAdminService_ListJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionAdminServiceClient) ReclaimOrphans(ctx context.Context, in *ReclaimOrphansRequest, opts ...grpc.CallOption) (*ReclaimOrphansResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReclaimOrphansResponse)
	err := c.cc.Invoke(ctx, ExtractionAdminService_ReclaimOrphans_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionAdminServiceServer is the server API for ExtractionAdminService service.
// All implementations must embed UnimplementedExtractionAdminServiceServer
// for forward compatibility.
//
// ExtractionAdminService is the operational surface over documents and the
// extraction job queue: enqueue work, inspect status, and recover orphans.
type ExtractionAdminServiceServer interface {
	EnqueueExtraction(context.Context, *EnqueueExtractionRequest) (*EnqueueExtractionResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	ReclaimOrphans(context.Context, *ReclaimOrphansRequest) (*ReclaimOrphansResponse, error)
	mustEmbedUnimplementedExtractionAdminServiceServer()
}

// UnimplementedExtractionAdminServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionAdminServiceServer struct{}

func (UnimplementedExtractionAdminServiceServer) EnqueueExtraction(context.Context, *EnqueueExtractionRequest) (*EnqueueExtractionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueExtraction not implemented")
}
func (UnimplementedExtractionAdminServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedExtractionAdminServiceServer) ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListJobs not implemented")
}
func (UnimplementedExtractionAdminServiceServer) ReclaimOrphans(context.Context, *ReclaimOrphansRequest) (*ReclaimOrphansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReclaimOrphans not implemented")
}
func (UnimplementedExtractionAdminServiceServer) mustEmbedUnimplementedExtractionAdminServiceServer() {
}
func (UnimplementedExtractionAdminServiceServer) testEmbeddedByValue() {}

// UnsafeExtractionAdminServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionAdminServiceServer will
// result in compilation errors.
type UnsafeExtractionAdminServiceServer interface {
	mustEmbedUnimplementedExtractionAdminServiceServer()
}

func RegisterExtractionAdminServiceServer(s grpc.ServiceRegistrar, srv ExtractionAdminServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractionAdminServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionAdminService_ServiceDesc, srv)
}

func _ExtractionAdminService_EnqueueExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionAdminServiceServer).EnqueueExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionAdminService_EnqueueExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionAdminServiceServer).EnqueueExtraction(ctx, req.(*EnqueueExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionAdminService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionAdminServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionAdminService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionAdminServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionAdminService_ListJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionAdminServiceServer).ListJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionAdminService_ListJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionAdminServiceServer).ListJobs(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionAdminService_ReclaimOrphans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReclaimOrphansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionAdminServiceServer).ReclaimOrphans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionAdminService_ReclaimOrphans_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionAdminServiceServer).ReclaimOrphans(ctx, req.(*ReclaimOrphansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionAdminService_ServiceDesc is the grpc.ServiceDesc for ExtractionAdminService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionAdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "extraction.v1.ExtractionAdminService",
	HandlerType: (*ExtractionAdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EnqueueExtraction",
			Handler:    _ExtractionAdminService_EnqueueExtraction_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _ExtractionAdminService_GetDocument_Handler,
		},
		{
			MethodName: "ListJobs",
			Handler:    _ExtractionAdminService_ListJobs_Handler,
		},
		{
			MethodName: "ReclaimOrphans",
			Handler:    _ExtractionAdminService_ReclaimOrphans_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "extraction/v1/extraction.proto",
}
