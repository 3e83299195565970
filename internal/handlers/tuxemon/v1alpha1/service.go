package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the full gRPC name of the technique service
const ServiceName = "tuxemon.api.v1alpha1.TechniqueService"

// Full method names
const (
	TechniqueService_SelectTechnique_FullMethodName = "/" + ServiceName + "/SelectTechnique"
	TechniqueService_LookupTechnique_FullMethodName = "/" + ServiceName + "/LookupTechnique"
	TechniqueService_UseItem_FullMethodName         = "/" + ServiceName + "/UseItem"
	TechniqueService_ConfirmLearn_FullMethodName    = "/" + ServiceName + "/ConfirmLearn"
	TechniqueService_ListJournal_FullMethodName     = "/" + ServiceName + "/ListJournal"
	TechniqueService_RecordEncounter_FullMethodName = "/" + ServiceName + "/RecordEncounter"
)

// TechniqueServiceServer is the server API for the technique service.
// Requests and responses are free-form structs.
type TechniqueServiceServer interface {
	SelectTechnique(context.Context, *structpb.Struct) (*structpb.Struct, error)
	LookupTechnique(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UseItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ConfirmLearn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListJournal(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RecordEncounter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterTechniqueServiceServer registers srv on s
func RegisterTechniqueServiceServer(s grpc.ServiceRegistrar, srv TechniqueServiceServer) {
	s.RegisterService(&TechniqueService_ServiceDesc, srv)
}

type unaryMethod func(TechniqueServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TechniqueServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TechniqueServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// TechniqueService_ServiceDesc is the grpc.ServiceDesc for the technique service
var TechniqueService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TechniqueServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SelectTechnique",
			Handler:    unaryHandler(TechniqueService_SelectTechnique_FullMethodName, TechniqueServiceServer.SelectTechnique),
		},
		{
			MethodName: "LookupTechnique",
			Handler:    unaryHandler(TechniqueService_LookupTechnique_FullMethodName, TechniqueServiceServer.LookupTechnique),
		},
		{
			MethodName: "UseItem",
			Handler:    unaryHandler(TechniqueService_UseItem_FullMethodName, TechniqueServiceServer.UseItem),
		},
		{
			MethodName: "ConfirmLearn",
			Handler:    unaryHandler(TechniqueService_ConfirmLearn_FullMethodName, TechniqueServiceServer.ConfirmLearn),
		},
		{
			MethodName: "ListJournal",
			Handler:    unaryHandler(TechniqueService_ListJournal_FullMethodName, TechniqueServiceServer.ListJournal),
		},
		{
			MethodName: "RecordEncounter",
			Handler:    unaryHandler(TechniqueService_RecordEncounter_FullMethodName, TechniqueServiceServer.RecordEncounter),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "",
}

// TechniqueServiceClient is the client API for the technique service
type TechniqueServiceClient interface {
	SelectTechnique(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	LookupTechnique(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UseItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ConfirmLearn(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListJournal(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RecordEncounter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type techniqueServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTechniqueServiceClient creates a client over cc
func NewTechniqueServiceClient(cc grpc.ClientConnInterface) TechniqueServiceClient {
	return &techniqueServiceClient{cc}
}

func (c *techniqueServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *techniqueServiceClient) SelectTechnique(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TechniqueService_SelectTechnique_FullMethodName, in, opts)
}

func (c *techniqueServiceClient) LookupTechnique(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TechniqueService_LookupTechnique_FullMethodName, in, opts)
}

func (c *techniqueServiceClient) UseItem(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TechniqueService_UseItem_FullMethodName, in, opts)
}

func (c *techniqueServiceClient) ConfirmLearn(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TechniqueService_ConfirmLearn_FullMethodName, in, opts)
}

func (c *techniqueServiceClient) ListJournal(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TechniqueService_ListJournal_FullMethodName, in, opts)
}

func (c *techniqueServiceClient) RecordEncounter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, TechniqueService_RecordEncounter_FullMethodName, in, opts)
}
