package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "tahwng.v1alpha1.HudService"

// Full method names
const (
	HudService_BuildActions_FullMethodName = "/" + ServiceName + "/BuildActions"
	HudService_HandleClick_FullMethodName  = "/" + ServiceName + "/HandleClick"
	HudService_GetLayout_FullMethodName    = "/" + ServiceName + "/GetLayout"
	HudService_ListActors_FullMethodName   = "/" + ServiceName + "/ListActors"
	HudService_ListChat_FullMethodName     = "/" + ServiceName + "/ListChat"
)

// HudServiceServer is the server API for HudService. Every message is a
// google.protobuf.Struct holding the JSON form of the request and response
// types in this package.
type HudServiceServer interface {
	BuildActions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	HandleClick(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLayout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListActors(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListChat(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterHudServiceServer registers srv on s
func RegisterHudServiceServer(s grpc.ServiceRegistrar, srv HudServiceServer) {
	s.RegisterService(&HudService_ServiceDesc, srv)
}

type unaryMethod func(srv HudServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts one HudServiceServer method to grpc.MethodHandler
func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(HudServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(HudServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// HudService_ServiceDesc is the grpc.ServiceDesc for HudService
var HudService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HudServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BuildActions",
			Handler: unaryHandler(HudService_BuildActions_FullMethodName, func(srv HudServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.BuildActions(ctx, in)
			}),
		},
		{
			MethodName: "HandleClick",
			Handler: unaryHandler(HudService_HandleClick_FullMethodName, func(srv HudServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.HandleClick(ctx, in)
			}),
		},
		{
			MethodName: "GetLayout",
			Handler: unaryHandler(HudService_GetLayout_FullMethodName, func(srv HudServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.GetLayout(ctx, in)
			}),
		},
		{
			MethodName: "ListActors",
			Handler: unaryHandler(HudService_ListActors_FullMethodName, func(srv HudServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.ListActors(ctx, in)
			}),
		},
		{
			MethodName: "ListChat",
			Handler: unaryHandler(HudService_ListChat_FullMethodName, func(srv HudServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.ListChat(ctx, in)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// HudServiceClient is the client API for HudService
type HudServiceClient interface {
	BuildActions(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	HandleClick(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetLayout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListActors(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListChat(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type hudServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewHudServiceClient creates a client on cc
func NewHudServiceClient(cc grpc.ClientConnInterface) HudServiceClient {
	return &hudServiceClient{cc}
}

func (c *hudServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hudServiceClient) BuildActions(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HudService_BuildActions_FullMethodName, in, opts...)
}

func (c *hudServiceClient) HandleClick(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HudService_HandleClick_FullMethodName, in, opts...)
}

func (c *hudServiceClient) GetLayout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HudService_GetLayout_FullMethodName, in, opts...)
}

func (c *hudServiceClient) ListActors(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HudService_ListActors_FullMethodName, in, opts...)
}

func (c *hudServiceClient) ListChat(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, HudService_ListChat_FullMethodName, in, opts...)
}
