package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "targeting.v1alpha1.TargetingService"

const (
	TargetingService_Collides_FullMethodName            = "/" + ServiceName + "/Collides"
	TargetingService_TokensIn_FullMethodName            = "/" + ServiceName + "/TokensIn"
	TargetingService_TemplatesContaining_FullMethodName = "/" + ServiceName + "/TemplatesContaining"
	TargetingService_SaveScene_FullMethodName           = "/" + ServiceName + "/SaveScene"
	TargetingService_GetScene_FullMethodName            = "/" + ServiceName + "/GetScene"
	TargetingService_DeleteScene_FullMethodName         = "/" + ServiceName + "/DeleteScene"
	TargetingService_ListScenes_FullMethodName          = "/" + ServiceName + "/ListScenes"
	TargetingService_GetDefaults_FullMethodName         = "/" + ServiceName + "/GetDefaults"
	TargetingService_UpdateDefaults_FullMethodName      = "/" + ServiceName + "/UpdateDefaults"
)

// TargetingServiceServer is the server API for the targeting service
type TargetingServiceServer interface {
	Collides(context.Context, *CollidesRequest) (*CollidesResponse, error)
	TokensIn(context.Context, *TokensInRequest) (*TokensInResponse, error)
	TemplatesContaining(context.Context, *TemplatesContainingRequest) (*TemplatesContainingResponse, error)
	SaveScene(context.Context, *SaveSceneRequest) (*SaveSceneResponse, error)
	GetScene(context.Context, *GetSceneRequest) (*GetSceneResponse, error)
	DeleteScene(context.Context, *DeleteSceneRequest) (*DeleteSceneResponse, error)
	ListScenes(context.Context, *ListScenesRequest) (*ListScenesResponse, error)
	GetDefaults(context.Context, *GetDefaultsRequest) (*GetDefaultsResponse, error)
	UpdateDefaults(context.Context, *UpdateDefaultsRequest) (*UpdateDefaultsResponse, error)
}

// RegisterTargetingServiceServer registers srv with the gRPC server
func RegisterTargetingServiceServer(s grpc.ServiceRegistrar, srv TargetingServiceServer) {
	s.RegisterService(&TargetingService_ServiceDesc, srv)
}

// TargetingService_ServiceDesc describes the targeting service. Messages are
// plain Go structs carried by the JSON codec.
var TargetingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TargetingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Collides",
			Handler:    unaryHandler(TargetingService_Collides_FullMethodName, TargetingServiceServer.Collides),
		},
		{
			MethodName: "TokensIn",
			Handler:    unaryHandler(TargetingService_TokensIn_FullMethodName, TargetingServiceServer.TokensIn),
		},
		{
			MethodName: "TemplatesContaining",
			Handler: unaryHandler(TargetingService_TemplatesContaining_FullMethodName,
				TargetingServiceServer.TemplatesContaining),
		},
		{
			MethodName: "SaveScene",
			Handler:    unaryHandler(TargetingService_SaveScene_FullMethodName, TargetingServiceServer.SaveScene),
		},
		{
			MethodName: "GetScene",
			Handler:    unaryHandler(TargetingService_GetScene_FullMethodName, TargetingServiceServer.GetScene),
		},
		{
			MethodName: "DeleteScene",
			Handler:    unaryHandler(TargetingService_DeleteScene_FullMethodName, TargetingServiceServer.DeleteScene),
		},
		{
			MethodName: "ListScenes",
			Handler:    unaryHandler(TargetingService_ListScenes_FullMethodName, TargetingServiceServer.ListScenes),
		},
		{
			MethodName: "GetDefaults",
			Handler:    unaryHandler(TargetingService_GetDefaults_FullMethodName, TargetingServiceServer.GetDefaults),
		},
		{
			MethodName: "UpdateDefaults",
			Handler: unaryHandler(TargetingService_UpdateDefaults_FullMethodName,
				TargetingServiceServer.UpdateDefaults),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "targeting/v1alpha1/targeting.json",
}

// unaryHandler adapts a typed server method to grpc.MethodHandler
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(TargetingServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TargetingServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TargetingServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
