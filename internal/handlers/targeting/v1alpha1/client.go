package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// TargetingServiceClient is the client API for the targeting service
type TargetingServiceClient interface {
	Collides(ctx context.Context, in *CollidesRequest, opts ...grpc.CallOption) (*CollidesResponse, error)
	TokensIn(ctx context.Context, in *TokensInRequest, opts ...grpc.CallOption) (*TokensInResponse, error)
	TemplatesContaining(ctx context.Context, in *TemplatesContainingRequest,
		opts ...grpc.CallOption) (*TemplatesContainingResponse, error)
	SaveScene(ctx context.Context, in *SaveSceneRequest, opts ...grpc.CallOption) (*SaveSceneResponse, error)
	GetScene(ctx context.Context, in *GetSceneRequest, opts ...grpc.CallOption) (*GetSceneResponse, error)
	DeleteScene(ctx context.Context, in *DeleteSceneRequest, opts ...grpc.CallOption) (*DeleteSceneResponse, error)
	ListScenes(ctx context.Context, in *ListScenesRequest, opts ...grpc.CallOption) (*ListScenesResponse, error)
	GetDefaults(ctx context.Context, in *GetDefaultsRequest, opts ...grpc.CallOption) (*GetDefaultsResponse, error)
	UpdateDefaults(ctx context.Context, in *UpdateDefaultsRequest,
		opts ...grpc.CallOption) (*UpdateDefaultsResponse, error)
}

type targetingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTargetingServiceClient returns a client that speaks the JSON codec
// over cc
func NewTargetingServiceClient(cc grpc.ClientConnInterface) TargetingServiceClient {
	return &targetingServiceClient{cc: cc}
}

func invoke[Resp any](
	ctx context.Context,
	cc grpc.ClientConnInterface,
	method string,
	in any,
	opts []grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *targetingServiceClient) Collides(
	ctx context.Context, in *CollidesRequest, opts ...grpc.CallOption,
) (*CollidesResponse, error) {
	return invoke[CollidesResponse](ctx, c.cc, TargetingService_Collides_FullMethodName, in, opts)
}

func (c *targetingServiceClient) TokensIn(
	ctx context.Context, in *TokensInRequest, opts ...grpc.CallOption,
) (*TokensInResponse, error) {
	return invoke[TokensInResponse](ctx, c.cc, TargetingService_TokensIn_FullMethodName, in, opts)
}

func (c *targetingServiceClient) TemplatesContaining(
	ctx context.Context, in *TemplatesContainingRequest, opts ...grpc.CallOption,
) (*TemplatesContainingResponse, error) {
	return invoke[TemplatesContainingResponse](ctx, c.cc,
		TargetingService_TemplatesContaining_FullMethodName, in, opts)
}

func (c *targetingServiceClient) SaveScene(
	ctx context.Context, in *SaveSceneRequest, opts ...grpc.CallOption,
) (*SaveSceneResponse, error) {
	return invoke[SaveSceneResponse](ctx, c.cc, TargetingService_SaveScene_FullMethodName, in, opts)
}

func (c *targetingServiceClient) GetScene(
	ctx context.Context, in *GetSceneRequest, opts ...grpc.CallOption,
) (*GetSceneResponse, error) {
	return invoke[GetSceneResponse](ctx, c.cc, TargetingService_GetScene_FullMethodName, in, opts)
}

func (c *targetingServiceClient) DeleteScene(
	ctx context.Context, in *DeleteSceneRequest, opts ...grpc.CallOption,
) (*DeleteSceneResponse, error) {
	return invoke[DeleteSceneResponse](ctx, c.cc, TargetingService_DeleteScene_FullMethodName, in, opts)
}

func (c *targetingServiceClient) ListScenes(
	ctx context.Context, in *ListScenesRequest, opts ...grpc.CallOption,
) (*ListScenesResponse, error) {
	return invoke[ListScenesResponse](ctx, c.cc, TargetingService_ListScenes_FullMethodName, in, opts)
}

func (c *targetingServiceClient) GetDefaults(
	ctx context.Context, in *GetDefaultsRequest, opts ...grpc.CallOption,
) (*GetDefaultsResponse, error) {
	return invoke[GetDefaultsResponse](ctx, c.cc, TargetingService_GetDefaults_FullMethodName, in, opts)
}

func (c *targetingServiceClient) UpdateDefaults(
	ctx context.Context, in *UpdateDefaultsRequest, opts ...grpc.CallOption,
) (*UpdateDefaultsResponse, error) {
	return invoke[UpdateDefaultsResponse](ctx, c.cc, TargetingService_UpdateDefaults_FullMethodName, in, opts)
}
