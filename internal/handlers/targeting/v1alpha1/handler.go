// Package v1alpha1 exposes the targeting orchestrator as a gRPC service
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/orchestrators/targeting"
)

// HandlerConfig holds dependencies for the targeting handler
type HandlerConfig struct {
	TargetingService targeting.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.TargetingService == nil {
		return errors.InvalidArgument("targeting service is required")
	}
	return nil
}

// Handler implements TargetingServiceServer
type Handler struct {
	targetingService targeting.Service
}

// NewHandler creates a new targeting handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		targetingService: cfg.TargetingService,
	}, nil
}

// Collides tests a single token against a single template
func (h *Handler) Collides(ctx context.Context, req *CollidesRequest) (*CollidesResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("token_scene_id", req.TokenSceneId, vb)
	errors.ValidateRequired("token_id", req.TokenId, vb)
	errors.ValidateRequired("template_id", req.TemplateId, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.targetingService.Collides(ctx, &targeting.CollidesInput{
		TokenSceneID:    req.TokenSceneId,
		TokenID:         req.TokenId,
		TemplateSceneID: req.TemplateSceneId,
		TemplateID:      req.TemplateId,
		Options:         req.Options,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CollidesResponse{
		Covered:          output.Result.Covered,
		Ratio:            output.Result.Ratio,
		PercentageOutput: output.Result.PercentageOutput,
	}, nil
}

// TokensIn lists the tokens a template covers
func (h *Handler) TokensIn(ctx context.Context, req *TokensInRequest) (*TokensInResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("scene_id", req.SceneId, vb)
	errors.ValidateRequired("template_id", req.TemplateId, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.targetingService.TokensIn(ctx, &targeting.TokensInInput{
		SceneID:    req.SceneId,
		TemplateID: req.TemplateId,
		Options:    req.Options,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &TokensInResponse{Tokens: output.Tokens}, nil
}

// TemplatesContaining lists the templates covering a token
func (h *Handler) TemplatesContaining(
	ctx context.Context,
	req *TemplatesContainingRequest,
) (*TemplatesContainingResponse, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("scene_id", req.SceneId, vb)
	errors.ValidateRequired("token_id", req.TokenId, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.targetingService.TemplatesContaining(ctx, &targeting.TemplatesContainingInput{
		SceneID: req.SceneId,
		TokenID: req.TokenId,
		Options: req.Options,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &TemplatesContainingResponse{Templates: output.Templates}, nil
}

// SaveScene creates or replaces a scene
func (h *Handler) SaveScene(ctx context.Context, req *SaveSceneRequest) (*SaveSceneResponse, error) {
	if req.Scene == nil {
		return nil, errors.ToGRPCError(errors.InvalidField("scene", "scene is required"))
	}

	output, err := h.targetingService.SaveScene(ctx, &targeting.SaveSceneInput{Scene: req.Scene})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SaveSceneResponse{Scene: output.Scene, Created: output.Created}, nil
}

// GetScene loads a stored scene
func (h *Handler) GetScene(ctx context.Context, req *GetSceneRequest) (*GetSceneResponse, error) {
	if req.SceneId == "" {
		return nil, errors.ToGRPCError(errors.InvalidField("scene_id", "scene_id is required"))
	}

	output, err := h.targetingService.GetScene(ctx, &targeting.GetSceneInput{SceneID: req.SceneId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetSceneResponse{Scene: output.Scene}, nil
}

// DeleteScene removes a stored scene
func (h *Handler) DeleteScene(ctx context.Context, req *DeleteSceneRequest) (*DeleteSceneResponse, error) {
	if req.SceneId == "" {
		return nil, errors.ToGRPCError(errors.InvalidField("scene_id", "scene_id is required"))
	}

	if _, err := h.targetingService.DeleteScene(ctx, &targeting.DeleteSceneInput{SceneID: req.SceneId}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteSceneResponse{}, nil
}

// ListScenes lists stored scene ids
func (h *Handler) ListScenes(ctx context.Context, _ *ListScenesRequest) (*ListScenesResponse, error) {
	output, err := h.targetingService.ListScenes(ctx, &targeting.ListScenesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListScenesResponse{SceneIds: output.SceneIDs}, nil
}

// GetDefaults returns the engine defaults in effect
func (h *Handler) GetDefaults(ctx context.Context, _ *GetDefaultsRequest) (*GetDefaultsResponse, error) {
	output, err := h.targetingService.GetDefaults(ctx, &targeting.GetDefaultsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetDefaultsResponse{Defaults: output.Defaults}, nil
}

// UpdateDefaults changes the engine defaults
func (h *Handler) UpdateDefaults(
	ctx context.Context,
	req *UpdateDefaultsRequest,
) (*UpdateDefaultsResponse, error) {
	if req.Options == nil {
		return nil, errors.ToGRPCError(errors.InvalidField("options", "options are required"))
	}

	output, err := h.targetingService.UpdateDefaults(ctx, &targeting.UpdateDefaultsInput{Options: req.Options})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateDefaultsResponse{Defaults: output.Defaults}, nil
}

var _ TargetingServiceServer = (*Handler)(nil)
