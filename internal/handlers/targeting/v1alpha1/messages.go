package v1alpha1

import (
	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	engine "github.com/KirkDiggler/rpg-targeting/internal/targeting"
)

// CollidesRequest identifies a token and a template. TemplateSceneId
// defaults to TokenSceneId.
type CollidesRequest struct {
	TokenSceneId    string          `json:"token_scene_id"`
	TokenId         string          `json:"token_id"`
	TemplateSceneId string          `json:"template_scene_id,omitempty"`
	TemplateId      string          `json:"template_id"`
	Options         *engine.Options `json:"options,omitempty"`
}

// CollidesResponse carries the collision result. Ratio is only meaningful
// when PercentageOutput is set.
type CollidesResponse struct {
	Covered          bool    `json:"covered"`
	Ratio            float64 `json:"ratio"`
	PercentageOutput bool    `json:"percentage_output"`
}

// TokensInRequest identifies a template
type TokensInRequest struct {
	SceneId    string          `json:"scene_id"`
	TemplateId string          `json:"template_id"`
	Options    *engine.Options `json:"options,omitempty"`
}

// TokensInResponse lists the covered tokens
type TokensInResponse struct {
	Tokens []*entities.Token `json:"tokens"`
}

// TemplatesContainingRequest identifies a token
type TemplatesContainingRequest struct {
	SceneId string          `json:"scene_id"`
	TokenId string          `json:"token_id"`
	Options *engine.Options `json:"options,omitempty"`
}

// TemplatesContainingResponse lists the templates covering the token
type TemplatesContainingResponse struct {
	Templates []*entities.Template `json:"templates"`
}

type SaveSceneRequest struct {
	Scene *entities.Scene `json:"scene"`
}

type SaveSceneResponse struct {
	Scene   *entities.Scene `json:"scene"`
	Created bool            `json:"created"`
}

type GetSceneRequest struct {
	SceneId string `json:"scene_id"`
}

type GetSceneResponse struct {
	Scene *entities.Scene `json:"scene"`
}

type DeleteSceneRequest struct {
	SceneId string `json:"scene_id"`
}

type DeleteSceneResponse struct{}

type ListScenesRequest struct{}

type ListScenesResponse struct {
	SceneIds []string `json:"scene_ids"`
}

type GetDefaultsRequest struct{}

type GetDefaultsResponse struct {
	Defaults engine.Defaults `json:"defaults"`
}

// UpdateDefaultsRequest changes the engine defaults. Unset fields keep
// their current value.
type UpdateDefaultsRequest struct {
	Options *engine.Options `json:"options"`
}

type UpdateDefaultsResponse struct {
	Defaults engine.Defaults `json:"defaults"`
}
