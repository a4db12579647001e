package targeting

import (
	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	engine "github.com/KirkDiggler/rpg-targeting/internal/targeting"
)

// CollidesInput identifies a token and a template by scene and id.
// TemplateSceneID defaults to TokenSceneID.
type CollidesInput struct {
	TokenSceneID    string
	TokenID         string
	TemplateSceneID string
	TemplateID      string
	Options         *engine.Options
}

// CollidesOutput holds the query result
type CollidesOutput struct {
	Result *engine.Result
}

// TokensInInput identifies a template
type TokensInInput struct {
	SceneID    string
	TemplateID string
	Options    *engine.Options
}

// TokensInOutput lists the covered tokens
type TokensInOutput struct {
	Tokens []*entities.Token
}

// TemplatesContainingInput identifies a token
type TemplatesContainingInput struct {
	SceneID string
	TokenID string
	Options *engine.Options
}

// TemplatesContainingOutput lists the templates covering the token
type TemplatesContainingOutput struct {
	Templates []*entities.Template
}

// SaveSceneInput holds a scene to create or replace. Missing ids on the
// scene, its tokens and its templates are generated.
type SaveSceneInput struct {
	Scene *entities.Scene
}

// SaveSceneOutput returns the stored scene
type SaveSceneOutput struct {
	Scene   *entities.Scene
	Created bool
}

// GetSceneInput identifies a scene
type GetSceneInput struct {
	SceneID string
}

// GetSceneOutput returns the stored scene
type GetSceneOutput struct {
	Scene *entities.Scene
}

// DeleteSceneInput identifies a scene
type DeleteSceneInput struct {
	SceneID string
}

// DeleteSceneOutput is empty on success
type DeleteSceneOutput struct{}

// ListScenesInput has no filters yet
type ListScenesInput struct{}

// ListScenesOutput lists stored scene ids
type ListScenesOutput struct {
	SceneIDs []string
}

// GetDefaultsInput has no fields
type GetDefaultsInput struct{}

// GetDefaultsOutput returns the current defaults
type GetDefaultsOutput struct {
	Defaults engine.Defaults
}

// UpdateDefaultsInput holds the settings to change. Nil fields keep their
// current value.
type UpdateDefaultsInput struct {
	Options *engine.Options
}

// UpdateDefaultsOutput returns the defaults now in effect
type UpdateDefaultsOutput struct {
	Defaults engine.Defaults
}
