// Package targeting implements the targeting orchestrator: collision queries
// against stored scenes and management of those scenes and the engine
// defaults.
package targeting

//go:generate mockgen -destination=mock/mock_service.go -package=targetingmock github.com/KirkDiggler/rpg-targeting/internal/orchestrators/targeting Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-targeting/internal/repositories/scenes"
	engine "github.com/KirkDiggler/rpg-targeting/internal/targeting"
)

// Service defines the interface for targeting operations
type Service interface {
	// Queries
	Collides(ctx context.Context, input *CollidesInput) (*CollidesOutput, error)
	TokensIn(ctx context.Context, input *TokensInInput) (*TokensInOutput, error)
	TemplatesContaining(ctx context.Context, input *TemplatesContainingInput) (*TemplatesContainingOutput, error)

	// Scenes
	SaveScene(ctx context.Context, input *SaveSceneInput) (*SaveSceneOutput, error)
	GetScene(ctx context.Context, input *GetSceneInput) (*GetSceneOutput, error)
	DeleteScene(ctx context.Context, input *DeleteSceneInput) (*DeleteSceneOutput, error)
	ListScenes(ctx context.Context, input *ListScenesInput) (*ListScenesOutput, error)

	// Defaults
	GetDefaults(ctx context.Context, input *GetDefaultsInput) (*GetDefaultsOutput, error)
	UpdateDefaults(ctx context.Context, input *UpdateDefaultsInput) (*UpdateDefaultsOutput, error)
}

// Engine is the part of targeting.Engine the orchestrator uses
type Engine interface {
	Collides(token *entities.Token, template *entities.Template, opts *engine.Options) (*engine.Result, error)
	TokensIn(template *entities.Template, opts *engine.Options) ([]*entities.Token, error)
	TemplatesContaining(token *entities.Token, opts *engine.Options) ([]*entities.Template, error)
	Defaults() engine.Defaults
	SetDefaults(d engine.Defaults) error
}

// SceneValidator checks scene documents before they are stored
type SceneValidator interface {
	ValidateScene(scene *entities.Scene) error
}

// Config holds the dependencies for the targeting orchestrator
type Config struct {
	Engine      Engine
	SceneRepo   scenes.Repository
	Validator   SceneValidator
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.SceneRepo == nil {
		vb.RequiredField("SceneRepo")
	}
	if c.Validator == nil {
		vb.RequiredField("Validator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	engine    Engine
	sceneRepo scenes.Repository
	validator SceneValidator
	idGen     idgen.Generator
}

// NewOrchestrator creates a new targeting orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:    cfg.Engine,
		sceneRepo: cfg.SceneRepo,
		validator: cfg.Validator,
		idGen:     cfg.IDGenerator,
	}, nil
}

// Collides loads the token and template scenes and runs the query. When
// both ids name the same scene it is loaded once, so the pair shares a
// scene reference.
func (o *orchestrator) Collides(ctx context.Context, input *CollidesInput) (*CollidesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	templateSceneID := input.TemplateSceneID
	if templateSceneID == "" {
		templateSceneID = input.TokenSceneID
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("token_scene_id", input.TokenSceneID, vb)
	errors.ValidateRequired("token_id", input.TokenID, vb)
	errors.ValidateRequired("template_id", input.TemplateID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	tokenScene, err := o.loadScene(ctx, input.TokenSceneID)
	if err != nil {
		return nil, err
	}
	templateScene := tokenScene
	if templateSceneID != input.TokenSceneID {
		templateScene, err = o.loadScene(ctx, templateSceneID)
		if err != nil {
			return nil, err
		}
	}

	token, err := findToken(tokenScene, input.TokenID)
	if err != nil {
		return nil, err
	}
	template, err := findTemplate(templateScene, input.TemplateID)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.Collides(token, template, input.Options)
	if err != nil {
		return nil, errors.Wrap(err, "collision query failed")
	}

	return &CollidesOutput{Result: result}, nil
}

func (o *orchestrator) TokensIn(ctx context.Context, input *TokensInInput) (*TokensInOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("scene_id", input.SceneID, vb)
	errors.ValidateRequired("template_id", input.TemplateID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	scene, err := o.loadScene(ctx, input.SceneID)
	if err != nil {
		return nil, err
	}
	template, err := findTemplate(scene, input.TemplateID)
	if err != nil {
		return nil, err
	}

	tokens, err := o.engine.TokensIn(template, input.Options)
	if err != nil {
		return nil, errors.Wrap(err, "tokens in query failed")
	}

	slog.Debug("tokens in template",
		"scene_id", input.SceneID,
		"template_id", input.TemplateID,
		"count", len(tokens))

	return &TokensInOutput{Tokens: tokens}, nil
}

func (o *orchestrator) TemplatesContaining(ctx context.Context, input *TemplatesContainingInput) (*TemplatesContainingOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("scene_id", input.SceneID, vb)
	errors.ValidateRequired("token_id", input.TokenID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	scene, err := o.loadScene(ctx, input.SceneID)
	if err != nil {
		return nil, err
	}
	token, err := findToken(scene, input.TokenID)
	if err != nil {
		return nil, err
	}

	templates, err := o.engine.TemplatesContaining(token, input.Options)
	if err != nil {
		return nil, errors.Wrap(err, "templates containing query failed")
	}

	return &TemplatesContainingOutput{Templates: templates}, nil
}

// SaveScene validates the scene, fills in missing ids on a copy and creates
// or replaces it. The caller's scene is left untouched.
func (o *orchestrator) SaveScene(ctx context.Context, input *SaveSceneInput) (*SaveSceneOutput, error) {
	if input == nil || input.Scene == nil {
		return nil, errors.InvalidField("scene", "is required")
	}

	if err := o.validator.ValidateScene(input.Scene); err != nil {
		return nil, errors.Wrap(err, "invalid scene")
	}

	scene := input.Scene.Clone()
	o.assignIDs(scene)

	if err := checkUniqueIDs(scene); err != nil {
		return nil, err
	}

	created := false
	var stored *entities.Scene
	updateOutput, err := o.sceneRepo.Update(ctx, scenes.UpdateInput{Scene: scene})
	switch {
	case err == nil:
		stored = updateOutput.Scene
	case errors.IsNotFound(err):
		createOutput, createErr := o.sceneRepo.Create(ctx, scenes.CreateInput{Scene: scene})
		if createErr != nil {
			return nil, errors.Wrap(createErr, "failed to create scene")
		}
		stored = createOutput.Scene
		created = true
	default:
		return nil, errors.Wrap(err, "failed to update scene")
	}

	slog.Info("Scene saved",
		"scene_id", stored.ID,
		"created", created,
		"tokens", len(stored.Tokens),
		"templates", len(stored.Templates))

	return &SaveSceneOutput{Scene: stored, Created: created}, nil
}

func (o *orchestrator) GetScene(ctx context.Context, input *GetSceneInput) (*GetSceneOutput, error) {
	if input == nil || input.SceneID == "" {
		return nil, errors.InvalidField("scene_id", "is required")
	}

	scene, err := o.loadScene(ctx, input.SceneID)
	if err != nil {
		return nil, err
	}
	return &GetSceneOutput{Scene: scene}, nil
}

func (o *orchestrator) DeleteScene(ctx context.Context, input *DeleteSceneInput) (*DeleteSceneOutput, error) {
	if input == nil || input.SceneID == "" {
		return nil, errors.InvalidField("scene_id", "is required")
	}

	if _, err := o.sceneRepo.Delete(ctx, scenes.DeleteInput{ID: input.SceneID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete scene")
	}

	slog.Info("Scene deleted", "scene_id", input.SceneID)
	return &DeleteSceneOutput{}, nil
}

func (o *orchestrator) ListScenes(ctx context.Context, _ *ListScenesInput) (*ListScenesOutput, error) {
	output, err := o.sceneRepo.List(ctx, scenes.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scenes")
	}
	return &ListScenesOutput{SceneIDs: output.IDs}, nil
}

func (o *orchestrator) GetDefaults(_ context.Context, _ *GetDefaultsInput) (*GetDefaultsOutput, error) {
	return &GetDefaultsOutput{Defaults: o.engine.Defaults()}, nil
}

// UpdateDefaults applies the given settings over the current defaults.
func (o *orchestrator) UpdateDefaults(_ context.Context, input *UpdateDefaultsInput) (*UpdateDefaultsOutput, error) {
	if input == nil || input.Options == nil {
		return nil, errors.InvalidField("options", "is required")
	}

	updated := o.engine.Defaults().Apply(input.Options)
	if err := o.engine.SetDefaults(updated); err != nil {
		return nil, errors.Wrap(err, "invalid defaults")
	}

	return &UpdateDefaultsOutput{Defaults: o.engine.Defaults()}, nil
}

func (o *orchestrator) loadScene(ctx context.Context, id string) (*entities.Scene, error) {
	output, err := o.sceneRepo.Get(ctx, scenes.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get scene %s", id)
	}
	return output.Scene, nil
}

func (o *orchestrator) assignIDs(scene *entities.Scene) {
	if scene.ID == "" {
		scene.ID = o.idGen.Generate()
	}
	for _, t := range scene.Tokens {
		if t.ID == "" {
			t.ID = o.idGen.Generate()
		}
	}
	for _, t := range scene.Templates {
		if t.ID == "" {
			t.ID = o.idGen.Generate()
		}
	}
}

func checkUniqueIDs(scene *entities.Scene) error {
	vb := errors.NewValidationBuilder()
	seen := make(map[string]bool)
	for _, t := range scene.Tokens {
		if seen[t.ID] {
			vb.Fieldf("tokens", "duplicate token id %s", t.ID)
		}
		seen[t.ID] = true
	}
	seen = make(map[string]bool)
	for _, t := range scene.Templates {
		if seen[t.ID] {
			vb.Fieldf("templates", "duplicate template id %s", t.ID)
		}
		seen[t.ID] = true
	}
	return vb.Build()
}

func findToken(scene *entities.Scene, id string) (*entities.Token, error) {
	token, ok := scene.Token(id)
	if !ok {
		return nil, errors.NotFoundf("token %s not found in scene %s", id, scene.ID).WithMeta(errors.MetaField, "token_id")
	}
	return token, nil
}

func findTemplate(scene *entities.Scene, id string) (*entities.Template, error) {
	template, ok := scene.Template(id)
	if !ok {
		return nil, errors.NotFoundf("template %s not found in scene %s", id, scene.ID).WithMeta(errors.MetaField, "template_id")
	}
	return template, nil
}
