// Package targeting decides which tokens an area template covers.
//
// An Engine holds the process-wide default settings. Every query resolves
// its own copy of those defaults once at entry, applies per-query Options,
// validates the result and then runs one of three collision methods:
//
//	POINTS_CENTER       token center point in the template
//	GRID_SPACES_POINTS  fraction of occupied cell centers in the template
//	AREA_INTERSECTION   shared area over token area (or template area)
//
// Queries never modify tokens, templates or scenes.
package targeting

import (
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/geometry"
)

// Config holds the dependencies for an Engine
type Config struct {
	Defaults Defaults
	Logger   *slog.Logger
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	return c.Defaults.Validate()
}

// Engine answers collision queries between tokens and templates
type Engine struct {
	mu       sync.RWMutex
	defaults Defaults
	logger   *slog.Logger
}

// New creates an engine with the given defaults
func New(cfg *Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		defaults: cfg.Defaults,
		logger:   logger,
	}, nil
}

// Defaults returns the current process-wide defaults
func (e *Engine) Defaults() Defaults {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.defaults
}

// SetDefaults replaces the process-wide defaults. Invalid settings are
// rejected and the previous defaults stay in effect.
func (e *Engine) SetDefaults(d Defaults) error {
	if err := d.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	e.defaults = d
	e.mu.Unlock()

	e.logger.Info("targeting defaults updated",
		"tolerance", d.Tolerance,
		"collision_method", d.CollisionMethod,
		"percentage_output", d.PercentageOutput,
		"consider_template_ratio", d.ConsiderTemplateRatio,
		"token_collision_shape", d.TokenCollisionShape)
	return nil
}

// Resolve applies opts over the current defaults and validates the result.
func (e *Engine) Resolve(opts *Options) (Defaults, error) {
	resolved := e.Defaults().Apply(opts)
	if err := resolved.Validate(); err != nil {
		return Defaults{}, err
	}
	return resolved, nil
}

// Collides measures how much of token the template covers.
//
// Token and template must be on the same scene. A pair whose bounding boxes
// do not touch has ratio 0 without running the collision method.
func (e *Engine) Collides(token *entities.Token, template *entities.Template, opts *Options) (*Result, error) {
	resolved, err := e.Resolve(opts)
	if err != nil {
		return nil, err
	}

	templateShape, err := WorldShape(template)
	if err != nil {
		return nil, err
	}

	ratio, err := e.collide(token, template, templateShape, resolved)
	if err != nil {
		return nil, err
	}
	return newResult(ratio, resolved), nil
}

// TokensIn returns the tokens on the template's scene that the template
// covers. Percentage output is always off here. A token that cannot be
// tested is logged and left out.
func (e *Engine) TokensIn(template *entities.Template, opts *Options) ([]*entities.Token, error) {
	resolved, err := e.Resolve(opts)
	if err != nil {
		return nil, err
	}
	resolved.PercentageOutput = false

	templateShape, err := WorldShape(template)
	if err != nil {
		return nil, err
	}

	var covered []*entities.Token
	for _, token := range template.Scene.Tokens {
		ratio, err := e.collide(token, template, templateShape, resolved)
		if err != nil {
			e.logger.Warn("skipping token",
				"token_id", tokenID(token),
				"template_id", template.ID,
				"error", err)
			continue
		}
		if newResult(ratio, resolved).Covered {
			covered = append(covered, token)
		}
	}
	return covered, nil
}

// TemplatesContaining returns the templates on the token's scene that cover
// the token. Failures follow the TokensIn policy.
func (e *Engine) TemplatesContaining(token *entities.Token, opts *Options) ([]*entities.Template, error) {
	resolved, err := e.Resolve(opts)
	if err != nil {
		return nil, err
	}
	resolved.PercentageOutput = false

	if token == nil {
		return nil, errors.InvalidField("token", "is required")
	}
	if token.Scene == nil {
		return nil, errors.InvalidField("token.scene", "is required")
	}

	var containing []*entities.Template
	for _, template := range token.Scene.Templates {
		templateShape, err := WorldShape(template)
		if err == nil {
			var ratio float64
			ratio, err = e.collide(token, template, templateShape, resolved)
			if err == nil && newResult(ratio, resolved).Covered {
				containing = append(containing, template)
			}
		}
		if err != nil {
			e.logger.Warn("skipping template",
				"token_id", token.ID,
				"template_id", templateID(template),
				"error", err)
		}
	}
	return containing, nil
}

func (e *Engine) collide(token *entities.Token, template *entities.Template, templateShape geometry.Shape, d Defaults) (float64, error) {
	if err := validatePair(token, template); err != nil {
		return 0, err
	}

	tokenShape, err := TokenShape(token, d.TokenCollisionShape)
	if err != nil {
		return 0, err
	}

	bounds, err := tokenBounds(token, tokenShape, d.CollisionMethod)
	if err != nil {
		return 0, err
	}
	if !bounds.Overlaps(geometry.BoundsOf(templateShape)) {
		e.logger.Debug("bounding boxes disjoint",
			"token_id", token.ID,
			"template_id", template.ID)
		return 0, nil
	}

	return coverage(token, templateShape, tokenShape, d)
}

func validatePair(token *entities.Token, template *entities.Template) error {
	vb := errors.NewValidationBuilder()
	if token == nil {
		vb.RequiredField("token")
	} else if token.Scene == nil {
		vb.RequiredField("token.scene")
	}
	if template == nil {
		vb.RequiredField("template")
	} else if template.Scene == nil {
		vb.RequiredField("template.scene")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if !entities.SameScene(token.Scene, template.Scene) {
		return errors.InvalidFieldf("scene", "token %q and template %q belong to different scenes",
			token.ID, template.ID)
	}

	vb = errors.NewValidationBuilder()
	errors.ValidatePositive("scene.grid.size", token.Scene.Grid.Size, vb)
	errors.ValidateNonNegative("token.width", token.Width, vb)
	errors.ValidateNonNegative("token.height", token.Height, vb)
	return vb.Build()
}

func newResult(ratio float64, d Defaults) *Result {
	return &Result{
		Ratio:            ratio,
		Covered:          ratio >= d.Tolerance,
		PercentageOutput: d.PercentageOutput,
	}
}

func tokenID(t *entities.Token) string {
	if t == nil {
		return ""
	}
	return t.ID
}

func templateID(t *entities.Template) string {
	if t == nil {
		return ""
	}
	return t.ID
}
