package targeting

import (
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
)

// Method selects how a coverage ratio is computed.
type Method string

const (
	// MethodPointsCenter tests the token center point only
	MethodPointsCenter Method = "POINTS_CENTER"
	// MethodGridSpacesPoints tests the centers of the grid cells the token occupies
	MethodGridSpacesPoints Method = "GRID_SPACES_POINTS"
	// MethodAreaIntersection divides the shared area by the token area
	MethodAreaIntersection Method = "AREA_INTERSECTION"
)

// Methods lists every collision method.
var Methods = []string{
	string(MethodPointsCenter),
	string(MethodGridSpacesPoints),
	string(MethodAreaIntersection),
}

// TokenShapeKind selects the shape approximating a token.
type TokenShapeKind string

const (
	TokenShapeCircle    TokenShapeKind = "CIRCLE"
	TokenShapeRectangle TokenShapeKind = "RECTANGLE"
)

// TokenShapeKinds lists every token approximation.
var TokenShapeKinds = []string{string(TokenShapeCircle), string(TokenShapeRectangle)}

// Field names reported on validation errors.
const (
	FieldTolerance             = "tolerance"
	FieldCollisionMethod       = "collision_method"
	FieldTokenCollisionShape   = "token_collision_shape"
	FieldPercentageOutput      = "percentage_output"
	FieldConsiderTemplateRatio = "consider_template_ratio"
)

// Defaults is a complete set of collision settings. The engine holds one as
// its process-wide fallback; every query resolves its own copy.
type Defaults struct {
	Tolerance             float64        `json:"tolerance" yaml:"tolerance"`
	CollisionMethod       Method         `json:"collision_method" yaml:"collision_method"`
	PercentageOutput      bool           `json:"percentage_output" yaml:"percentage_output"`
	ConsiderTemplateRatio bool           `json:"consider_template_ratio" yaml:"consider_template_ratio"`
	TokenCollisionShape   TokenShapeKind `json:"token_collision_shape" yaml:"token_collision_shape"`
}

// DefaultDefaults returns the settings used when nothing is configured
func DefaultDefaults() Defaults {
	return Defaults{
		Tolerance:             0.5,
		CollisionMethod:       MethodGridSpacesPoints,
		PercentageOutput:      false,
		ConsiderTemplateRatio: false,
		TokenCollisionShape:   TokenShapeRectangle,
	}
}

// Validate checks tolerance is in (0,1] and both enums are known
func (d Defaults) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive(FieldTolerance, d.Tolerance, vb)
	if d.Tolerance > 1 {
		vb.Fieldf(FieldTolerance, "must be at most 1, got %v", d.Tolerance)
	}
	errors.ValidateEnum(FieldCollisionMethod, string(d.CollisionMethod), Methods, vb)
	errors.ValidateEnum(FieldTokenCollisionShape, string(d.TokenCollisionShape), TokenShapeKinds, vb)
	return vb.Build()
}

// Options are per-query overrides. Nil fields fall back to the engine defaults.
type Options struct {
	Tolerance             *float64        `json:"tolerance,omitempty"`
	CollisionMethod       *Method         `json:"collision_method,omitempty"`
	PercentageOutput      *bool           `json:"percentage_output,omitempty"`
	ConsiderTemplateRatio *bool           `json:"consider_template_ratio,omitempty"`
	TokenCollisionShape   *TokenShapeKind `json:"token_collision_shape,omitempty"`
}

// Apply returns d with every non-nil option applied. d is not modified.
func (d Defaults) Apply(opts *Options) Defaults {
	if opts == nil {
		return d
	}
	if opts.Tolerance != nil {
		d.Tolerance = *opts.Tolerance
	}
	if opts.CollisionMethod != nil {
		d.CollisionMethod = *opts.CollisionMethod
	}
	if opts.PercentageOutput != nil {
		d.PercentageOutput = *opts.PercentageOutput
	}
	if opts.ConsiderTemplateRatio != nil {
		d.ConsiderTemplateRatio = *opts.ConsiderTemplateRatio
	}
	if opts.TokenCollisionShape != nil {
		d.TokenCollisionShape = *opts.TokenCollisionShape
	}
	return d
}

// Ptr returns a pointer to v, for filling Options literals.
func Ptr[T any](v T) *T {
	return &v
}

// Result is the outcome of one collision query.
type Result struct {
	// Ratio is the coverage ratio in [0,1] regardless of output mode
	Ratio float64 `json:"ratio"`
	// Covered is Ratio >= tolerance
	Covered bool `json:"covered"`
	// PercentageOutput records which of the two the caller asked for
	PercentageOutput bool `json:"percentage_output"`
}

// Value returns the ratio when percentage output was requested and the
// covered flag otherwise.
func (r *Result) Value() any {
	if r.PercentageOutput {
		return r.Ratio
	}
	return r.Covered
}
