package entities

// EntityTypeToken is the core.Entity type of a token.
const EntityTypeToken = "token"

// Token is a placed piece occupying a footprint on the scene
type Token struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	SceneID string `json:"scene_id,omitempty" yaml:"scene_id,omitempty"`
	Scene   *Scene `json:"-" yaml:"-"`

	X      float64 `json:"x" yaml:"x"`           // Top-left corner in pixels
	Y      float64 `json:"y" yaml:"y"`           // Top-left corner in pixels
	Width  float64 `json:"width" yaml:"width"`   // Grid units, may be fractional
	Height float64 `json:"height" yaml:"height"` // Grid units, may be fractional
}

// GetID returns the token id
func (t *Token) GetID() string { return t.ID }

// GetType returns the entity type
func (t *Token) GetType() string { return EntityTypeToken }
