// Package schema validates scene documents against a JSON Schema before they
// are stored or queried.
package schema

import (
	_ "embed"
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
	"github.com/KirkDiggler/rpg-targeting/internal/errors"
)

//go:embed scene.schema.json
var sceneSchema []byte

// Validator validates documents against a compiled JSON Schema.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles schemaData.
func NewValidator(schemaData []byte) (*Validator, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaData))
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile schema")
	}
	return &Validator{schema: compiled}, nil
}

// NewSceneValidator returns a validator for scene documents.
func NewSceneValidator() (*Validator, error) {
	return NewValidator(sceneSchema)
}

// Validate checks a decoded document. Every violation is reported under its
// JSON path in the validation_errors metadata.
func (v *Validator) Validate(data interface{}) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return errors.InvalidArgumentf("document could not be validated: %v", err)
	}
	if result.Valid() {
		return nil
	}

	vb := errors.NewValidationBuilder()
	for _, desc := range result.Errors() {
		vb.Field(desc.Field(), desc.Description())
	}
	return vb.Build()
}

// ValidateBytes validates raw JSON bytes.
func (v *Validator) ValidateBytes(data []byte) error {
	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.InvalidArgumentf("invalid JSON: %v", err)
	}
	return v.Validate(obj)
}

// ValidateScene validates the JSON form of a scene.
func (v *Validator) ValidateScene(scene *entities.Scene) error {
	if scene == nil {
		return errors.InvalidField("scene", "is required")
	}
	data, err := json.Marshal(scene)
	if err != nil {
		return errors.Wrap(err, "failed to marshal scene")
	}
	return v.ValidateBytes(data)
}
