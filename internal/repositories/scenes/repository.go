// Package scenes defines the interface for scene persistence
package scenes

//go:generate mockgen -destination=mock/mock_repository.go -package=scenesmock github.com/KirkDiggler/rpg-targeting/internal/repositories/scenes Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-targeting/internal/entities"
)

// Repository stores scenes together with their tokens and templates.
// Scenes returned by Get and List are linked (see entities.Scene.Link).
type Repository interface {
	// Create stores a new scene
	// Returns errors.InvalidArgument for a nil scene or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a scene by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the scene doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing scene
	// Returns errors.InvalidArgument for a nil scene or empty ID
	// Returns errors.NotFound if the scene doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a scene by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the scene doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every stored scene ID
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a scene
type CreateInput struct {
	Scene *entities.Scene
}

// CreateOutput defines the output for creating a scene
type CreateOutput struct {
	Scene *entities.Scene
}

// GetInput defines the input for getting a scene
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a scene
type GetOutput struct {
	Scene *entities.Scene
}

// UpdateInput defines the input for updating a scene
type UpdateInput struct {
	Scene *entities.Scene
}

// UpdateOutput defines the output for updating a scene
type UpdateOutput struct {
	Scene *entities.Scene
}

// DeleteInput defines the input for deleting a scene
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a scene
type DeleteOutput struct{}

// ListInput defines the input for listing scenes
type ListInput struct{}

// ListOutput defines the output for listing scenes
type ListOutput struct {
	IDs []string
}

const (
	errSceneNil     = "scene cannot be nil"
	errSceneIDEmpty = "scene ID cannot be empty"
)
