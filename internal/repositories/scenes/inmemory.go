package scenes

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-targeting/internal/errors"
	"github.com/KirkDiggler/rpg-targeting/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. Scenes
// are kept as encoded documents so stored and returned values never alias.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new scene
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Scene == nil {
		return nil, errors.InvalidArgument(errSceneNil)
	}
	if input.Scene.ID == "" {
		return nil, errors.InvalidArgument(errSceneIDEmpty)
	}

	scene := *input.Scene
	now := r.clock.Now().Unix()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[scene.ID]; exists {
		return nil, errors.AlreadyExistsf("scene with ID %s already exists", scene.ID)
	}

	scene.CreatedAt = now
	scene.UpdatedAt = now

	data, err := json.Marshal(&scene)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal scene")
	}
	r.store[scene.ID] = data

	stored, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &CreateOutput{Scene: stored}, nil
}

// Get retrieves a scene by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSceneIDEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("scene with ID %s not found", input.ID)
	}

	scene, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Scene: scene}, nil
}

// Update replaces an existing scene
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Scene == nil {
		return nil, errors.InvalidArgument(errSceneNil)
	}
	if input.Scene.ID == "" {
		return nil, errors.InvalidArgument(errSceneIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.store[input.Scene.ID]
	if !exists {
		return nil, errors.NotFoundf("scene with ID %s not found", input.Scene.ID)
	}
	previous, err := decode(existing)
	if err != nil {
		return nil, err
	}

	scene := *input.Scene
	scene.CreatedAt = previous.CreatedAt
	scene.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(&scene)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal scene")
	}
	r.store[scene.ID] = data

	stored, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Scene: stored}, nil
}

// Delete removes a scene
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSceneIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("scene with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns the stored scene IDs in order
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &ListOutput{IDs: ids}, nil
}
