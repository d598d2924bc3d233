package encounter

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu       sync.RWMutex
	store    map[string][]byte
	activeID string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves an encounter by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	enc, err := r.load(input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Encounter: enc}, nil
}

// Save creates or replaces an encounter
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Encounter == nil {
		return nil, errors.InvalidArgument(errEncounterNil)
	}
	if input.Encounter.ID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	data, err := json.Marshal(input.Encounter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal encounter")
	}

	r.mu.Lock()
	r.store[input.Encounter.ID] = data
	r.mu.Unlock()

	return &SaveOutput{Encounter: input.Encounter}, nil
}

// GetActive returns the active encounter
func (r *InMemoryRepository) GetActive(_ context.Context, _ GetActiveInput) (*GetActiveOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.activeID == "" {
		return nil, errors.NotFound(errNoActive)
	}

	enc, err := r.load(r.activeID)
	if err != nil {
		return nil, err
	}
	return &GetActiveOutput{Encounter: enc}, nil
}

// SetActive marks an encounter active
func (r *InMemoryRepository) SetActive(_ context.Context, input SetActiveInput) (*SetActiveOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if input.ID != "" {
		if _, ok := r.store[input.ID]; !ok {
			return nil, errors.NotFoundf("encounter with ID %s not found", input.ID)
		}
	}
	r.activeID = input.ID

	return &SetActiveOutput{}, nil
}

// load decodes a stored encounter; callers hold the lock
func (r *InMemoryRepository) load(id string) (*wng.Encounter, error) {
	data, ok := r.store[id]
	if !ok {
		return nil, errors.NotFoundf("encounter with ID %s not found", id)
	}

	var enc wng.Encounter
	if err := json.Unmarshal(data, &enc); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal encounter %s", id)
	}
	return &enc, nil
}
