package actor

import (
	"cmp"
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Actors
// are stored as JSON so callers never share pointers with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves an actor by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.RLock()
	data, ok := r.store[input.ID]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}

	var actor wng.Actor
	if err := json.Unmarshal(data, &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor %s", input.ID)
	}

	return &GetOutput{Actor: &actor}, nil
}

// Save creates or replaces an actor
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal actor")
	}

	r.mu.Lock()
	r.store[input.Actor.ID] = data
	r.mu.Unlock()

	return &SaveOutput{Actor: input.Actor}, nil
}

// List returns every stored actor ordered by ID
func (r *InMemoryRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	actors := make([]*wng.Actor, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if input.Type != "" && out.Actor.Type != input.Type {
			continue
		}
		actors = append(actors, out.Actor)
	}

	slices.SortFunc(actors, func(a, b *wng.Actor) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return &ListOutput{Actors: actors}, nil
}

// Delete removes an actor
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[input.ID]; !ok {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}
