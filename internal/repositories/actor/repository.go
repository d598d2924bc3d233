// Package actor provides the interface for actor persistence
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/token-action-hud-wng/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Get retrieves an actor by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the actor doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces an actor
	// Returns errors.InvalidArgument for a nil actor or empty ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns every stored actor ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes an actor
	// Returns errors.NotFound if the actor doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *wng.Actor
}

// SaveInput defines the input for saving an actor
type SaveInput struct {
	Actor *wng.Actor
}

// SaveOutput defines the output for saving an actor
type SaveOutput struct {
	Actor *wng.Actor
}

// ListInput defines the input for listing actors
type ListInput struct {
	// Type filters by actor type when set
	Type wng.ActorType
}

// ListOutput defines the output for listing actors
type ListOutput struct {
	Actors []*wng.Actor
}

// DeleteInput defines the input for deleting an actor
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an actor
type DeleteOutput struct{}

const (
	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
)
