// Package encounter stores encounters and tracks which one is active
package encounter

//go:generate mockgen -destination=mock/mock_repository.go -package=encountermock github.com/KirkDiggler/token-action-hud-wng/internal/repositories/encounter Repository

import (
	"context"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
)

// Repository defines the interface for encounter persistence
type Repository interface {
	// Get retrieves an encounter by ID
	// Returns errors.NotFound if the encounter doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces an encounter
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// GetActive returns the active encounter
	// Returns errors.NotFound when no encounter is active
	GetActive(ctx context.Context, input GetActiveInput) (*GetActiveOutput, error)

	// SetActive marks an encounter active; an empty ID clears it
	// Returns errors.NotFound if the encounter doesn't exist
	SetActive(ctx context.Context, input SetActiveInput) (*SetActiveOutput, error)
}

// GetInput defines the input for getting an encounter
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an encounter
type GetOutput struct {
	Encounter *wng.Encounter
}

// SaveInput defines the input for saving an encounter
type SaveInput struct {
	Encounter *wng.Encounter
}

// SaveOutput defines the output for saving an encounter
type SaveOutput struct {
	Encounter *wng.Encounter
}

// GetActiveInput defines the input for getting the active encounter
type GetActiveInput struct{}

// GetActiveOutput defines the output for getting the active encounter
type GetActiveOutput struct {
	Encounter *wng.Encounter
}

// SetActiveInput defines the input for setting the active encounter
type SetActiveInput struct {
	ID string
}

// SetActiveOutput defines the output for setting the active encounter
type SetActiveOutput struct{}

const (
	errEncounterNil     = "encounter cannot be nil"
	errEncounterIDEmpty = "encounter ID cannot be empty"
	errNoActive         = "no active encounter"
)
