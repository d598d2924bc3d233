// Package chatlog persists the game chat log in SQLite
package chatlog

//go:generate mockgen -destination=mock/mock_repository.go -package=chatlogmock github.com/KirkDiggler/token-action-hud-wng/internal/repositories/chatlog Repository

import (
	"context"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
)

const (
	// DefaultListLimit caps List when no limit is given
	DefaultListLimit = 50
	// MaxListLimit is the most messages one List returns
	MaxListLimit = 500
)

// Repository defines the interface for chat log persistence
type Repository interface {
	// Append stores a message, assigning its ID and timestamp
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns messages newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// AppendInput defines the input for appending a message
type AppendInput struct {
	Message *wng.ChatMessage
}

// AppendOutput defines the output for appending a message
type AppendOutput struct {
	Message *wng.ChatMessage
}

// ListInput defines the input for listing messages
type ListInput struct {
	// ActorID filters by speaker when set
	ActorID string
	// Limit defaults to DefaultListLimit and is clamped to MaxListLimit
	Limit int
}

// ListOutput defines the output for listing messages
type ListOutput struct {
	Messages []*wng.ChatMessage
}
