package v1alpha1

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/token-action-hud-wng/internal/entities/wng"
	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/host"
	"github.com/KirkDiggler/token-action-hud-wng/internal/hud"
)

// BuildActionsRequest selects the actors to build for
type BuildActionsRequest struct {
	ActorIDs []string `json:"actor_ids"`
}

// BuildActionsResponse is the ordered action tree
type BuildActionsResponse struct {
	Groups []hud.GroupActions `json:"groups"`
}

// HandleClickRequest is one action click
type HandleClickRequest struct {
	ActorIDs     []string        `json:"actor_ids"`
	EncodedValue string          `json:"encoded_value"`
	Event        host.ClickEvent `json:"event"`
}

// HandleClickResponse is empty
type HandleClickResponse struct{}

// GetLayoutRequest is empty
type GetLayoutRequest struct{}

// GetLayoutResponse is the localized default layout
type GetLayoutResponse struct {
	hud.Defaults
}

// ListActorsRequest optionally filters by actor type
type ListActorsRequest struct {
	Type wng.ActorType `json:"type,omitempty"`
}

// ListActorsResponse lists actors ordered by ID
type ListActorsResponse struct {
	Actors []*wng.Actor `json:"actors"`
}

// ListChatRequest asks for the newest chat messages
type ListChatRequest struct {
	ActorID string `json:"actor_id,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// ListChatResponse lists messages newest first
type ListChatResponse struct {
	Messages []*wng.ChatMessage `json:"messages"`
}

// ToStruct converts a message to its Struct form
func ToStruct(msg any) (*structpb.Struct, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to marshal message")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to convert message")
	}
	return out, nil
}

// FromStruct fills msg from its Struct form; a nil Struct leaves msg zero
func FromStruct(in *structpb.Struct, msg any) error {
	if in == nil {
		return nil
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read message")
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed message")
	}
	return nil
}
