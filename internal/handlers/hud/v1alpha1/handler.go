// Package v1alpha1 serves the HUD bridge over gRPC
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/token-action-hud-wng/internal/errors"
	"github.com/KirkDiggler/token-action-hud-wng/internal/services/bridge"
)

// HandlerConfig holds dependencies for the HUD handler
type HandlerConfig struct {
	Service bridge.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Service == nil {
		return errors.InvalidArgument("service is required")
	}
	return nil
}

// Handler implements HudServiceServer
type Handler struct {
	service bridge.Service
}

var _ HudServiceServer = (*Handler)(nil)

// NewHandler creates a new HUD handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.Service}, nil
}

// BuildActions builds the action tree for a selection
func (h *Handler) BuildActions(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req BuildActionsRequest
	if err := FromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.BuildActions(ctx, &bridge.BuildActionsInput{ActorIDs: req.ActorIDs})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&BuildActionsResponse{Groups: out.Groups})
}

// HandleClick routes one click
func (h *Handler) HandleClick(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req HandleClickRequest
	if err := FromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.EncodedValue == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("encoded_value is required"))
	}
	if len(req.ActorIDs) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_ids is required"))
	}

	_, err := h.service.HandleClick(ctx, &bridge.HandleClickInput{
		ActorIDs:     req.ActorIDs,
		EncodedValue: req.EncodedValue,
		Event:        req.Event,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&HandleClickResponse{})
}

// GetLayout returns the default layout
func (h *Handler) GetLayout(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.service.GetLayout(ctx, &bridge.GetLayoutInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GetLayoutResponse{Defaults: *out.Defaults})
}

// ListActors lists the selectable actors
func (h *Handler) ListActors(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ListActorsRequest
	if err := FromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ListActors(ctx, &bridge.ListActorsInput{Type: req.Type})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ListActorsResponse{Actors: out.Actors})
}

// ListChat returns the newest chat messages
func (h *Handler) ListChat(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ListChatRequest
	if err := FromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ListChat(ctx, &bridge.ListChatInput{ActorID: req.ActorID, Limit: req.Limit})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ListChatResponse{Messages: out.Messages})
}

func respond(msg any) (*structpb.Struct, error) {
	out, err := ToStruct(msg)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
