// Package v1alpha1 handles the technique grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/monster-api/internal/catalog"
	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
	"github.com/KirkDiggler/monster-api/internal/orchestrators/itemeffect"
	"github.com/KirkDiggler/monster-api/internal/orchestrators/journal"
	"github.com/KirkDiggler/monster-api/internal/selector"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Techniques  catalog.Techniques
	Selector    selector.Service
	ItemEffects itemeffect.Service
	Journal     journal.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Techniques == nil {
		vb.RequiredField("Techniques")
	}
	if c.Selector == nil {
		vb.RequiredField("Selector")
	}
	if c.ItemEffects == nil {
		vb.RequiredField("ItemEffects")
	}
	if c.Journal == nil {
		vb.RequiredField("Journal")
	}
	return vb.Build()
}

// Handler implements the technique gRPC service
type Handler struct {
	techniques  catalog.Techniques
	selector    selector.Service
	itemEffects itemeffect.Service
	journal     journal.Service
}

var _ TechniqueServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		techniques:  cfg.Techniques,
		selector:    cfg.Selector,
		itemEffects: cfg.ItemEffects,
		journal:     cfg.Journal,
	}, nil
}

// SelectTechnique picks a random learnable technique.
// Request: {element, known: [slug]}. Response: {success, slug}.
func (h *Handler) SelectTechnique(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	element, err := tuxemon.ParseElementType(stringField(req, "element"))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	known, err := stringListField(req, "known")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	result, err := h.selector.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
		Element: element,
		Known:   known,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return newResponse(map[string]any{
		"success": result.Success,
		"slug":    result.Slug,
	})
}

// LookupTechnique returns one technique definition.
// Request: {slug}. Response: {slug, types, randomly}.
func (h *Handler) LookupTechnique(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	slug := stringField(req, "slug")
	if slug == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slug is required"))
	}

	technique, err := h.techniques.Lookup(slug)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	types := make([]any, 0, len(technique.Types))
	for _, t := range technique.Types {
		types = append(types, t.String())
	}

	return newResponse(map[string]any{
		"slug":     technique.Slug,
		"types":    types,
		"randomly": technique.Randomly,
	})
}

// UseItem applies an item effect.
// Request: {monster_id, effect}. Response: {success, num_shakes, technique, extra}.
func (h *Handler) UseItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.itemEffects.UseItem(ctx, &itemeffect.UseItemInput{
		MonsterID: stringField(req, "monster_id"),
		Effect:    stringField(req, "effect"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	extra := make(map[string]any, len(output.Result.Extra))
	for k, v := range output.Result.Extra {
		extra[k] = v
	}

	return newResponse(map[string]any{
		"success":    output.Result.Success,
		"num_shakes": output.Result.NumShakes,
		"technique":  output.Result.Technique,
		"extra":      extra,
	})
}

// ConfirmLearn writes the pending technique into a slot.
// Request: {monster_id, replace_slot}; a missing replace_slot appends.
// Response: {monster_id, moves, learned, replaced}.
func (h *Handler) ConfirmLearn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	slot, err := intField(req, "replace_slot", -1)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.itemEffects.ConfirmLearn(ctx, &itemeffect.ConfirmLearnInput{
		MonsterID:   stringField(req, "monster_id"),
		ReplaceSlot: slot,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return newResponse(map[string]any{
		"monster_id": output.Monster.ID,
		"moves":      toAnyList(output.Monster.Moves),
		"learned":    output.Learned,
		"replaced":   output.Replaced,
	})
}

// ListJournal returns the player's journal.
// Request: {player_id}. Response: {entries: [{slug, txmn_id, status}], seen, caught}.
func (h *Handler) ListJournal(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.journal.ListEntries(ctx, &journal.ListEntriesInput{
		PlayerID: stringField(req, "player_id"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	entries := make([]any, 0, len(output.Entries))
	for _, entry := range output.Entries {
		entries = append(entries, map[string]any{
			"slug":    entry.Slug,
			"txmn_id": entry.TxmnID,
			"status":  string(entry.Status),
		})
	}

	return newResponse(map[string]any{
		"entries": entries,
		"seen":    output.Seen,
		"caught":  output.Caught,
	})
}

// RecordEncounter marks a species seen or caught.
// Request: {player_id, slug, status}. Response: {status}.
func (h *Handler) RecordEncounter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.journal.RecordEncounter(ctx, &journal.RecordEncounterInput{
		PlayerID: stringField(req, "player_id"),
		Slug:     stringField(req, "slug"),
		Status:   tuxemon.SeenStatus(stringField(req, "status")),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return newResponse(map[string]any{
		"status": string(output.Status),
	})
}
