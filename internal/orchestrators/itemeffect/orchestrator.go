// Package itemeffect applies item effects to monsters
package itemeffect

//go:generate mockgen -destination=mock/mock_service.go -package=itemeffectmock github.com/KirkDiggler/monster-api/internal/orchestrators/itemeffect Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
	"github.com/KirkDiggler/monster-api/internal/pkg/clock"
	"github.com/KirkDiggler/monster-api/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-api/internal/repositories/monster"
	"github.com/KirkDiggler/monster-api/internal/selector"
)

// Service defines the item effect operations
type Service interface {
	// UseItem applies an effect to a monster. A learn effect queues the
	// chosen technique on the monster until ConfirmLearn.
	// Returns errors.NotFound when the monster does not exist
	// Returns errors.FailedPrecondition when a technique is already pending
	// Returns errors.Aborted when the monster kept changing concurrently
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)

	// ConfirmLearn writes the pending technique into the monster's moves
	// Returns errors.FailedPrecondition when nothing is pending
	// Returns errors.OutOfRange for an unusable slot
	// Returns errors.Aborted when the monster kept changing concurrently
	ConfirmLearn(ctx context.Context, input *ConfirmLearnInput) (*ConfirmLearnOutput, error)
}

// Config holds the dependencies for the item effect orchestrator
type Config struct {
	MonsterRepo monster.Repository
	Selector    selector.Service
	EventBus    events.EventBus

	// IDGenerator defaults to UUIDs prefixed with "learn"
	IDGenerator idgen.Generator
	// Clock defaults to the system clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.Selector == nil {
		vb.RequiredField("Selector")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

type orchestrator struct {
	monsterRepo monster.Repository
	selector    selector.Service
	eventBus    events.EventBus
	idGen       idgen.Generator
	clock       clock.Clock
}

// NewOrchestrator creates a new item effect orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		monsterRepo: cfg.MonsterRepo,
		selector:    cfg.Selector,
		eventBus:    cfg.EventBus,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
	}
	if o.idGen == nil {
		o.idGen = idgen.NewUUID("learn")
	}
	if o.clock == nil {
		o.clock = clock.New()
	}

	return o, nil
}

func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monster_id", input.MonsterID, vb)
	errors.ValidateRequired("effect", input.Effect, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	effect, err := ParseEffect(input.Effect)
	if err != nil {
		return nil, err
	}

	switch effect.Name {
	case EffectLearnMM:
		return o.learnRandom(ctx, input.MonsterID, effect)
	default:
		return nil, errors.InvalidArgumentf("unknown effect %q", effect.Name)
	}
}

func (o *orchestrator) learnRandom(ctx context.Context, monsterID string, effect *Effect) (*UseItemOutput, error) {
	element, err := tuxemon.ParseElementType(effect.Params[0])
	if err != nil {
		return nil, err
	}

	// Selection reads the known moves, so it runs against the same
	// snapshot that gets written.
	var queued *tuxemon.PendingTechnique
	updated, err := o.monsterRepo.Update(ctx, monster.UpdateInput{
		ID: monsterID,
		Mutate: func(m *tuxemon.Monster) (bool, error) {
			queued = nil
			if m.PendingTechnique != nil {
				return false, errors.FailedPreconditionf("monster %s already has pending technique %s",
					m.ID, m.PendingTechnique.Slug).
					WithMeta("monster_id", m.ID).
					WithMeta("pending_technique", m.PendingTechnique.Slug)
			}

			selected, err := o.selector.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
				Element: element,
				Known:   m.KnownTechniques(),
			})
			if err != nil {
				return false, errors.Wrapf(err, "failed to select %s technique", element)
			}
			if !selected.Success {
				return false, nil
			}

			queued = &tuxemon.PendingTechnique{
				ID:       o.idGen.Generate(),
				Slug:     selected.Slug,
				Source:   effect.Name,
				QueuedAt: o.clock.Now(),
			}
			m.PendingTechnique = queued
			return true, nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to queue technique for monster %s", monsterID)
	}
	m := updated.Monster

	if queued == nil {
		slog.Info("No technique left to learn",
			"monster_id", m.ID,
			"element", element.String())
		return &UseItemOutput{
			Result:  &ItemEffectResult{Success: false},
			Monster: m,
		}, nil
	}

	slog.Info("Technique queued",
		"monster_id", m.ID,
		"technique", queued.Slug,
		"pending_id", queued.ID)

	o.publish(ctx, EventTechniqueLearnQueued, m, map[string]any{
		ContextKeyTechnique: queued.Slug,
		ContextKeyPendingID: queued.ID,
		ContextKeyElement:   element.String(),
	})

	return &UseItemOutput{
		Result: &ItemEffectResult{
			Success:   true,
			Technique: queued.Slug,
		},
		Monster: m,
	}, nil
}

func (o *orchestrator) ConfirmLearn(ctx context.Context, input *ConfirmLearnInput) (*ConfirmLearnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MonsterID == "" {
		return nil, errors.InvalidArgument("monster_id is required")
	}

	var (
		pending  *tuxemon.PendingTechnique
		replaced string
	)
	updated, err := o.monsterRepo.Update(ctx, monster.UpdateInput{
		ID: input.MonsterID,
		Mutate: func(m *tuxemon.Monster) (bool, error) {
			pending, replaced = m.PendingTechnique, ""
			if pending == nil {
				return false, errors.FailedPreconditionf("monster %s has no pending technique", m.ID).
					WithMeta("monster_id", m.ID)
			}

			switch {
			case input.ReplaceSlot < 0 && len(m.Moves) < tuxemon.MaxMoves:
				m.Moves = append(m.Moves, pending.Slug)
			case input.ReplaceSlot >= 0 && input.ReplaceSlot < len(m.Moves):
				replaced = m.Moves[input.ReplaceSlot]
				m.Moves[input.ReplaceSlot] = pending.Slug
			default:
				return false, errors.OutOfRangef("slot %d is not usable for a monster with %d of %d moves",
					input.ReplaceSlot, len(m.Moves), tuxemon.MaxMoves).
					WithMeta("slot", input.ReplaceSlot)
			}
			m.PendingTechnique = nil
			return true, nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to confirm technique for monster %s", input.MonsterID)
	}
	m := updated.Monster

	slog.Info("Technique learned",
		"monster_id", m.ID,
		"technique", pending.Slug,
		"replaced", replaced)

	o.publish(ctx, EventTechniqueLearned, m, map[string]any{
		ContextKeyTechnique: pending.Slug,
		ContextKeyPendingID: pending.ID,
		ContextKeySlot:      input.ReplaceSlot,
		ContextKeyReplaced:  replaced,
	})

	return &ConfirmLearnOutput{
		Monster:  m,
		Learned:  pending.Slug,
		Replaced: replaced,
	}, nil
}

// publish notifies subscribers. The monster is already saved at this
// point so a handler error is logged, not returned.
func (o *orchestrator) publish(ctx context.Context, eventType string, m *tuxemon.Monster, data map[string]any) {
	event := events.NewGameEvent(eventType, m, nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Event handler failed",
			"event", eventType,
			"monster_id", m.ID,
			"error", err)
	}
}
