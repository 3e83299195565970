package itemeffect

import (
	"strings"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
)

// Effect names
const (
	// EffectLearnMM teaches a random technique of one element
	EffectLearnMM = "learn_mm"
)

// Event types published on the event bus
const (
	EventTechniqueLearnQueued = "technique.learn_queued"
	EventTechniqueLearned     = "technique.learned"
)

// Event context keys
const (
	ContextKeyTechnique = "technique"
	ContextKeyPendingID = "pending_id"
	ContextKeyElement   = "element"
	ContextKeySlot      = "slot"
	ContextKeyReplaced  = "replaced"
)

// Effect is a parsed item effect such as "learn_mm fire"
type Effect struct {
	Name   string
	Params []string
}

// ParseEffect parses an effect string. The first word is the effect
// name and the rest are its parameters.
func ParseEffect(s string) (*Effect, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.InvalidArgument("effect is required")
	}

	effect := &Effect{
		Name:   strings.ToLower(fields[0]),
		Params: fields[1:],
	}

	switch effect.Name {
	case EffectLearnMM:
		if len(effect.Params) != 1 {
			return nil, errors.InvalidArgumentf("%s takes exactly one element, got %d", EffectLearnMM, len(effect.Params)).
				WithMeta("effect", s)
		}
	default:
		return nil, errors.InvalidArgumentf("unknown effect %q", effect.Name).
			WithMeta("effect", s)
	}

	return effect, nil
}

// ItemEffectResult is what applying an item effect reports back
type ItemEffectResult struct {
	Success bool

	// NumShakes is only set by capture effects
	NumShakes int

	Extra map[string]string

	// Technique is the queued technique when a learn effect succeeded
	Technique string
}

// UseItemInput is the request to apply an item effect to a monster
type UseItemInput struct {
	MonsterID string
	Effect    string
}

// UseItemOutput is the result of applying an item effect
type UseItemOutput struct {
	Result  *ItemEffectResult
	Monster *tuxemon.Monster
}

// ConfirmLearnInput applies a monster's pending technique.
// A negative ReplaceSlot appends when a slot is free.
type ConfirmLearnInput struct {
	MonsterID   string
	ReplaceSlot int
}

// ConfirmLearnOutput is the monster after learning
type ConfirmLearnOutput struct {
	Monster *tuxemon.Monster
	Learned string

	// Replaced is the slug that was overwritten, empty on append
	Replaced string
}
