// Package selector picks the technique a random-learn item teaches
package selector

//go:generate mockgen -destination=mock/mock_service.go -package=selectormock github.com/KirkDiggler/monster-api/internal/selector Service

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/monster-api/internal/catalog"
	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
)

// Service selects techniques
type Service interface {
	// SelectRandomTechnique picks one randomly-learnable technique of the
	// element that is not in Known. An empty candidate set is a normal
	// outcome reported as Success false, not an error.
	// Returns errors.InvalidArgument for an unknown element
	// Returns errors.Internal when the roller fails
	SelectRandomTechnique(input *SelectRandomTechniqueInput) (*tuxemon.SelectionResult, error)
}

// SelectRandomTechniqueInput is the request for a selection
type SelectRandomTechniqueInput struct {
	Element tuxemon.ElementType
	Known   []string
}

// Config holds the dependencies for the selector
type Config struct {
	Techniques catalog.Techniques

	// Roller is the random source. Defaults to dice.DefaultRoller.
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Techniques == nil {
		vb.RequiredField("Techniques")
	}
	return vb.Build()
}

type selector struct {
	techniques catalog.Techniques
	roller     dice.Roller
}

// New creates a selector over the given catalog
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &selector{
		techniques: cfg.Techniques,
		roller:     roller,
	}, nil
}

func (s *selector) SelectRandomTechnique(input *SelectRandomTechniqueInput) (*tuxemon.SelectionResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Element.IsValid() {
		return nil, errors.InvalidArgumentf("unknown element type %q", input.Element).
			WithMeta("element", input.Element.String())
	}

	remaining := s.remainingCandidates(input.Element, input.Known)

	switch len(remaining) {
	case 0:
		return &tuxemon.SelectionResult{Success: false}, nil
	case 1:
		return &tuxemon.SelectionResult{Success: true, Slug: remaining[0]}, nil
	}

	roll, err := s.roller.Roll(len(remaining))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to roll for technique")
	}
	if roll < 1 || roll > len(remaining) {
		return nil, errors.Internalf("roller returned %d for %d candidates", roll, len(remaining))
	}

	return &tuxemon.SelectionResult{Success: true, Slug: remaining[roll-1]}, nil
}

// remainingCandidates returns, in catalog order, the slugs of learnable
// techniques of the element minus the known ones
func (s *selector) remainingCandidates(element tuxemon.ElementType, known []string) []string {
	exclude := make(map[string]struct{}, len(known))
	for _, slug := range known {
		exclude[slug] = struct{}{}
	}

	var remaining []string
	for _, t := range s.techniques.All() {
		if !t.Randomly || !t.HasType(element) {
			continue
		}
		if _, ok := exclude[t.Slug]; ok {
			continue
		}
		remaining = append(remaining, t.Slug)
	}
	return remaining
}
