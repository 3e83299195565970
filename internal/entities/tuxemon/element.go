// Package tuxemon holds the monster, technique and journal data types
package tuxemon

import (
	"strings"

	"github.com/KirkDiggler/monster-api/internal/errors"
)

// ElementType tags a technique (and a monster) with an element
type ElementType string

// Element types
const (
	ElementAether ElementType = "aether"
	ElementWood   ElementType = "wood"
	ElementFire   ElementType = "fire"
	ElementEarth  ElementType = "earth"
	ElementMetal  ElementType = "metal"
	ElementWater  ElementType = "water"
)

var allElementTypes = []ElementType{
	ElementAether,
	ElementWood,
	ElementFire,
	ElementEarth,
	ElementMetal,
	ElementWater,
}

// AllElementTypes returns every known element type
func AllElementTypes() []ElementType {
	out := make([]ElementType, len(allElementTypes))
	copy(out, allElementTypes)
	return out
}

// IsValid reports whether e is one of the known element types
func (e ElementType) IsValid() bool {
	for _, known := range allElementTypes {
		if e == known {
			return true
		}
	}
	return false
}

// String returns the element tag
func (e ElementType) String() string {
	return string(e)
}

// ParseElementType converts a tag to an ElementType. Case and surrounding
// space are ignored.
func ParseElementType(s string) (ElementType, error) {
	e := ElementType(strings.ToLower(strings.TrimSpace(s)))
	if !e.IsValid() {
		return "", errors.InvalidArgumentf("unknown element type %q", s).
			WithMeta("element", s)
	}
	return e, nil
}
