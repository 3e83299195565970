// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
)

// MonsterBuilder provides a fluent interface for building test monsters
type MonsterBuilder struct {
	monster *tuxemon.Monster
}

// NewMonsterBuilder creates a builder with minimal defaults
func NewMonsterBuilder() *MonsterBuilder {
	return &MonsterBuilder{
		monster: &tuxemon.Monster{
			ID:      "mon-test-123",
			Slug:    "rockitten",
			OwnerID: "player-test-123",
			Moves:   []string{},
		},
	}
}

// WithID sets the monster ID
func (b *MonsterBuilder) WithID(id string) *MonsterBuilder {
	b.monster.ID = id
	return b
}

// WithSlug sets the species slug
func (b *MonsterBuilder) WithSlug(slug string) *MonsterBuilder {
	b.monster.Slug = slug
	return b
}

// WithMoves replaces the known techniques
func (b *MonsterBuilder) WithMoves(moves ...string) *MonsterBuilder {
	b.monster.Moves = append([]string{}, moves...)
	return b
}

// WithPendingTechnique queues a technique as if an item had been used
func (b *MonsterBuilder) WithPendingTechnique(slug string) *MonsterBuilder {
	b.monster.PendingTechnique = &tuxemon.PendingTechnique{
		ID:       "learn-test-1",
		Slug:     slug,
		Source:   "learn_mm",
		QueuedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	return b
}

// Build returns the monster
func (b *MonsterBuilder) Build() *tuxemon.Monster {
	return b.monster
}
