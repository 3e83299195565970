package tuxemon

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/monster-api/internal/errors"
)

// MaxMoves is the number of technique slots a monster has
const MaxMoves = 4

// Monster is the part of a monster's state the technique flow works with
type Monster struct {
	ID      string   `json:"id"`
	Slug    string   `json:"slug"`
	OwnerID string   `json:"owner_id,omitempty"`
	Moves   []string `json:"moves"`

	// PendingTechnique is a technique waiting to be written into a slot
	PendingTechnique *PendingTechnique `json:"pending_technique,omitempty"`
}

// PendingTechnique is a queued "technique learned" change
type PendingTechnique struct {
	ID       string    `json:"id"`
	Slug     string    `json:"slug"`
	Source   string    `json:"source"`
	QueuedAt time.Time `json:"queued_at"`
}

var _ core.Entity = (*Monster)(nil)

// KnownTechniques returns a copy of the monster's move slugs
func (m *Monster) KnownTechniques() []string {
	return append([]string(nil), m.Moves...)
}

// Knows reports whether the monster already has the technique
func (m *Monster) Knows(slug string) bool {
	for _, move := range m.Moves {
		if move == slug {
			return true
		}
	}
	return false
}

// GetID implements core.Entity
func (m *Monster) GetID() string {
	return m.ID
}

// GetType implements core.Entity
func (m *Monster) GetType() string {
	return "monster"
}

// Validate checks the fields every stored monster needs
func (m *Monster) Validate() error {
	if m == nil {
		return errors.InvalidArgument("monster cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", m.ID, vb)
	errors.ValidateRequired("slug", m.Slug, vb)
	errors.ValidateRange("moves", len(m.Moves), 0, MaxMoves, vb)
	return vb.Build()
}
