// Package monster provides the interface for monster state persistence
package monster

//go:generate mockgen -destination=mock/mock_repository.go -package=monstermock github.com/KirkDiggler/monster-api/internal/repositories/monster Repository

import (
	"context"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
)

// Repository defines the interface for monster persistence
type Repository interface {
	// Get retrieves a monster by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the monster does not exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a monster
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Update loads a monster, applies Mutate and writes the result only if
	// the record did not change in between. Conflicting writes are retried.
	// Errors returned by Mutate are passed through with their code.
	// Returns errors.NotFound if the monster does not exist
	// Returns errors.Aborted when every attempt hit a conflicting write
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
}

// GetInput defines the input for getting a monster
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a monster
type GetOutput struct {
	Monster *tuxemon.Monster
}

// SaveInput defines the input for saving a monster
type SaveInput struct {
	Monster *tuxemon.Monster
}

// SaveOutput defines the output for saving a monster
type SaveOutput struct {
	Monster *tuxemon.Monster
}

// MutateFunc changes a monster in place. It reports whether anything
// changed; nothing is written when it returns false. It may run more than
// once for a single Update.
type MutateFunc func(m *tuxemon.Monster) (bool, error)

// UpdateInput defines the input for updating a monster
type UpdateInput struct {
	ID     string
	Mutate MutateFunc
}

// UpdateOutput defines the output for updating a monster
type UpdateOutput struct {
	Monster *tuxemon.Monster

	// Written is false when Mutate reported no change
	Written bool
}
