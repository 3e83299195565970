// Package tuxepedia stores which species each player has seen or caught
package tuxepedia

import (
	"context"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=tuxepediamock github.com/KirkDiggler/monster-api/internal/repositories/tuxepedia Repository

// Repository defines the per-player seen register
type Repository interface {
	// Get returns every species the player has a status for
	// A player with no records gets an empty map
	// Returns errors.InvalidArgument for an empty player ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Record sets the status for one species
	// A stored caught status is kept when seen is recorded over it
	// Returns errors.InvalidArgument for missing fields or the unseen status
	Record(ctx context.Context, input RecordInput) (*RecordOutput, error)
}

// GetInput defines the input for reading a player's register
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for reading a player's register
type GetOutput struct {
	Statuses map[string]tuxemon.SeenStatus
}

// RecordInput defines the input for recording a sighting
type RecordInput struct {
	PlayerID string
	Slug     string
	Status   tuxemon.SeenStatus
}

// RecordOutput defines the output for recording a sighting
type RecordOutput struct {
	// Status is what is stored after the call
	Status tuxemon.SeenStatus
}
