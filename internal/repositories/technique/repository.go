// Package technique persists the technique catalog in Redis
package technique

import (
	"context"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
)

// Repository stores technique definitions
type Repository interface {
	// Seed replaces every stored technique with the given ones, in order
	// Returns errors.InvalidArgument for records without a slug
	// Returns errors.Internal for storage failures
	Seed(ctx context.Context, input SeedInput) (*SeedOutput, error)

	// List returns the stored techniques in seed order
	// An empty store returns an empty list
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SeedInput defines the input for seeding techniques
type SeedInput struct {
	Techniques []*tuxemon.Technique
}

// SeedOutput defines the output of a seed
type SeedOutput struct {
	Stored int
}

// ListInput defines the input for listing techniques
type ListInput struct{}

// ListOutput defines the output for listing techniques
type ListOutput struct {
	Techniques []*tuxemon.Technique
}
