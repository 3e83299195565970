// Package journal builds a player's tuxepedia view
package journal

//go:generate mockgen -destination=mock/mock_service.go -package=journalmock github.com/KirkDiggler/monster-api/internal/orchestrators/journal Service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/monster-api/internal/catalog"
	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
	"github.com/KirkDiggler/monster-api/internal/repositories/tuxepedia"
)

// Service defines the journal operations
type Service interface {
	// ListEntries returns every numbered species in journal order with the
	// player's status for it
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// RecordEncounter marks a species as seen or caught for a player
	// Returns errors.NotFound for a species missing from the catalog
	RecordEncounter(ctx context.Context, input *RecordEncounterInput) (*RecordEncounterOutput, error)
}

// ListEntriesInput is the request for a player's journal
type ListEntriesInput struct {
	PlayerID string
}

// ListEntriesOutput is the player's journal
type ListEntriesOutput struct {
	Entries []*tuxemon.JournalEntry

	// Seen counts entries seen or caught; Caught counts caught only
	Seen   int
	Caught int
}

// RecordEncounterInput is the request to record a sighting
type RecordEncounterInput struct {
	PlayerID string
	Slug     string
	Status   tuxemon.SeenStatus
}

// RecordEncounterOutput is the stored status after recording
type RecordEncounterOutput struct {
	Status tuxemon.SeenStatus
}

// Config holds the dependencies for the journal orchestrator
type Config struct {
	Monsters      catalog.Monsters
	TuxepediaRepo tuxepedia.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Monsters == nil {
		vb.RequiredField("Monsters")
	}
	if c.TuxepediaRepo == nil {
		vb.RequiredField("TuxepediaRepo")
	}
	return vb.Build()
}

type orchestrator struct {
	monsters      catalog.Monsters
	tuxepediaRepo tuxepedia.Repository
}

// NewOrchestrator creates a new journal orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		monsters:      cfg.Monsters,
		tuxepediaRepo: cfg.TuxepediaRepo,
	}, nil
}

func (o *orchestrator) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	register, err := o.tuxepediaRepo.Get(ctx, tuxepedia.GetInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load tuxepedia for player %s", input.PlayerID)
	}

	out := &ListEntriesOutput{Entries: []*tuxemon.JournalEntry{}}
	for _, def := range o.monsters.All() {
		if def.TxmnID <= 0 {
			continue
		}

		status, ok := register.Statuses[def.Slug]
		if !ok {
			status = tuxemon.SeenStatusUnseen
		}
		switch status {
		case tuxemon.SeenStatusCaught:
			out.Caught++
			out.Seen++
		case tuxemon.SeenStatusSeen:
			out.Seen++
		}

		out.Entries = append(out.Entries, &tuxemon.JournalEntry{
			Slug:   def.Slug,
			TxmnID: def.TxmnID,
			Status: status,
		})
	}

	sort.SliceStable(out.Entries, func(i, j int) bool {
		return out.Entries[i].TxmnID < out.Entries[j].TxmnID
	})

	return out, nil
}

func (o *orchestrator) RecordEncounter(ctx context.Context, input *RecordEncounterInput) (*RecordEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("slug", input.Slug, vb)
	if _, err := tuxemon.ParseSeenStatus(string(input.Status)); err != nil {
		vb.Fieldf("status", "must be %s or %s", tuxemon.SeenStatusSeen, tuxemon.SeenStatusCaught)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.monsters.Lookup(input.Slug); err != nil {
		return nil, err
	}

	recorded, err := o.tuxepediaRepo.Record(ctx, tuxepedia.RecordInput{
		PlayerID: input.PlayerID,
		Slug:     input.Slug,
		Status:   input.Status,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to record %s", input.Slug)
	}

	if recorded.Status != input.Status {
		slog.Info("Kept existing tuxepedia status",
			"player_id", input.PlayerID,
			"slug", input.Slug,
			"requested", input.Status,
			"stored", recorded.Status)
	}

	return &RecordEncounterOutput{Status: recorded.Status}, nil
}
