package tuxemon

import "github.com/KirkDiggler/monster-api/internal/errors"

// MonsterDefinition is the catalog entry for a monster species
type MonsterDefinition struct {
	Slug string `json:"slug" yaml:"slug"`

	// TxmnID is the journal number; 0 keeps the species out of the journal
	TxmnID int `json:"txmn_id" yaml:"txmn_id"`
}

// SeenStatus is how far a player got with a species
type SeenStatus string

// Seen statuses
const (
	SeenStatusUnseen SeenStatus = "unseen"
	SeenStatusSeen   SeenStatus = "seen"
	SeenStatusCaught SeenStatus = "caught"
)

// ParseSeenStatus validates a recorded status. Unseen cannot be recorded.
func ParseSeenStatus(s string) (SeenStatus, error) {
	switch status := SeenStatus(s); status {
	case SeenStatusSeen, SeenStatusCaught:
		return status, nil
	default:
		return "", errors.InvalidArgumentf("invalid seen status %q", s)
	}
}

// JournalEntry pairs a species with the player's status for it
type JournalEntry struct {
	Slug   string
	TxmnID int
	Status SeenStatus
}
