// Package slots holds the slot allocator and the per-slot assignment engine.
package slots

import (
	"github.com/google/uuid"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
)

// NormalizeMax clamps a requested slot count for the account type:
// private accounts always get exactly one slot, shared accounts at least one.
func NormalizeMax(accountType domain.AccountType, maxSlots int) int {
	if accountType == domain.AccountTypePrivate {
		return 1
	}
	if maxSlots < 1 {
		return 1
	}
	return maxSlots
}

// Allocate produces an ordered sequence of exactly maxSlots fresh empty
// slots. Slot number is position in the sequence.
func Allocate(accountType domain.AccountType, maxSlots int) []domain.Slot {
	n := NormalizeMax(accountType, maxSlots)
	out := make([]domain.Slot, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, newEmptySlot())
	}
	return out
}

// Resize adjusts an existing slot sequence to the new maxSlots. Growing
// appends fresh empty slots; existing slots keep their positions. Shrinking
// truncates from the end, dropping whatever assignments the excess slots
// held. Displaced occupants are not migrated anywhere.
func Resize(existing []domain.Slot, accountType domain.AccountType, maxSlots int) []domain.Slot {
	n := NormalizeMax(accountType, maxSlots)
	out := make([]domain.Slot, 0, n)
	out = append(out, existing...)
	if len(out) > n {
		return out[:n]
	}
	for len(out) < n {
		out = append(out, newEmptySlot())
	}
	return out
}

func newEmptySlot() domain.Slot {
	return domain.Slot{
		ID:         uuid.NewString(),
		IsOccupied: false,
	}
}
