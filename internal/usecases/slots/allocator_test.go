package slots

import (
	"testing"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupied(name string) domain.Slot {
	s := domain.Slot{ID: "slot-" + name, CustomerName: name, IsOccupied: true}
	return s
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name        string
		accountType domain.AccountType
		maxSlots    int
		expected    int
	}{
		{name: "Shared Five", accountType: domain.AccountTypeShared, maxSlots: 5, expected: 5},
		{name: "Shared Zero Clamped", accountType: domain.AccountTypeShared, maxSlots: 0, expected: 1},
		{name: "Private Always One", accountType: domain.AccountTypePrivate, maxSlots: 4, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := Allocate(tt.accountType, tt.maxSlots)
			require.Len(t, slots, tt.expected)

			seen := map[string]bool{}
			for _, s := range slots {
				assert.NotEmpty(t, s.ID)
				assert.False(t, seen[s.ID], "slot ids must be unique")
				seen[s.ID] = true
				assert.False(t, s.IsOccupied)
				assert.Empty(t, s.CustomerID)
				assert.Empty(t, s.CustomerName)
				assert.Empty(t, s.ExpirationDate)
				assert.Empty(t, s.ProfileName)
			}
		})
	}
}

func TestResizeGrow(t *testing.T) {
	existing := []domain.Slot{occupied("alice"), occupied("bob")}

	resized := Resize(existing, domain.AccountTypeShared, 4)
	require.Len(t, resized, 4)

	// Existing slots keep their positions and content.
	assert.Equal(t, existing[0], resized[0])
	assert.Equal(t, existing[1], resized[1])
	assert.False(t, resized[2].IsOccupied)
	assert.False(t, resized[3].IsOccupied)
}

func TestResizeShrinkDropsTail(t *testing.T) {
	existing := []domain.Slot{occupied("alice"), occupied("bob"), occupied("carol")}

	resized := Resize(existing, domain.AccountTypeShared, 1)
	require.Len(t, resized, 1)
	assert.Equal(t, "alice", resized[0].CustomerName, "truncation drops the tail, not the head")
}

func TestResizeSharedToPrivate(t *testing.T) {
	existing := []domain.Slot{occupied("alice"), occupied("bob")}

	resized := Resize(existing, domain.AccountTypePrivate, 5)
	require.Len(t, resized, 1, "switching to private forces a single slot")
	assert.Equal(t, "alice", resized[0].CustomerName)
}

func TestResizeCountIdempotentButNotIdentity(t *testing.T) {
	original := Allocate(domain.AccountTypeShared, 3)

	shrunk := Resize(original, domain.AccountTypeShared, 2)
	grown := Resize(shrunk, domain.AccountTypeShared, 3)

	require.Len(t, grown, len(original))
	assert.Equal(t, original[0].ID, grown[0].ID)
	assert.Equal(t, original[1].ID, grown[1].ID)
	assert.NotEqual(t, original[2].ID, grown[2].ID, "re-grown slots get fresh ids")
}
