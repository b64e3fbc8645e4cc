package stats

import (
	"testing"
	"time"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	in := func(days int) string { return now.AddDate(0, 0, days).Format("2006-01-02") }

	accounts := []domain.Account{
		{
			ID:             "acc-1",
			ExpirationDate: in(2),
			Slots: []domain.Slot{
				{ID: "s1", CustomerName: "Alice", IsOccupied: true},
				{ID: "s2"},
				{ID: "s3"},
			},
		},
		{
			ID:             "acc-2",
			ExpirationDate: in(30),
			Slots:          []domain.Slot{{ID: "s4", CustomerName: "Bob", IsOccupied: true}},
		},
		{
			ID:             "acc-3",
			ExpirationDate: in(-2), // expired, not "expiring soon"
			Slots:          []domain.Slot{{ID: "s5"}},
		},
	}

	d := Compute(accounts, now)
	assert.Equal(t, 3, d.TotalAccounts)
	assert.Equal(t, 1, d.ExpiringSoon)
	assert.Equal(t, 3, d.EmptySlots)
}

func TestComputeEmpty(t *testing.T) {
	d := Compute(nil, time.Now())
	assert.Zero(t, d.TotalAccounts)
	assert.Zero(t, d.ExpiringSoon)
	assert.Zero(t, d.EmptySlots)
}
