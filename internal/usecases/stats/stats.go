// Package stats computes the dashboard numbers shown in the original UI
// header cards.
package stats

import (
	"time"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/expiry"
)

type Dashboard struct {
	TotalAccounts int `json:"total_accounts"`
	ExpiringSoon  int `json:"expiring_soon"`
	EmptySlots    int `json:"empty_slots"`
}

func Compute(accounts []domain.Account, now time.Time) Dashboard {
	d := Dashboard{TotalAccounts: len(accounts)}
	for _, account := range accounts {
		if expiry.NeedsAlert(expiry.DaysRemaining(account.ExpirationDate, now)) {
			d.ExpiringSoon++
		}
		for _, slot := range account.Slots {
			if !slot.IsOccupied {
				d.EmptySlots++
			}
		}
	}
	return d
}
