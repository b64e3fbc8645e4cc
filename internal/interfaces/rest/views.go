package rest

import (
	"time"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/expiry"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/slots"
)

// slotView decorates a stored slot with the read-time fields clients render:
// the resolved display name and the expiry classification.
type slotView struct {
	domain.Slot
	DisplayName   string       `json:"display_name"`
	DaysRemaining int          `json:"days_remaining"`
	Level         expiry.Level `json:"level"`
}

type accountView struct {
	domain.Account
	Slots         []slotView   `json:"slots"`
	DaysRemaining int          `json:"days_remaining"`
	Level         expiry.Level `json:"level"`
}

func newAccountView(account domain.Account, customers []domain.Customer, now time.Time) accountView {
	days := expiry.DaysRemaining(account.ExpirationDate, now)
	view := accountView{
		Account:       account,
		Slots:         make([]slotView, 0, len(account.Slots)),
		DaysRemaining: days,
		Level:         expiry.Classify(days),
	}
	for _, slot := range account.Slots {
		slotDays := expiry.DaysRemaining(slot.ExpirationDate, now)
		view.Slots = append(view.Slots, slotView{
			Slot:          slot,
			DisplayName:   slots.DisplayName(slot, customers),
			DaysRemaining: slotDays,
			Level:         expiry.Classify(slotDays),
		})
	}
	return view
}

func newAccountViews(accounts []domain.Account, customers []domain.Customer, now time.Time) []accountView {
	views := make([]accountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, newAccountView(account, customers, now))
	}
	return views
}
