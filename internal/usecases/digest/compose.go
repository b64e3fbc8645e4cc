// Package digest aggregates expiration alerts into one delivery-ready
// message per notification cycle.
package digest

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/expiry"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/slots"
)

// Occupant is one occupied slot listed under an account-level alert, for
// operator context.
type Occupant struct {
	Position    int
	DisplayName string
}

// AccountAlert fires on the account's own expiration date.
type AccountAlert struct {
	AccountID   string
	ServiceName string
	Email       string
	DaysLeft    int
	Occupants   []Occupant
}

// SlotAlert fires on a slot's own override date, and only when the parent
// account is not already alerting.
type SlotAlert struct {
	AccountID    string
	AccountEmail string
	ServiceName  string
	Position     int
	CustomerName string
	DaysLeft     int
}

type Digest struct {
	AccountAlerts []AccountAlert
	SlotAlerts    []SlotAlert
}

// Compose partitions accounts into account-level and slot-level alerts.
// Once an account itself is flagged its slots are not re-evaluated, which
// keeps each expiring seat out of the report twice. Returns nil when there
// is nothing to send.
func Compose(accounts []domain.Account, customers []domain.Customer, now time.Time) *Digest {
	d := &Digest{}

	for _, account := range accounts {
		accountDays := expiry.DaysRemaining(account.ExpirationDate, now)
		if expiry.NeedsAlert(accountDays) {
			alert := AccountAlert{
				AccountID:   account.ID,
				ServiceName: account.ServiceName,
				Email:       account.Email,
				DaysLeft:    accountDays,
			}
			for i, slot := range account.Slots {
				if !slot.IsOccupied {
					continue
				}
				alert.Occupants = append(alert.Occupants, Occupant{
					Position:    i + 1,
					DisplayName: slots.DisplayName(slot, customers),
				})
			}
			d.AccountAlerts = append(d.AccountAlerts, alert)
			continue
		}

		// Slots without an override date never alert on their own.
		for i, slot := range account.Slots {
			if !slot.IsOccupied || slot.ExpirationDate == "" {
				continue
			}
			slotDays := expiry.DaysRemaining(slot.ExpirationDate, now)
			if !expiry.NeedsAlert(slotDays) {
				continue
			}
			d.SlotAlerts = append(d.SlotAlerts, SlotAlert{
				AccountID:    account.ID,
				AccountEmail: account.Email,
				ServiceName:  account.ServiceName,
				Position:     i + 1,
				CustomerName: slots.DisplayName(slot, customers),
				DaysLeft:     slotDays,
			})
		}
	}

	if len(d.AccountAlerts) == 0 && len(d.SlotAlerts) == 0 {
		return nil
	}
	return d
}

// Render produces the Telegram-ready HTML message.
func (d *Digest) Render() string {
	var b strings.Builder
	b.WriteString("⚠️ <b>Expiration Report</b>\n")

	if len(d.AccountAlerts) > 0 {
		fmt.Fprintf(&b, "\n<b>%d account(s) expiring within 3 days:</b>\n", len(d.AccountAlerts))
		for _, alert := range d.AccountAlerts {
			fmt.Fprintf(&b, "\n• <b>%s</b> (%s) — %s\n",
				html.EscapeString(alert.ServiceName),
				html.EscapeString(alert.Email),
				daysPhrase(alert.DaysLeft),
			)
			for _, occ := range alert.Occupants {
				fmt.Fprintf(&b, "   #%d %s\n", occ.Position, html.EscapeString(occ.DisplayName))
			}
		}
	}

	if len(d.SlotAlerts) > 0 {
		fmt.Fprintf(&b, "\n<b>%d slot assignment(s) expiring within 3 days:</b>\n", len(d.SlotAlerts))
		for _, alert := range d.SlotAlerts {
			fmt.Fprintf(&b, "\n• %s — <b>%s</b> slot #%d (%s) — %s\n",
				html.EscapeString(alert.CustomerName),
				html.EscapeString(alert.ServiceName),
				alert.Position,
				html.EscapeString(alert.AccountEmail),
				daysPhrase(alert.DaysLeft),
			)
		}
	}

	b.WriteString("\nPlease renew them via the dashboard.")
	return b.String()
}

func daysPhrase(days int) string {
	switch days {
	case 0:
		return "expires today"
	case 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}
