package domain

import (
	"fmt"
	"strings"
	"time"
)

type AccountType string

const (
	AccountTypePrivate AccountType = "PRIVATE"
	AccountTypeShared  AccountType = "SHARED"
)

// Slot is one assignable seat inside an account. CustomerID is a weak
// reference: the customer record may be deleted afterwards, in which case
// CustomerName is the fallback display name.
type Slot struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customer_id,omitempty"`
	CustomerName   string `json:"customer_name"`
	IsOccupied     bool   `json:"is_occupied"`
	ExpirationDate string `json:"expiration_date,omitempty"`
	ProfileName    string `json:"profile_name,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type Account struct {
	ID          string      `json:"id"`
	ServiceName string      `json:"service_name"`
	Email       string      `json:"email"`
	Password    string      `json:"password"` // stored as-is, carried over from the source system
	// ExpirationDate is the account-level renewal date, YYYY-MM-DD.
	ExpirationDate string      `json:"expiration_date"`
	Type           AccountType `json:"type"`
	MaxSlots       int         `json:"max_slots"`
	Slots          []Slot      `json:"slots"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Validate checks the structural invariants of an account.
// A slot count mismatch is a programming defect in the allocator, not a
// user-input problem, but it is cheaper to catch it here than in the store.
func (a Account) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: account id is empty", ErrInvalidInput)
	}
	if a.Type != AccountTypePrivate && a.Type != AccountTypeShared {
		return fmt.Errorf("%w: unknown account type %q", ErrInvalidInput, a.Type)
	}
	if a.MaxSlots < 1 {
		return fmt.Errorf("%w: max_slots must be >= 1", ErrInvalidInput)
	}
	if a.Type == AccountTypePrivate && a.MaxSlots != 1 {
		return fmt.Errorf("%w: private accounts have exactly one slot", ErrInvalidInput)
	}
	if len(a.Slots) != a.MaxSlots {
		return fmt.Errorf("slot count %d does not match max_slots %d", len(a.Slots), a.MaxSlots)
	}
	for i, s := range a.Slots {
		if s.IsOccupied != (s.CustomerName != "") {
			return fmt.Errorf("slot %d: is_occupied out of sync with customer_name", i)
		}
	}
	return nil
}

// FindSlot returns the index of the slot with the given id, or -1.
func (a Account) FindSlot(slotID string) int {
	for i := range a.Slots {
		if a.Slots[i].ID == slotID {
			return i
		}
	}
	return -1
}

// Suggested service names. Any free-form name is accepted; these only drive
// defaults in clients.
const (
	ServiceNetflix        = "Netflix"
	ServiceSpotify        = "Spotify"
	ServiceDisneyPlus     = "Disney+"
	ServicePrimeVideo     = "Prime Video"
	ServiceYoutubePremium = "YouTube Premium"
	ServiceVPN            = "VPN Service"
	ServiceAnghami        = "Anghami"
	ServiceOther          = "Other"
)

var serviceDefaultSlots = map[string]int{
	ServiceNetflix:        5,
	ServiceSpotify:        6,
	ServiceDisneyPlus:     4,
	ServicePrimeVideo:     3,
	ServiceYoutubePremium: 5,
	ServiceVPN:            5,
	ServiceOther:          1,
}

// DefaultSlotsFor returns the suggested shared-slot count for a service name.
func DefaultSlotsFor(serviceName string) int {
	if n, ok := serviceDefaultSlots[strings.TrimSpace(serviceName)]; ok {
		return n
	}
	return 1
}
