package slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/store"
)

// AssignInput binds a customer (or an ad-hoc guest when CustomerID is empty)
// to one slot of one account. Re-assigning an occupied slot with the same
// customer is the renewal path: it refreshes ExpirationDate/ProfileName
// without changing occupancy.
type AssignInput struct {
	AccountID      string
	SlotID         string
	CustomerID     string
	CustomerName   string
	ExpirationDate string
	ProfileName    string
	Notes          string
}

type EngineInterface interface {
	Assign(ctx context.Context, input AssignInput) (domain.Account, error)
	Clear(ctx context.Context, accountID, slotID string) (domain.Account, error)
}

// Engine mutates slot state and persists the owning account's whole slot
// sequence on every transition.
type Engine struct {
	store store.Store
}

func NewEngine(st store.Store) *Engine {
	return &Engine{store: st}
}

func (e *Engine) Assign(ctx context.Context, input AssignInput) (domain.Account, error) {
	name := strings.TrimSpace(input.CustomerName)
	if name == "" {
		return domain.Account{}, fmt.Errorf("%w: customer name is required to occupy a slot", domain.ErrInvalidInput)
	}

	account, err := e.store.GetAccount(ctx, input.AccountID)
	if err != nil {
		return domain.Account{}, err
	}

	idx := account.FindSlot(input.SlotID)
	if idx < 0 {
		return domain.Account{}, domain.NewNotFoundError("slot", input.SlotID)
	}

	slot := &account.Slots[idx]
	slot.CustomerID = input.CustomerID
	slot.CustomerName = name
	slot.IsOccupied = true
	slot.ExpirationDate = input.ExpirationDate
	slot.ProfileName = input.ProfileName
	slot.Notes = input.Notes

	if err := e.store.SaveAccount(ctx, account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

func (e *Engine) Clear(ctx context.Context, accountID, slotID string) (domain.Account, error) {
	account, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		return domain.Account{}, err
	}

	idx := account.FindSlot(slotID)
	if idx < 0 {
		return domain.Account{}, domain.NewNotFoundError("slot", slotID)
	}

	// Everything assignment-related goes, notes included. The slot id stays.
	id := account.Slots[idx].ID
	account.Slots[idx] = domain.Slot{ID: id}

	if err := e.store.SaveAccount(ctx, account); err != nil {
		return domain.Account{}, err
	}
	return account, nil
}

// DisplayName resolves what to show for a slot at read time: a live customer
// record wins over the cached name, so edits to the customer propagate; a
// dangling or empty reference falls back to the cache. The result is never
// written back to the slot.
func DisplayName(slot domain.Slot, customers []domain.Customer) string {
	if c := domain.FindCustomer(customers, slot.CustomerID); c != nil {
		return c.Name
	}
	return slot.CustomerName
}
