package digest

import (
	"context"
	"fmt"
	"time"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/messenger"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/store"
)

// Result describes one notification cycle.
type Result struct {
	Sent          bool
	AccountAlerts int
	SlotAlerts    int
	Message       string
}

// DispatchDigestUseCaseInterface defines the interface for the core dispatch logic.
type DispatchDigestUseCaseInterface interface {
	Execute(ctx context.Context) (Result, error)
}

type DispatchDigestUseCase struct {
	store     store.Store
	messenger messenger.Messenger
	now       func() time.Time
}

func NewDispatchDigestUseCase(st store.Store, m messenger.Messenger) *DispatchDigestUseCase {
	return &DispatchDigestUseCase{
		store:     st,
		messenger: m,
		now:       time.Now,
	}
}

// Execute runs one full cycle: load config and data, compose, deliver.
// Missing credentials short-circuit before composing (configuration error);
// a rejected send comes back as domain.DeliveryError and is never retried.
func (u *DispatchDigestUseCase) Execute(ctx context.Context) (Result, error) {
	cfg, err := u.store.GetNotifierConfig(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("loading notifier config: %w", err)
	}
	if !cfg.HasCredentials() {
		return Result{}, domain.ErrNotConfigured
	}

	accounts, err := u.store.ListAccounts(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("loading accounts: %w", err)
	}
	customers, err := u.store.ListCustomers(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("loading customers: %w", err)
	}

	d := Compose(accounts, customers, u.now())
	if d == nil {
		return Result{Message: "nothing expiring soon, no message sent"}, nil
	}

	creds := messenger.Credentials{BotToken: cfg.BotToken, ChatID: cfg.ChatID}
	if err := u.messenger.Send(ctx, creds, d.Render()); err != nil {
		return Result{}, err
	}

	return Result{
		Sent:          true,
		AccountAlerts: len(d.AccountAlerts),
		SlotAlerts:    len(d.SlotAlerts),
		Message:       fmt.Sprintf("sent alert for %d account(s) and %d slot(s)", len(d.AccountAlerts), len(d.SlotAlerts)),
	}, nil
}
