package store

import (
	"context"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
)

// AccountsEvent is one pushed snapshot of the accounts collection.
// Err is set instead of Accounts when the collection could not be read.
type AccountsEvent struct {
	Accounts []domain.Account
	Err      error
}

type CustomersEvent struct {
	Customers []domain.Customer
	Err       error
}

type ConfigEvent struct {
	Config domain.NotifierConfig
	Err    error
}

// Store is the persistence collaborator: three logical collections with
// create-or-replace semantics and full-snapshot change subscriptions.
//
// Watch methods deliver the current snapshot on subscribe and a fresh one
// after every change, until the returned cancel func is called. Subscribing
// again after cancel is allowed. A slow subscriber only ever sees the latest
// snapshot; intermediate ones are coalesced.
type Store interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccount(ctx context.Context, id string) (domain.Account, error)
	SaveAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, id string) error

	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error

	GetNotifierConfig(ctx context.Context) (domain.NotifierConfig, error)
	SaveNotifierConfig(ctx context.Context, config domain.NotifierConfig) error

	WatchAccounts(ctx context.Context) (<-chan AccountsEvent, func())
	WatchCustomers(ctx context.Context) (<-chan CustomersEvent, func())
	WatchNotifierConfig(ctx context.Context) (<-chan ConfigEvent, func())

	Close() error
}
