// Package accounts implements account CRUD on top of the store port,
// delegating slot-sequence shaping to the allocator.
package accounts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/store"
	"github.com/medeiros-dev/reseller-vault/internal/usecases/slots"
)

type CreateAccountInput struct {
	ServiceName    string             `json:"service_name"`
	Email          string             `json:"email"`
	Password       string             `json:"password"`
	ExpirationDate string             `json:"expiration_date"`
	Type           domain.AccountType `json:"type"`
	MaxSlots       int                `json:"max_slots"`
}

type UpdateAccountInput struct {
	ID             string             `json:"id"`
	ServiceName    string             `json:"service_name"`
	Email          string             `json:"email"`
	Password       string             `json:"password"`
	ExpirationDate string             `json:"expiration_date"`
	Type           domain.AccountType `json:"type"`
	MaxSlots       int                `json:"max_slots"`
}

type UseCaseInterface interface {
	List(ctx context.Context) ([]domain.Account, error)
	Get(ctx context.Context, id string) (domain.Account, error)
	Create(ctx context.Context, input CreateAccountInput) (domain.Account, error)
	Update(ctx context.Context, input UpdateAccountInput) (domain.Account, error)
	Delete(ctx context.Context, id string) error
}

type UseCase struct {
	store store.Store
	now   func() time.Time
}

func NewUseCase(st store.Store) *UseCase {
	return &UseCase{store: st, now: time.Now}
}

func (u *UseCase) List(ctx context.Context) ([]domain.Account, error) {
	return u.store.ListAccounts(ctx)
}

func (u *UseCase) Get(ctx context.Context, id string) (domain.Account, error) {
	return u.store.GetAccount(ctx, id)
}

// Create allocates the slot sequence for a brand-new account. Empty service
// names fall back to "Other" and an omitted type means private, matching
// what the dashboard form always sent.
func (u *UseCase) Create(ctx context.Context, input CreateAccountInput) (domain.Account, error) {
	accountType := input.Type
	if accountType == "" {
		accountType = domain.AccountTypePrivate
	}
	serviceName := strings.TrimSpace(input.ServiceName)
	if serviceName == "" {
		serviceName = domain.ServiceOther
	}

	maxSlots := slots.NormalizeMax(accountType, input.MaxSlots)
	account := domain.Account{
		ID:             uuid.NewString(),
		ServiceName:    serviceName,
		Email:          input.Email,
		Password:       input.Password,
		ExpirationDate: input.ExpirationDate,
		Type:           accountType,
		MaxSlots:       maxSlots,
		Slots:          slots.Allocate(accountType, maxSlots),
		CreatedAt:      u.now(),
	}

	if err := account.Validate(); err != nil {
		return domain.Account{}, err
	}
	if err := u.store.SaveAccount(ctx, account); err != nil {
		return domain.Account{}, fmt.Errorf("saving account: %w", err)
	}
	return account, nil
}

// Update replaces the account fields and resizes the slot sequence to the
// new capacity. CreatedAt and slot contents within the surviving prefix are
// preserved.
func (u *UseCase) Update(ctx context.Context, input UpdateAccountInput) (domain.Account, error) {
	existing, err := u.store.GetAccount(ctx, input.ID)
	if err != nil {
		return domain.Account{}, err
	}

	accountType := input.Type
	if accountType == "" {
		accountType = existing.Type
	}
	maxSlots := slots.NormalizeMax(accountType, input.MaxSlots)

	existing.ServiceName = strings.TrimSpace(input.ServiceName)
	if existing.ServiceName == "" {
		existing.ServiceName = domain.ServiceOther
	}
	existing.Email = input.Email
	existing.Password = input.Password
	existing.ExpirationDate = input.ExpirationDate
	existing.Type = accountType
	existing.MaxSlots = maxSlots
	existing.Slots = slots.Resize(existing.Slots, accountType, maxSlots)

	if err := existing.Validate(); err != nil {
		return domain.Account{}, err
	}
	if err := u.store.SaveAccount(ctx, existing); err != nil {
		return domain.Account{}, fmt.Errorf("saving account: %w", err)
	}
	return existing, nil
}

func (u *UseCase) Delete(ctx context.Context, id string) error {
	return u.store.DeleteAccount(ctx, id)
}
