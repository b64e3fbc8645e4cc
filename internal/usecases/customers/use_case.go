// Package customers implements the customer collection CRUD. Deleting a
// customer deliberately leaves referencing slots alone; their cached names
// take over at display time.
package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/medeiros-dev/reseller-vault/internal/domain"
	"github.com/medeiros-dev/reseller-vault/internal/domain/port/store"
)

type CreateCustomerInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}

type UseCaseInterface interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, input CreateCustomerInput) (domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type UseCase struct {
	store store.Store
}

func NewUseCase(st store.Store) *UseCase {
	return &UseCase{store: st}
}

func (u *UseCase) List(ctx context.Context) ([]domain.Customer, error) {
	return u.store.ListCustomers(ctx)
}

func (u *UseCase) Create(ctx context.Context, input CreateCustomerInput) (domain.Customer, error) {
	customer := domain.Customer{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(input.Name),
		Contact: input.Contact,
		Notes:   input.Notes,
	}
	if err := customer.Validate(); err != nil {
		return domain.Customer{}, err
	}
	if err := u.store.SaveCustomer(ctx, customer); err != nil {
		return domain.Customer{}, fmt.Errorf("saving customer: %w", err)
	}
	return customer, nil
}

func (u *UseCase) Delete(ctx context.Context, id string) error {
	return u.store.DeleteCustomer(ctx, id)
}
