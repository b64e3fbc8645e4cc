package domain

import (
	"fmt"
	"strings"
)

// Customer lives independently of any slot referencing it. Deleting a
// customer never cascades into slots.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"` // email or phone
	Notes   string `json:"notes,omitempty"`
}

func (c Customer) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: customer id is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	return nil
}

// FindCustomer returns the customer with the given id, or nil.
func FindCustomer(customers []Customer, id string) *Customer {
	if id == "" {
		return nil
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i]
		}
	}
	return nil
}
