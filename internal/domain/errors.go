package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound record not found
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrNotConfigured notification credentials are missing; delivery was not attempted
	ErrNotConfigured = errors.New("notifier credentials not configured")

	// ErrDeliveryFailed the messaging transport rejected the message or was unreachable
	ErrDeliveryFailed = errors.New("delivery failed")
)

// DeliveryError carries the transport-provided description of a failed send.
type DeliveryError struct {
	Description string
	Err         error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("delivery failed: %s: %v", e.Description, e.Err)
	}
	return fmt.Sprintf("delivery failed: %s", e.Description)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrDeliveryFailed
}

func NewDeliveryError(description string, err error) *DeliveryError {
	return &DeliveryError{Description: description, Err: err}
}

// NotFoundError identifies the missing entity.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}
