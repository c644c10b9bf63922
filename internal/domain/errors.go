package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the back-office domain. Use errors.Is to classify.
var (
	// ErrInvalidBooking indicates a booking that is structurally unfit to
	// persist (no passengers, no segments, incomplete segment).
	ErrInvalidBooking = errors.New("invalid booking")

	// ErrInvalidName indicates a customer or supplier with an empty name.
	ErrInvalidName = errors.New("invalid name")

	// ErrDuplicateName indicates a customer or supplier name that collides
	// case-insensitively with an existing one of the same kind.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrExtraction indicates the ticket extraction collaborator failed.
	// It is always non-fatal to the operator's workflow.
	ErrExtraction = errors.New("ticket extraction failed")
)

// DuplicateNameError reports the specific colliding name so the operator
// can see exactly which record blocks the add or rename.
type DuplicateNameError struct {
	// Kind is the record kind: "customer" or "supplier".
	Kind string

	// Name is the colliding display name as already stored.
	Name string
}

// Error implements the error interface.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate name: %s %q already exists", e.Kind, e.Name)
}

// Is makes errors.Is(err, ErrDuplicateName) match.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// NewDuplicateNameError creates a DuplicateNameError for the given record kind.
func NewDuplicateNameError(kind, name string) error {
	return &DuplicateNameError{Kind: kind, Name: name}
}

// NotFoundError carries the kind and id of the missing record.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError for the given record kind and id.
func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}
